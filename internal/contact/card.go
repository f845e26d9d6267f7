package contact

import (
	"bytes"
	"fmt"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-folio/internal/config"
)

// OwnerCard encodes the site owner's identity as a vCard 4.0 document for
// the share server's download route.
func OwnerCard(recipient string) ([]byte, error) {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldFormattedName, config.OwnerName)
	card.SetValue(vcard.FieldTitle, config.OwnerTitle)
	card.SetValue(vcard.FieldEmail, recipient)
	card.SetValue(vcard.FieldURL, config.OwnerSiteURL)

	vcard.ToV4(card)

	var buf bytes.Buffer
	if err := vcard.NewEncoder(&buf).Encode(card); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}
	return buf.Bytes(), nil
}
