package contact_test

import (
	"bytes"
	"testing"

	"github.com/emersion/go-vcard"
	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-folio/internal/config"
	"github.com/tartampluch/go-folio/internal/contact"
)

func TestOwnerCard(t *testing.T) {
	data, err := contact.OwnerCard("owner@example.org")

	assert.NoError(t, err)

	// Round-trip through the decoder to check structure, not formatting.
	card, err := vcard.NewDecoder(bytes.NewReader(data)).Decode()
	assert.NoError(t, err)

	assert.Equal(t, config.OwnerName, card.Value(vcard.FieldFormattedName))
	assert.Equal(t, config.OwnerTitle, card.Value(vcard.FieldTitle))
	assert.Equal(t, "owner@example.org", card.Value(vcard.FieldEmail))
	assert.Equal(t, config.OwnerSiteURL, card.Value(vcard.FieldURL))
	assert.Equal(t, "4.0", card.Value(vcard.FieldVersion))
}
