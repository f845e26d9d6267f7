package contact

import (
	"net/url"
	"strings"

	"github.com/tartampluch/go-folio/internal/config"
)

// ResolveRecipient extracts the address from a configured mailto target.
// Anything before the query separator counts; a non-mailto or empty target
// falls back to the default address. Malformed input is never an error.
func ResolveRecipient(target string) string {
	if !strings.HasPrefix(target, config.MailtoScheme) {
		return config.DefaultRecipient
	}
	addr := strings.TrimPrefix(target, config.MailtoScheme)
	if i := strings.IndexByte(addr, '?'); i >= 0 {
		addr = addr[:i]
	}
	if addr == "" {
		return config.DefaultRecipient
	}
	return addr
}

// BuildTarget assembles the parameterized mailto URL from already-trimmed
// fields. Keys are emitted in the fixed order Subject, Name, Email, Message.
func BuildTarget(recipient string, f Fields) string {
	var b strings.Builder
	b.WriteString(config.MailtoScheme)
	b.WriteString(recipient)
	b.WriteByte('?')
	writeParam(&b, config.ParamSubject, f.Subject, true)
	writeParam(&b, config.ParamName, f.Name, false)
	writeParam(&b, config.ParamEmail, f.Email, false)
	writeParam(&b, config.ParamMessage, f.Message, false)
	return b.String()
}

func writeParam(b *strings.Builder, key, value string, first bool) {
	if !first {
		b.WriteByte('&')
	}
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(escape(value))
}

// escape percent-encodes a value for the mailto query. Mail clients expect
// %20 for spaces, not the form-encoding plus sign.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
