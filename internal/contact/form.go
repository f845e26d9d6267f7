// Package contact implements the contact composer core: field validation,
// mailto target construction, and the owner's exported contact card.
package contact

import (
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tartampluch/go-folio/internal/config"
)

// validate is shared; Validator instances cache struct metadata and are
// safe for concurrent use.
var validate = validator.New()

// Fields holds the raw form contents, re-read from the controls on every
// input and submit event. No copy survives the process.
type Fields struct {
	Name         string
	Email        string
	Subject      string
	Message      string
	ConsentGiven bool
}

// trimmed returns a copy with surrounding whitespace removed from every
// text field. Validation and the mailto target both operate on this copy.
func (f Fields) trimmed() Fields {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)
	return f
}

// Result carries the per-field error keys (empty when the field passes),
// plus the rewritten submission target. Error values are translation keys;
// the UI localizes them into inline text.
type Result struct {
	NameErr    string
	EmailErr   string
	SubjectErr string
	MessageErr string
	ConsentErr string

	// Target is always rewritten: the full parameterized mailto URL when
	// valid, the bare mailto recipient otherwise.
	Target string
}

// Valid reports whether every field passed.
func (r Result) Valid() bool {
	return r.NameErr == "" && r.EmailErr == "" && r.SubjectErr == "" &&
		r.MessageErr == "" && r.ConsentErr == ""
}

// Validate checks every field independently and rewrites the submission
// target as a side effect of the pass, exactly once per call.
func Validate(f Fields, recipient string) Result {
	t := f.trimmed()
	var r Result

	if t.Name == "" {
		r.NameErr = config.TKeyErrNameReq
	}
	if t.Email == "" {
		r.EmailErr = config.TKeyErrEmailReq
	} else if err := validate.Var(t.Email, config.RuleEmail); err != nil {
		r.EmailErr = config.TKeyErrEmailBad
	}
	if t.Subject == "" {
		r.SubjectErr = config.TKeyErrSubjectReq
	}
	if t.Message == "" {
		r.MessageErr = config.TKeyErrMessageReq
	}
	if !t.ConsentGiven {
		r.ConsentErr = config.TKeyErrConsentReq
	}

	if r.Valid() {
		r.Target = BuildTarget(recipient, t)
	} else {
		r.Target = config.MailtoScheme + recipient
	}

	slog.Debug(config.MsgFormValidated,
		config.LogKeyComponent, config.CompContact,
		config.LogKeyValid, r.Valid(),
	)

	return r
}
