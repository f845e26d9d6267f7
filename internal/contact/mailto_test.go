package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-folio/internal/config"
	"github.com/tartampluch/go-folio/internal/contact"
)

func TestResolveRecipient(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected string
	}{
		{"Plain mailto", "mailto:someone@example.com", "someone@example.com"},
		{"Mailto with query", "mailto:someone@example.com?Subject=x", "someone@example.com"},
		{"Empty string", "", config.DefaultRecipient},
		{"Not a mailto URL", "https://example.com", config.DefaultRecipient},
		{"Bare address without scheme", "someone@example.com", config.DefaultRecipient},
		{"Scheme but no address", "mailto:", config.DefaultRecipient},
		{"Scheme with only a query", "mailto:?Subject=x", config.DefaultRecipient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, contact.ResolveRecipient(tt.target))
		})
	}
}

func TestBuildTarget_Escaping(t *testing.T) {
	f := contact.Fields{
		Name:    "Ünïcode Näme",
		Email:   "a+b@example.com",
		Subject: "50% off?",
		Message: "line one\nline two",
	}

	target := contact.BuildTarget("owner@example.org", f)

	assert.Contains(t, target, "Subject=50%25%20off%3F")
	assert.Contains(t, target, "Email=a%2Bb%40example.com", "A literal plus must be %2B, not left bare")
	assert.Contains(t, target, "Message=line%20one%0Aline%20two")
	assert.NotContains(t, target, "+", "Form-encoding plus signs confuse mail clients")
}

func TestBuildTarget_EmptyFields(t *testing.T) {
	target := contact.BuildTarget("owner@example.org", contact.Fields{})

	assert.Equal(t, "mailto:owner@example.org?Subject=&Name=&Email=&Message=", target,
		"All keys are present even when empty")
}
