package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-folio/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"DefaultRecipient", config.DefaultRecipient},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"StubVCalendar", config.StubVCalendar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestGreetingBoundaries_Sanity checks the daypart intervals partition the day.
func TestGreetingBoundaries_Sanity(t *testing.T) {
	assert.Less(t, config.GreetNightEnd, config.GreetMorningEnd)
	assert.Less(t, config.GreetMorningEnd, config.GreetAfternoonEnd)
	assert.Less(t, config.GreetAfternoonEnd, config.GreetEveningEnd)
	assert.Less(t, config.GreetEveningEnd, config.HoursPerDay)
}

// TestMailto_Format pins the wire-level pieces of the generated mailto URLs.
func TestMailto_Format(t *testing.T) {
	assert.True(t, strings.HasSuffix(config.MailtoScheme, ":"), "Scheme must end with a colon")
	assert.Contains(t, config.DefaultRecipient, "@")
	assert.NotContains(t, config.DefaultRecipient, "mailto:", "Recipient is a bare address, not a URL")
}

// TestTimeoutsAndLimits ensures that operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")
	assert.Greater(t, config.ServerReadTimeout, 0*time.Second)
	assert.Greater(t, config.ServerWriteTimeout, 0*time.Second)

	assert.GreaterOrEqual(t, config.MinPort, 1)
	assert.Equal(t, 65535, config.MaxPort)

	assert.Greater(t, config.DefaultICalRefresh, time.Hour, "Feed refresh hint should not hammer clients")
}

// TestRoutes_Distinct: the two served documents must never collide.
func TestRoutes_Distinct(t *testing.T) {
	assert.NotEqual(t, config.RouteTimeline, config.RouteContactCard)
	assert.True(t, strings.HasPrefix(config.RouteTimeline, "/"))
	assert.True(t, strings.HasPrefix(config.RouteContactCard, "/"))
}
