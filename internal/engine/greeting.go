package engine

import "github.com/tartampluch/go-folio/internal/config"

// GreetingKey maps an hour of day to the translation key of its daypart.
// Boundaries are half-open: [0,5) and [22,24) night, [5,12) morning,
// [12,18) afternoon, [18,22) evening. Hours outside [0,24) are clamped
// into range rather than treated as an error.
func GreetingKey(hour int) string {
	if hour < 0 {
		hour = 0
	}
	if hour >= config.HoursPerDay {
		hour = config.HoursPerDay - 1
	}

	switch {
	case hour < config.GreetNightEnd:
		return config.TKeyGreetNight
	case hour < config.GreetMorningEnd:
		return config.TKeyGreetMorning
	case hour < config.GreetAfternoonEnd:
		return config.TKeyGreetAfternoon
	case hour < config.GreetEveningEnd:
		return config.TKeyGreetEvening
	default:
		return config.TKeyGreetNight
	}
}

// FallbackGreeting returns the English label for a daypart key. The UI
// prefers the localizer and uses this table when translation fails.
func FallbackGreeting(key string) string {
	switch key {
	case config.TKeyGreetMorning:
		return config.FallbackGreetMorning
	case config.TKeyGreetAfternoon:
		return config.FallbackGreetAfternoon
	case config.TKeyGreetEvening:
		return config.FallbackGreetEvening
	default:
		return config.FallbackGreetNight
	}
}
