package model

import "strings"

// DocumentStatus is the verification state of a vehicle or driver document.
type DocumentStatus string

const (
	StatusVerified DocumentStatus = "verified"
	StatusPending  DocumentStatus = "pending"
	StatusExpired  DocumentStatus = "expired"
)

// Label is the human readable status.
func (s DocumentStatus) Label() string {
	switch s {
	case StatusVerified:
		return "Verified"
	case StatusPending:
		return "Pending"
	case StatusExpired:
		return "Expired"
	default:
		return "Unknown"
	}
}

// ParseDocumentStatus normalizes a status string. Unrecognized values are
// kept as-is and render as "Unknown".
func ParseDocumentStatus(s string) DocumentStatus {
	return DocumentStatus(strings.ToLower(strings.TrimSpace(s)))
}

// Document is a driver or vehicle document shown in the documents tab.
type Document struct {
	ID     int            `yaml:"id"`
	Name   string         `yaml:"name"`
	Status DocumentStatus `yaml:"status"`
	Expiry string         `yaml:"expiry"` // YYYY-MM-DD or "N/A"
	Icon   string         `yaml:"icon"`
}

// Preference keys for the settings toggles.
const (
	PrefAIMonitoring        = "ai-monitoring"
	PrefSafetyNotifications = "safety-notifications"
	PrefBiometricAuth       = "biometric-auth"
	PrefDataSharing         = "data-sharing"
)

// Preferences maps a toggle key to its state.
type Preferences map[string]bool

// Get returns the value for key, falling back to the built-in default.
func (p Preferences) Get(key string) bool {
	if v, ok := p[key]; ok {
		return v
	}
	return DefaultPreferences[key]
}

// Profile is the signed-in driver shown on the dashboard and settings.
type Profile struct {
	Name       string
	Email      string
	Level      string
	Reputation int
	// WeeklyScores are the reputation deltas for the last seven days, oldest first.
	WeeklyScores []float64
	FastagINR    float64
}
