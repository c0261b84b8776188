package model

import "time"

// Shared defaults used by the app and the deploy CLI.
const (
	DefaultChainID         = 43113
	DefaultRPCURL          = "https://api.avax-test.network/ext/bc/C/rpc"
	DefaultExplorerURL     = "https://avalanche.testnet.routescan.io"
	DefaultAppName         = "VahanChain"
	DefaultAppDescription  = "Decentralized Driver Safety & Identity on Avalanche"
	DefaultAppURL          = "https://vahanchain.app"
	DefaultAppRedirect     = "vahanchain://"
	DefaultBridgePort      = 7420
	DefaultLoadingDuration = 4500 * time.Millisecond
	DefaultSplashStep      = 50 * time.Millisecond
	DefaultSplashIncrement = 2
	DefaultSplashHold      = 500 * time.Millisecond
	DefaultPermissionDelay = time.Second
	AppVersion             = "1.0.0"
)

// NetworkName returns the display name for a chain id.
func NetworkName(chainID int64) string {
	switch chainID {
	case 43113:
		return "Avalanche Fuji"
	case 43114:
		return "Avalanche C-Chain"
	case 1:
		return "Ethereum Mainnet"
	case 1337:
		return "Local Dev Chain"
	default:
		return "Unknown Network"
	}
}

// DefaultPreferences are the toggle values on first run.
var DefaultPreferences = Preferences{
	PrefAIMonitoring:        true,
	PrefSafetyNotifications: true,
	PrefBiometricAuth:       false,
	PrefDataSharing:         true,
}

// DefaultDocuments seeds the documents table on first run.
func DefaultDocuments() []Document {
	return []Document{
		{ID: 1, Name: "Driving License", Status: StatusVerified, Expiry: "2027-03-15", Icon: "🪪"},
		{ID: 2, Name: "Vehicle Registration", Status: StatusVerified, Expiry: "2025-08-22", Icon: "🚗"},
		{ID: 3, Name: "Insurance Certificate", Status: StatusPending, Expiry: "2024-12-30", Icon: "🛡"},
		{ID: 4, Name: "Pollution Certificate", Status: StatusExpired, Expiry: "2024-01-15", Icon: "🌿"},
		{ID: 5, Name: "FASTag Details", Status: StatusVerified, Expiry: "N/A", Icon: "💳"},
	}
}

// DefaultProfile is the demo driver profile.
func DefaultProfile() Profile {
	return Profile{
		Name:         "Alex Johnson",
		Email:        "alex.johnson@email.com",
		Level:        "Safe Driver Level 3",
		Reputation:   850,
		WeeklyScores: []float64{12, 18, 9, 22, 15, 25, 20},
		FastagINR:    1520,
	}
}
