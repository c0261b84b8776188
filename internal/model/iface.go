package model

// DocumentStore reads the documents list.
type DocumentStore interface {
	ListDocuments() ([]Document, error)
}

// PreferenceStore persists the settings toggles.
type PreferenceStore interface {
	Preferences() (Preferences, error)
	SetPreference(key string, value bool) error
}
