package duckdb

import (
	"fmt"

	"github.com/vahanchain/vahanchain/internal/model"
)

// Preferences returns the stored toggles. Keys never written are absent.
func (s *Store) Preferences() (model.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ctx, cancel := s.ctx()
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM preferences`)
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	defer rows.Close()

	prefs := make(model.Preferences)
	for rows.Next() {
		var k string
		var v bool
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		prefs[k] = v
	}
	return prefs, rows.Err()
}

// SetPreference stores a single toggle.
func (s *Store) SetPreference(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx, cancel := s.ctx()
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = now()`,
		key, value)
	if err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}

// SeedPreferences writes defaults for keys that have no stored value.
func (s *Store) SeedPreferences(defaults model.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx, cancel := s.ctx()
	defer cancel()

	for k, v := range defaults {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO preferences (key, value) VALUES (?, ?) ON CONFLICT (key) DO NOTHING`, k, v); err != nil {
			return fmt.Errorf("seed preference %s: %w", k, err)
		}
	}
	return nil
}
