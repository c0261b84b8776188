package duckdb

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// WalletSession is a wallet that completed the connection flow.
type WalletSession struct {
	Address     string
	ChainID     int64
	ConnectedAt time.Time
}

// RecordWalletSession remembers the most recent connection of address.
func (s *Store) RecordWalletSession(address string, chainID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx, cancel := s.ctx()
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO wallet_sessions (address, chain_id, connected_at) VALUES (?, ?, now())
		ON CONFLICT (address) DO UPDATE SET chain_id = excluded.chain_id, connected_at = now()`,
		address, chainID)
	if err != nil {
		return fmt.Errorf("record wallet session: %w", err)
	}
	return nil
}

// LastWalletSession returns the most recently connected wallet. ok is false
// when no wallet ever connected.
func (s *Store) LastWalletSession() (sess WalletSession, ok bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ctx, cancel := s.ctx()
	defer cancel()

	err = s.db.QueryRowContext(ctx,
		`SELECT address, chain_id, connected_at FROM wallet_sessions ORDER BY connected_at DESC LIMIT 1`).
		Scan(&sess.Address, &sess.ChainID, &sess.ConnectedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return WalletSession{}, false, nil
	}
	if err != nil {
		return WalletSession{}, false, fmt.Errorf("last wallet session: %w", err)
	}
	return sess, true, nil
}
