package duckdb

import (
	"fmt"

	"github.com/vahanchain/vahanchain/internal/model"
)

// ListDocuments returns every document ordered by id.
func (s *Store) ListDocuments() ([]model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ctx, cancel := s.ctx()
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, status, expiry, icon FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []model.Document
	for rows.Next() {
		var d model.Document
		var status string
		if err := rows.Scan(&d.ID, &d.Name, &status, &d.Expiry, &d.Icon); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		d.Status = model.DocumentStatus(status)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// UpsertDocument inserts doc or replaces the row with the same id.
func (s *Store) UpsertDocument(doc model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx, cancel := s.ctx()
	defer cancel()

	expiry := doc.Expiry
	if expiry == "" {
		expiry = "N/A"
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, name, status, expiry, icon) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			status = excluded.status,
			expiry = excluded.expiry,
			icon = excluded.icon,
			updated_at = now()`,
		doc.ID, doc.Name, string(doc.Status), expiry, doc.Icon)
	if err != nil {
		return fmt.Errorf("upsert document %d: %w", doc.ID, err)
	}
	return nil
}

// SeedDocuments fills an empty documents table. It reports whether rows
// were written; an existing list is never touched.
func (s *Store) SeedDocuments(docs []model.Document) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx, cancel := s.ctx()
	defer cancel()

	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&n); err != nil {
		return false, fmt.Errorf("count documents: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, d := range docs {
		expiry := d.Expiry
		if expiry == "" {
			expiry = "N/A"
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO documents (id, name, status, expiry, icon) VALUES (?, ?, ?, ?, ?)`,
			d.ID, d.Name, string(d.Status), expiry, d.Icon); err != nil {
			return false, fmt.Errorf("seed document %q: %w", d.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}
	return true, nil
}
