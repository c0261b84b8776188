package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vahanchain/vahanchain/internal/model"
)

func documentByID(t *testing.T, cfg appConfig, id int) model.Document {
	t.Helper()
	store, err := openStore(cfg)
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer store.Close()

	docs, err := store.ListDocuments()
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	for _, d := range docs {
		if d.ID == id {
			return d
		}
	}
	t.Fatalf("document %d not found in %v", id, docs)
	return model.Document{}
}

func TestOpenStoreSyncsDocumentsFile(t *testing.T) {
	dir := t.TempDir()
	cfg := appConfig{DBPath: filepath.Join(dir, "v.duckdb")}

	if got := documentByID(t, cfg, 3); got.Status != model.StatusPending {
		t.Fatalf("seeded status = %s, want pending", got.Status)
	}

	cfg.DocumentsFile = filepath.Join(dir, "docs.yml")
	body := `documents:
  - id: 3
    name: Insurance Certificate
    status: verified
    expiry: 2026-12-30
`
	if err := os.WriteFile(cfg.DocumentsFile, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	got := documentByID(t, cfg, 3)
	if got.Status != model.StatusVerified || got.Expiry != "2026-12-30" {
		t.Errorf("document 3 = %+v, want verified until 2026-12-30", got)
	}
	if other := documentByID(t, cfg, 1); other.Name != "Driving License" {
		t.Errorf("document 1 = %+v, untouched rows should survive", other)
	}
}

func TestOpenStoreRejectsBadDocumentsFile(t *testing.T) {
	dir := t.TempDir()
	cfg := appConfig{
		DBPath:        filepath.Join(dir, "v.duckdb"),
		DocumentsFile: filepath.Join(dir, "missing.yml"),
	}
	if store, err := openStore(cfg); err == nil {
		store.Close()
		t.Fatal("openStore should fail when the documents file is missing")
	}
}
