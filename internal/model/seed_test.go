package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDocuments(t *testing.T) {
	data := []byte(`
documents:
  - name: Driving License
    status: Verified
    expiry: "2027-03-15"
  - id: 9
    name: FASTag Details
    status: verified
`)
	docs, err := ParseDocuments(data)
	if err != nil {
		t.Fatalf("ParseDocuments: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len(docs) = %d, want 2", len(docs))
	}
	if docs[0].ID != 1 || docs[0].Status != StatusVerified {
		t.Errorf("docs[0] = %+v", docs[0])
	}
	if docs[1].ID != 9 || docs[1].Expiry != "N/A" {
		t.Errorf("docs[1] = %+v", docs[1])
	}
}

func TestParseDocumentsRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"missing name": "documents:\n  - status: verified\n",
		"duplicate id": "documents:\n  - {id: 1, name: a}\n  - {id: 1, name: b}\n",
		"not yaml":     "documents: [",
	}
	for name, in := range cases {
		if _, err := ParseDocuments([]byte(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.yml")
	if err := os.WriteFile(path, []byte("documents:\n  - name: Insurance\n    status: pending\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	docs, err := LoadDocuments(path)
	if err != nil {
		t.Fatalf("LoadDocuments: %v", err)
	}
	if len(docs) != 1 || docs[0].Status.Label() != "Pending" {
		t.Errorf("docs = %+v", docs)
	}

	if _, err := LoadDocuments(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStatusLabelUnknown(t *testing.T) {
	if got := DocumentStatus("revoked").Label(); got != "Unknown" {
		t.Errorf("Label() = %q, want Unknown", got)
	}
	if !(Preferences{}).Get(PrefAIMonitoring) {
		t.Error("default ai-monitoring should be on")
	}
	if (Preferences{PrefAIMonitoring: false}).Get(PrefAIMonitoring) {
		t.Error("explicit value should win over default")
	}
}
