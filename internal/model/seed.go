package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type documentsFile struct {
	Documents []Document `yaml:"documents"`
}

// LoadDocuments reads a YAML seed file of the form:
//
//	documents:
//	  - id: 1
//	    name: Driving License
//	    status: verified
//	    expiry: 2027-03-15
func LoadDocuments(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading documents file: %w", err)
	}
	return ParseDocuments(data)
}

// ParseDocuments decodes YAML seed data. IDs left at zero are assigned in order.
func ParseDocuments(data []byte) ([]Document, error) {
	var f documentsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing documents: %w", err)
	}
	seen := make(map[int]bool, len(f.Documents))
	for i := range f.Documents {
		d := &f.Documents[i]
		if d.Name == "" {
			return nil, fmt.Errorf("document %d: missing name", i+1)
		}
		if d.ID == 0 {
			d.ID = i + 1
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("document %q: duplicate id %d", d.Name, d.ID)
		}
		seen[d.ID] = true
		d.Status = ParseDocumentStatus(string(d.Status))
		if d.Expiry == "" {
			d.Expiry = "N/A"
		}
	}
	return f.Documents, nil
}
