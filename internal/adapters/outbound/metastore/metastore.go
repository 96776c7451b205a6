// Package metastore loads and persists the METADATA.json family description.
package metastore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/fontcheck/fontcheck/internal/domain/metadata"
)

const metadataFile = "METADATA.json"

// Store implements domain.MetadataStore.
type Store struct {
	validate *validator.Validate
}

func New() *Store {
	return &Store{validate: validator.New()}
}

// Load reads and structurally validates the family metadata. Validation
// failures are load errors: the checks assume a well-formed model.
func (s *Store) Load(familyDir string) (*metadata.Family, error) {
	data, err := os.ReadFile(filepath.Join(familyDir, metadataFile))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", metadataFile, err)
	}
	var fam metadata.Family
	if err := json.Unmarshal(data, &fam); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", metadataFile, err)
	}
	if err := s.validate.Struct(&fam); err != nil {
		return nil, fmt.Errorf("validating %s: %w", metadataFile, err)
	}
	return &fam, nil
}

// Save persists the family metadata. Invoked only by autofix paths.
func (s *Store) Save(familyDir string, fam *metadata.Family) error {
	data, err := json.MarshalIndent(fam, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", metadataFile, err)
	}
	return os.WriteFile(filepath.Join(familyDir, metadataFile), data, 0644)
}
