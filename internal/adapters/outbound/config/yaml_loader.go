package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fontcheck/fontcheck/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".fontcheck.yaml"

// YAMLLoader reads the per-family run configuration from .fontcheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .fontcheck.yaml from familyDir. Returns DefaultRunConfig when
// the file does not exist.
func (l *YAMLLoader) Load(familyDir string) (domain.RunConfig, error) {
	data, err := os.ReadFile(filepath.Join(familyDir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultRunConfig(), nil
		}
		return domain.RunConfig{}, err
	}

	cfg := domain.DefaultRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.RunConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate before use. Catches typos in the user's raw input.
	if err := cfg.Validate(); err != nil {
		return domain.RunConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}
