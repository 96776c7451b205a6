// Package fontdump implements the external-parser boundary over JSON table
// dumps. A companion tool parses the binary fonts and writes one
// `<name>.ttf.json` dump per font; this adapter loads the table object model
// from those dumps and writes autofixed tables back through them.
package fontdump

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fontcheck/fontcheck/internal/domain/font"
)

const dumpSuffix = ".json"

// Store implements domain.FontParser.
type Store struct{}

func New() *Store {
	return &Store{}
}

// Discover lists the logical font file names of a family folder: every
// `<name>.ttf.json` dump contributes "<name>.ttf".
func (s *Store) Discover(familyDir string) ([]string, error) {
	entries, err := os.ReadDir(familyDir)
	if err != nil {
		return nil, fmt.Errorf("reading family folder %s: %w", familyDir, err)
	}
	var fonts []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, dumpSuffix) {
			continue
		}
		logical := strings.TrimSuffix(name, dumpSuffix)
		ext := strings.ToLower(filepath.Ext(logical))
		if ext == ".ttf" || ext == ".otf" {
			fonts = append(fonts, logical)
		}
	}
	sort.Strings(fonts)
	return fonts, nil
}

func (s *Store) Parse(familyDir, filename string) (*font.Font, error) {
	data, err := os.ReadFile(filepath.Join(familyDir, filename+dumpSuffix))
	if err != nil {
		return nil, fmt.Errorf("reading table dump for %s: %w", filename, err)
	}
	var f font.Font
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding table dump for %s: %w", filename, err)
	}
	if f.Filename == "" {
		f.Filename = filename
	}
	return &f, nil
}

func (s *Store) Save(familyDir, filename string, f *font.Font) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding table dump for %s: %w", filename, err)
	}
	return os.WriteFile(filepath.Join(familyDir, filename+dumpSuffix), data, 0644)
}

// Path resolves the on-disk binary font location, for external tools that
// consume the font file itself rather than the dump.
func (s *Store) Path(familyDir, filename string) string {
	return filepath.Join(familyDir, filename)
}
