// Package metadata models the structured family description that accompanies
// a font family folder (METADATA.json).
package metadata

import (
	"path/filepath"
	"strings"

	"github.com/fontcheck/fontcheck/internal/domain/font"
)

// Family is the family-level metadata record.
type Family struct {
	Name     string         `json:"name"     validate:"required"`
	Designer string         `json:"designer"`
	License  string         `json:"license"  validate:"required"`
	Subsets  []string       `json:"subsets"`
	Fonts    []FontMetadata `json:"fonts"    validate:"required,min=1,dive"`
}

// FontMetadata describes one member font's declared attributes.
type FontMetadata struct {
	Name           string `json:"name"             validate:"required"`
	Style          string `json:"style"            validate:"oneof=normal italic"`
	Weight         int    `json:"weight"           validate:"min=100,max=900"`
	Filename       string `json:"filename"         validate:"required"`
	FullName       string `json:"full_name"`
	PostScriptName string `json:"post_script_name"`
	Copyright      string `json:"copyright"`
}

// CanonicalFilename derives the filename the metadata record should declare:
// family name without spaces, a weight suffix, "Italic" appended for italic
// styles, defaulting to "Regular" when the computed suffix is empty.
func (f FontMetadata) CanonicalFilename() string {
	family := strings.ReplaceAll(f.Name, " ", "")
	suffix := font.WeightValueToName[f.Weight]
	if f.Style == "italic" {
		suffix += "Italic"
	}
	if suffix == "" {
		suffix = "Regular"
	}
	return family + "-" + suffix + ".ttf"
}

// FilenameBase returns the declared filename without its extension.
func (f FontMetadata) FilenameBase() string {
	return strings.TrimSuffix(f.Filename, filepath.Ext(f.Filename))
}
