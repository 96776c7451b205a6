// Package checks holds the rule catalog. Every rule is a pure function of
// the recorder plus the minimal inputs it needs, recording one or more
// events before returning.
package checks

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/font"
	"github.com/fontcheck/fontcheck/internal/domain/metadata"
)

// CheckFileIsNamedCanonically verifies the font's filename is composed as
// <familyname>-<stylename>.ttf, e.g. Nunito-Regular.ttf or
// Oswald-BoldItalic.ttf. Returns whether the name is canonical.
func CheckFileIsNamedCanonically(r *domain.Recorder, fontFilename string) bool {
	c := r.NewCheck("001", "Checking file is named canonically")
	c.SetPriority(domain.PriorityCritical)

	basename := strings.TrimSuffix(filepath.Base(fontFilename), filepath.Ext(fontFilename))
	styleFileNames := make(map[string]bool, len(font.StyleNames))
	for _, name := range font.StyleNames {
		styleFileNames[strings.ReplaceAll(name, " ", "")] = true
	}

	if i := strings.Index(basename, "-"); i >= 0 && styleFileNames[basename[i+1:]] {
		c.OK("%s is named canonically.", fontFilename)
		return true
	}
	c.Error("Style name used in %q is not canonical. You should rebuild the font"+
		" using any of the following style names: %q.", fontFilename, font.StyleNames)
	return false
}

// CheckFilenameIsSetCanonically verifies the METADATA filename field derives
// from (name, weight, style) by the canonical formatting rule.
func CheckFilenameIsSetCanonically(r *domain.Recorder, f metadata.FontMetadata) {
	c := r.NewCheck("105", "Filename is set canonically in METADATA?")
	canonical := f.CanonicalFilename()
	if canonical != f.Filename {
		c.Error("METADATA filename field (%q) does not match canonical name %q.",
			f.Filename, canonical)
		return
	}
	c.OK("Filename in METADATA is set canonically.")
}

// CheckFontNameIsNotCamelCased flags camel-cased font names; spaces should
// be used instead.
func CheckFontNameIsNotCamelCased(r *domain.Recorder, f metadata.FontMetadata) {
	c := r.NewCheck("109", "Check if fontname is not camel cased")
	words := camelcase.Split(f.Name)
	if len(words) >= 2 && !strings.ContainsAny(f.Name, " -") {
		c.Error("METADATA: %q is a camel-cased name. To solve this, simply use"+
			" spaces instead in the font name.", f.Name)
		return
	}
	c.OK("Font name is not camel-cased.")
}

// CheckFontNameIsTheSameAsFamilyName compares metadata font name and family
// name with literal equality, no normalization.
func CheckFontNameIsTheSameAsFamilyName(r *domain.Recorder, fam *metadata.Family, f metadata.FontMetadata) {
	c := r.NewCheck("110", "Check font name is the same as family name")
	if f.Name != fam.Name {
		c.Error("METADATA: %s: family name %q does not match font name %q.",
			f.Filename, fam.Name, f.Name)
		return
	}
	c.OK("Font name is the same as family name.")
}

// CheckFontWeightHasACanonicalValue verifies the declared weight is a
// multiple of 100 in [100, 900].
func CheckFontWeightHasACanonicalValue(r *domain.Recorder, f metadata.FontMetadata) {
	c := r.NewCheck("111", "Check that font weight has a canonical value")
	if f.Weight%100 != 0 || f.Weight < 100 || f.Weight > 900 {
		c.Error("METADATA: the weight is declared as %d which is not a multiple"+
			" of 100 between 100 and 900.", f.Weight)
		return
	}
	c.OK("Font weight has a canonical value.")
}

// CheckWeightMatchesPostScriptName verifies the postscript name ends with a
// style suffix matching the declared weight.
func CheckWeightMatchesPostScriptName(r *domain.Recorder, f metadata.FontMetadata) {
	c := r.NewCheck("113", "Metadata weight matches postScriptName")
	var suffixes []string
	for name, weight := range font.StyleWeights {
		if weight == f.Weight {
			suffixes = append(suffixes, name)
		}
	}
	if len(suffixes) == 0 {
		c.Error("METADATA: font weight %d does not match any postScriptName suffix.", f.Weight)
		return
	}
	for _, suffix := range suffixes {
		if strings.HasSuffix(f.PostScriptName, "-"+suffix) {
			c.OK("Weight value matches postScriptName.")
			return
		}
	}
	c.Error("METADATA: postScriptName (%q) with weight %d must end with one of %q.",
		f.PostScriptName, f.Weight, suffixes)
}

// CheckFontsNamedCanonically verifies the metadata full name equals
// "<family name> <weight suffix>" for the weight declared in OS/2.
func CheckFontsNamedCanonically(r *domain.Recorder, fnt *font.Font, f metadata.FontMetadata) {
	c := r.NewCheck("114", "METADATA lists fonts named canonically?")
	familyNames := fnt.NameStrings(font.NameIDFontFamilyName)
	if len(familyNames) == 0 {
		c.Skip("Skipping this check due to the lack of a FONT_FAMILY_NAME in the name table.")
		return
	}
	familyName := familyNames[0]

	if fnt.OS2 == nil {
		c.Error("Font lacks an OS/2 table, so the weight cannot be verified.")
		return
	}
	var candidates []string
	for suffix, weight := range font.StyleWeights {
		if weight == fnt.OS2.USWeightClass {
			candidates = append(candidates, familyName+" "+suffix)
		}
	}
	for _, name := range candidates {
		if f.FullName == name {
			c.OK("METADATA lists fonts named canonically.")
			return
		}
	}
	c.Error("Canonical name in font: expected one of %q but got %q instead.",
		candidates, f.FullName)
}

// CheckFontStylesAreNamedCanonically cross-checks the declared style against
// the font's italic signals (macStyle bit, italic angle, name entries).
func CheckFontStylesAreNamedCanonically(r *domain.Recorder, fnt *font.Font, f metadata.FontMetadata) {
	c := r.NewCheck("115", "Font styles are named canonically?")
	if f.Style != "italic" && f.Style != "normal" {
		c.Skip("This check only applies to font styles declared as 'italic' or"+
			" 'normal' in METADATA.")
		return
	}

	italicInNames := false
	for _, entry := range fnt.Names {
		if strings.Contains(strings.ToLower(entry.Value), "italic") {
			italicInNames = true
			break
		}
	}
	isItalic := italicInNames
	if fnt.Head != nil && fnt.Head.MacStyle&font.MacStyleItalic != 0 {
		isItalic = true
	}
	if fnt.Post != nil && fnt.Post.ItalicAngle != 0 {
		isItalic = true
	}

	switch {
	case isItalic && f.Style != "italic":
		c.Error("The font style is %s but it should be italic.", f.Style)
	case !isItalic && f.Style != "normal":
		c.Error("The font style is %s but it should be normal.", f.Style)
	default:
		c.OK("Font styles are named canonically.")
	}
}

var nonWordRe = regexp.MustCompile(`\W`)

// stripNonWord removes every non-word character, mirroring the comparison
// rule for postscript-name matches.
func stripNonWord(s string) string {
	return nonWordRe.ReplaceAllString(s, "")
}

func firstRuneIsDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}
