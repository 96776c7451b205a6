package checks

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/font"
)

// CheckFamilyNameDoesNotBeginWithADigit flags family names starting with a
// numeral; these are often not discoverable in Windows applications.
func CheckFamilyNameDoesNotBeginWithADigit(r *domain.Recorder, fnt *font.Font) {
	c := r.NewCheck("067", "Make sure family name does not begin with a digit")
	failed := false
	for _, name := range fnt.NameStrings(font.NameIDFontFamilyName) {
		if firstRuneIsDigit(name) {
			c.Error("Font family name %q begins with a digit!", name)
			failed = true
		}
	}
	if !failed {
		c.OK("Font family name first character is not a digit.")
	}
}

// CheckFullFontNameBeginsWithTheFontFamilyName requires the full font name
// entry to start with the family name entry.
func CheckFullFontNameBeginsWithTheFontFamilyName(r *domain.Recorder, fnt *font.Font) {
	c := r.NewCheck("068", "Does full font name begin with the font family name?")
	familyNames := fnt.NameStrings(font.NameIDFontFamilyName)
	fullNames := fnt.NameStrings(font.NameIDFullFontName)

	if len(familyNames) == 0 {
		c.Error("Font lacks a FONT_FAMILY_NAME entry (nameID=%d) in the name table.", font.NameIDFontFamilyName)
		return
	}
	if len(fullNames) == 0 {
		c.Error("Font lacks a FULL_FONT_NAME entry (nameID=%d) in the name table.", font.NameIDFullFontName)
		return
	}

	familyName := familyNames[0]
	fullName := fullNames[0]
	if !strings.HasPrefix(fullName, familyName) {
		c.Error("On the name table, the full font name (nameID %d: %q) does not begin with the font family name (nameID %d: %q).",
			font.NameIDFullFontName, fullName, font.NameIDFontFamilyName, familyName)
		return
	}
	c.OK("Full font name begins with the font family name.")
}

var postscriptNameRe = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

type namingRecommendation struct {
	Field string
	Rec   string
}

// CheckFontFollowsTheFamilyNamingRecommendations collects deviations from
// the family naming recommendations and reports them as an INFO table; it
// never fails the font.
func CheckFontFollowsTheFamilyNamingRecommendations(r *domain.Recorder, fnt *font.Font) {
	c := r.NewCheck("071", "Font follows the family naming recommendations?")
	var bad []namingRecommendation

	for _, name := range fnt.NameStrings(font.NameIDPostscriptName) {
		if !postscriptNameRe.MatchString(name) {
			bad = append(bad, namingRecommendation{"PostScript Name", "May contain only a-zA-Z0-9 characters and a hyphen"})
		}
		if strings.Count(name, "-") > 1 {
			bad = append(bad, namingRecommendation{"PostScript Name", "May contain not more than a single hyphen"})
		}
		if len(name) >= 30 {
			bad = append(bad, namingRecommendation{"PostScript Name", "Exceeds max length (30)"})
		}
	}
	for _, name := range fnt.NameStrings(font.NameIDFullFontName) {
		if len(name) >= 64 {
			bad = append(bad, namingRecommendation{"Full Font Name", "Exceeds max length (64)"})
		}
	}
	lengthLimited := []struct {
		nameID int
		field  string
	}{
		{font.NameIDFontFamilyName, "Family Name"},
		{font.NameIDFontSubfamilyName, "Style Name"},
		{font.NameIDTypographicFamilyName, "OT Family Name"},
		{font.NameIDTypographicSubfamily, "OT Style Name"},
	}
	for _, l := range lengthLimited {
		for _, name := range fnt.NameStrings(l.nameID) {
			if len(name) >= 32 {
				bad = append(bad, namingRecommendation{l.field, "Exceeds max length (32)"})
			}
		}
	}
	if fnt.OS2 != nil {
		weight := fnt.OS2.USWeightClass
		if weight%50 != 0 {
			bad = append(bad, namingRecommendation{"OS/2 usWeightClass", "Value should ideally be a multiple of 50."})
		}
		if weight < 250 {
			bad = append(bad, namingRecommendation{"OS/2 usWeightClass", "Value should ideally be 250 or more to avoid style-linked smear bold."})
		}
		if weight > 900 {
			bad = append(bad, namingRecommendation{"OS/2 usWeightClass", "Value should ideally be 900 or less."})
		}
	}

	if len(bad) == 0 {
		c.OK("Font follows the family naming recommendations.")
		return
	}
	var table strings.Builder
	table.WriteString("| Field | Recommendation |\n")
	table.WriteString("|:----- |:-------------- |\n")
	for _, b := range bad {
		fmt.Fprintf(&table, "| %s | %s |\n", b.Field, b.Rec)
	}
	c.Info("Font does not follow some family naming recommendations:\n\n%s", table.String())
}

// CheckNonASCIICharsInASCIIOnlyNameTableEntries rejects non-ASCII characters
// in entries with nameID 0-18; higher IDs are expressly for localization.
func CheckNonASCIICharsInASCIIOnlyNameTableEntries(r *domain.Recorder, fnt *font.Font) {
	c := r.NewCheck("074", "Are there non-ASCII characters in ASCII-only name table entries?")
	bad := 0
	for _, entry := range fnt.Names {
		if entry.NameID < 0 || entry.NameID > 18 {
			continue
		}
		for _, ch := range entry.Value {
			if ch > unicode.MaxASCII {
				bad++
				break
			}
		}
	}
	if bad > 0 {
		c.Error("There are %d strings containing non-ASCII characters in the ASCII-only name table entries.", bad)
		return
	}
	c.OK("None of the ASCII-only name table entries contain non-ASCII characters.")
}
