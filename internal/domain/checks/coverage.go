package checks

import (
	"context"
	"errors"
	"strings"

	"github.com/fontcheck/fontcheck/internal/domain"
)

// fullSupportMarker is the coverage tool's literal for complete glyph-set
// support.
const fullSupportMarker = "Support level: full"

// GlyphSetCheck binds one check ID to one named glyph set of the external
// coverage tool.
type GlyphSetCheck struct {
	ID       string
	Title    string
	GlyphSet string
}

// GlyphSetChecks is the fixed coverage catalog, one entry per supported
// glyph set.
var GlyphSetChecks = []GlyphSetCheck{
	{"132", "Checking Cyrillic Historical glyph coverage", "google_cyrillic_historical"},
	{"133", "Checking Google Cyrillic Plus glyph coverage", "google_cyrillic_plus"},
	{"134", "Checking Google Cyrillic Plus (Localized Forms) glyph coverage", "google_cyrillic_plus_locl"},
	{"135", "Checking Google Cyrillic Pro glyph coverage", "google_cyrillic_pro"},
	{"136", "Checking Google Greek Ancient Musical Symbols glyph coverage", "google_greek_ancient_musical_symbols"},
	{"137", "Checking Google Greek Archaic glyph coverage", "google_greek_archaic"},
	{"138", "Checking Google Greek Coptic glyph coverage", "google_greek_coptic"},
	{"139", "Checking Google Greek Core glyph coverage", "google_greek_core"},
	{"140", "Checking Google Greek Expert glyph coverage", "google_greek_expert"},
	{"141", "Checking Google Greek Plus glyph coverage", "google_greek_plus"},
	{"142", "Checking Google Greek Pro glyph coverage", "google_greek_pro"},
	{"143", "Checking Google Latin Core glyph coverage", "google_latin_core"},
	{"144", "Checking Google Latin Expert glyph coverage", "google_latin_expert"},
	{"145", "Checking Google Latin Plus glyph coverage", "google_latin_plus"},
	{"146", "Checking Google Latin Plus (Optional Glyphs) glyph coverage", "google_latin_plus_optional"},
	{"147", "Checking Google Latin Pro glyph coverage", "google_latin_pro"},
	{"148", "Checking Google Latin Pro (Optional Glyphs) glyph coverage", "google_latin_pro_optional"},
	{"149", "Checking Google Arabic glyph coverage", "google_arabic"},
	{"150", "Checking Google Vietnamese glyph coverage", "google_vietnamese"},
	{"151", "Checking Google Extras glyph coverage", "google_extras"},
}

// CheckGlyphCoverage runs one glyph-set coverage check through the external
// tool. Full support is OK, partial support is ERROR with the tool output
// embedded, and an invocation that could not run at all is a WARNING.
func CheckGlyphCoverage(r *domain.Recorder, ctx context.Context, runner domain.CoverageRunner, fontPath string, gc GlyphSetCheck) {
	c := r.NewCheck(gc.ID, gc.Title)
	if !glyphSetEnabled(r.Config.GlyphSets, gc.GlyphSet) {
		c.Skip("Glyph set %q is not enabled for this run.", gc.GlyphSet)
		return
	}
	output, err := runner.Run(ctx, fontPath, gc.GlyphSet)
	if errors.Is(err, domain.ErrCoverageToolUnavailable) {
		c.Warning("pyfontaine is not available! You really MUST check the fonts with this tool.")
		return
	}
	if err != nil {
		c.Error("pyfontaine returned an error code. Output follows:\n\n%s\n", output)
		return
	}
	if !strings.Contains(output, fullSupportMarker) {
		c.Error("pyfontaine output follows:\n\n%s\n", output)
		return
	}
	c.OK("pyfontaine passed this file.")
}

func glyphSetEnabled(enabled []string, set string) bool {
	if len(enabled) == 0 {
		return true
	}
	for _, s := range enabled {
		if s == set {
			return true
		}
	}
	return false
}
