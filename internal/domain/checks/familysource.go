package checks

import (
	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/font"
)

// CheckAllFontsHaveMatchingGlyphNames requires every member of the family to
// expose the same glyph name set.
func CheckAllFontsHaveMatchingGlyphNames(r *domain.Recorder, fonts []*font.Font) {
	c := r.NewCheck("120", "Each font in family has matching glyph names?")
	var reference []string
	failed := false
	for _, fnt := range fonts {
		names := sortedGlyphNames(fnt)
		if reference == nil {
			reference = names
			continue
		}
		if !equalStrings(reference, names) {
			failed = true
			c.Error("Font %q has different glyphs in comparison to other fonts in this family.", fnt.Filename)
			break
		}
	}
	if !failed {
		c.OK("All fonts in family have matching glyph names.")
	}
}

// CheckGlyphsHaveSameNumOfContours requires every shared glyph to have the
// same contour count across the family.
func CheckGlyphsHaveSameNumOfContours(r *domain.Recorder, fonts []*font.Font) {
	c := r.NewCheck("121", "Glyphs have same number of contours across family?")
	seen := make(map[string]int)
	failed := false
	for _, fnt := range fonts {
		for _, name := range sortedGlyphNames(fnt) {
			contours := fnt.Glyphs[name].NumContours()
			if prior, ok := seen[name]; ok && prior != contours {
				failed = true
				c.Error("Number of contours of glyph %q does not match. Expected %d contours, but actual is %d contours.", name, prior, contours)
			}
			seen[name] = contours
		}
	}
	if !failed {
		c.OK("Glyphs have same number of contours across family.")
	}
}

// CheckGlyphsHaveSameNumOfPoints requires every shared glyph to have the same
// point count across the family.
func CheckGlyphsHaveSameNumOfPoints(r *domain.Recorder, fonts []*font.Font) {
	c := r.NewCheck("122", "Glyphs have same number of points across family?")
	seen := make(map[string]int)
	failed := false
	for _, fnt := range fonts {
		for _, name := range sortedGlyphNames(fnt) {
			points := fnt.Glyphs[name].NumPoints()
			if prior, ok := seen[name]; ok && prior != points {
				failed = true
				c.Error("Number of points of glyph %q does not match. Expected %d points, but actual is %d points.", name, prior, points)
			}
			seen[name] = points
		}
	}
	if !failed {
		c.OK("Glyphs have same number of points across family.")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
