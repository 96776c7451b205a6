package checks

import (
	"fmt"

	"github.com/fontcheck/fontcheck/internal/domain"
)

// structuralRule is one decoded bit of the external glyph-structure
// validator's state word. Bits are mutually independent; the table order
// only fixes the sub-check numbering.
type structuralRule struct {
	bit         uint32
	description string
	errMsg      string
	okMsg       string
}

var structuralRules = []structuralRule{
	{0x2, "Contours are closed?", "Contours are not closed!", "Contours are closed."},
	{0x4, "Contours do not intersect", "There are contour intersections!", "Contours do not intersect."},
	{0x8, "Contours have correct directions", "Contours have incorrect directions!", "Contours have correct directions."},
	{0x10, "References in the glyph haven't been flipped", "References in the glyph have been flipped!", "References in the glyph haven't been flipped."},
	{0x20, "Glyphs have points at extremas", "Glyphs do not have points at extremas!", "Glyphs have points at extremas."},
	{0x40, "Glyph names referred to from glyphs present in the font", "Glyph names referred to from glyphs not present in the font!", "Glyph names referred to from glyphs present in the font."},
	{0x40000, "Points (or control points) are not too far apart", "Points (or control points) are too far apart!", "Points (or control points) are not too far apart."},
	{0x80, "Not more than 1,500 points in any glyph (a PostScript limit)", "There are glyphs with more than 1,500 points! Exceeds a PostScript limit.", "Not more than 1,500 points in any glyph (a PostScript limit)."},
	{0x100, "PostScript has a limit of 96 hints in glyphs", "Exceeds PostScript limit of 96 hints per glyph.", "Font respects PostScript limit of 96 hints per glyph."},
	{0x200, "Font doesn't have invalid glyph names", "Font has invalid glyph names!", "Font doesn't have invalid glyph names."},
	{0x400, "Glyphs have allowed numbers of points defined in maxp", "Glyphs exceed allowed numbers of points defined in maxp!", "Glyphs have allowed numbers of points defined in maxp."},
	{0x800, "Glyphs have allowed numbers of paths defined in maxp", "Glyphs exceed allowed numbers of paths defined in maxp!", "Glyphs have allowed numbers of paths defined in maxp."},
	{0x1000, "Composite glyphs have allowed numbers of points defined in maxp?", "Composite glyphs exceed allowed numbers of points defined in maxp!", "Composite glyphs have allowed numbers of points defined in maxp."},
	{0x2000, "Composite glyphs have allowed numbers of paths defined in maxp", "Composite glyphs exceed allowed numbers of paths defined in maxp!", "Composite glyphs have allowed numbers of paths defined in maxp."},
	{0x4000, "Glyphs instructions have valid lengths", "Glyphs instructions have invalid lengths!", "Glyphs instructions have valid lengths."},
	{0x80000, "Points in glyphs are integer aligned", "Points in glyphs are not integer aligned!", "Points in glyphs are integer aligned."},
	// If a glyph carries an anchor point for one anchor class in a subtable
	// it must carry anchor points for all anchor classes in that subtable.
	{0x100000, "Glyphs have all required anchors.", "Glyphs do not have all required anchors!", "Glyphs have all required anchors."},
	{0x200000, "Glyph names are unique?", "Glyph names are not unique!", "Glyph names are unique."},
	{0x400000, "Unicode code points are unique?", "Unicode code points are not unique!", "Unicode code points are unique."},
	{0x800000, "Do hints overlap?", "Hints should NOT overlap!", "Hints do not overlap."},
}

// CheckGlyphStructure decodes the validator state word into one sub-check
// per known defect bit. Sub-check IDs are a fixed enumeration ("039-01",
// "039-02", ...) so report ordering and identity never depend on hashing.
func CheckGlyphStructure(r *domain.Recorder, validationState uint32) {
	for i, rule := range structuralRules {
		c := r.NewCheck(fmt.Sprintf("039-%02d", i+1), "glyph-structure: "+rule.description)
		if validationState&rule.bit != 0 {
			c.Error("glyph-structure: %s", rule.errMsg)
			continue
		}
		c.OK("glyph-structure: %s", rule.okMsg)
	}
}
