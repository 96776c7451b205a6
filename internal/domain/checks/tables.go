package checks

import (
	"bytes"
	"sort"
	"strings"

	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/font"
)

// CheckNonLigatedSequencesKerning verifies that every ligature discovered in
// the font has kerning on the corresponding non-ligated glyph pair, so text
// rendered without ligatures keeps its spacing.
func CheckNonLigatedSequencesKerning(r *domain.Recorder, fnt *font.Font, hasKerningInfo bool) {
	c := r.NewCheck("065", "Is there kerning info for non-ligated sequences?")
	if !hasKerningInfo {
		c.Skip("This font lacks kerning info.")
		return
	}

	remaining := make(map[string][]string, len(fnt.Ligatures))
	for first, seconds := range fnt.Ligatures {
		remaining[first] = append([]string(nil), seconds...)
	}

	if fnt.GPOS != nil {
		for _, lookup := range fnt.GPOS.PairLookups {
			for i, first := range lookup.Coverage {
				if _, ok := remaining[first]; !ok {
					continue
				}
				if i >= len(lookup.PairSets) {
					c.Warning("GPOS pair set for glyph %q could not be read.", first)
					continue
				}
				for _, pv := range lookup.PairSets[i] {
					for _, second := range remaining[first] {
						if pv.SecondGlyph == second {
							delete(remaining, first)
							break
						}
					}
				}
			}
		}
	}

	if len(remaining) > 0 {
		var pairs []string
		for first, seconds := range remaining {
			for _, second := range seconds {
				pairs = append(pairs, first+"_"+second)
			}
		}
		sort.Strings(pairs)
		c.Error("GPOS table lacks kerning info for the following non-ligated sequences: %s.", strings.Join(pairs, ", "))
		return
	}
	c.OK("GPOS table provides kerning info for all non-ligated sequences.")
}

// CheckNoKERNTable rejects fonts declaring a legacy KERN table; kerning
// belongs in GPOS.
func CheckNoKERNTable(r *domain.Recorder, fnt *font.Font) {
	c := r.NewCheck("066", "Is there a 'KERN' table declared in the font?")
	if fnt.HasKern {
		c.Error("Font should not have a 'KERN' table.")
		return
	}
	c.OK("Font does not declare a 'KERN' table.")
}

// CheckNoUnusedDataAtTheEndOfGlyfTable compares the glyf table length against
// the length the loca table implies. Up to 3 bytes of padding is tolerated.
func CheckNoUnusedDataAtTheEndOfGlyfTable(r *domain.Recorder, fnt *font.Font) {
	c := r.NewCheck("069", "Is there any unused data at the end of the glyf table?")
	if fnt.HasCFF {
		c.Skip("This check does not support CFF fonts.")
		return
	}
	expected := fnt.LocaEntries - 1
	actual := fnt.GlyfLength
	diff := actual - expected
	switch {
	case diff > 3:
		c.Error("Glyf table has unreachable data at the end of the table. Expected glyf table length %d (from loca table), got length %d (difference: %d).", expected, actual, diff)
	case diff < 0:
		c.Error("Loca table references data beyond the end of the glyf table. Expected glyf table length %d (from loca table), got length %d (difference: %d).", expected, actual, diff)
	default:
		c.OK("There is no unused data at the end of the glyf table.")
	}
}

// CheckFontHasEuroSignCharacter requires a glyph named "Euro" reachable from
// a Unicode cmap subtable.
func CheckFontHasEuroSignCharacter(r *domain.Recorder, fnt *font.Font) {
	c := r.NewCheck("070", "Font has 'EURO SIGN' character?")
	if len(fnt.ReverseCmap()["Euro"]) > 0 {
		c.OK("Font has 'EURO SIGN' character.")
		return
	}
	c.Error("Font lacks the 'EURO SIGN' character.")
}

// smartDropoutInstructions is the PUSHW 0x01FF, SCANCTRL, PUSHB 0x04,
// SCANTYPE sequence that enables smart dropout control.
var smartDropoutInstructions = []byte{0xb8, 0x01, 0xff, 0x85, 0xb0, 0x04, 0x8d}

// CheckFontEnablesSmartDropoutControl looks for the smart dropout control
// instruction sequence in the prep program.
func CheckFontEnablesSmartDropoutControl(r *domain.Recorder, fnt *font.Font) {
	c := r.NewCheck("072", "Font enables smart dropout control in 'prep' table instructions?")
	if fnt.HasCFF {
		c.Skip("Not applicable to a CFF font.")
		return
	}
	if bytes.Contains(fnt.PrepBytecode, smartDropoutInstructions) {
		c.OK("Program at 'prep' table contains instructions enabling smart dropout control.")
		return
	}
	c.Warning("Font does not contain TrueType instructions enabling smart dropout control in the 'prep' table program. Please try exporting the font with autohinting enabled.")
}

// CheckMaxAdvanceWidthConsistent verifies hhea.advanceWidthMax equals the
// maximum advance width found in hmtx.
func CheckMaxAdvanceWidthConsistent(r *domain.Recorder, fnt *font.Font) {
	c := r.NewCheck("073", "MaxAdvanceWidth is consistent with values in the Hmtx and Hhea tables?")
	if len(fnt.Metrics) == 0 {
		c.Error("Failed to find advance width data in HMTX table!")
		return
	}
	if fnt.Hhea == nil {
		c.Error("Font lacks an hhea table.")
		return
	}
	hmtxMax := 0
	for _, advance := range fnt.Metrics {
		if advance > hmtxMax {
			hmtxMax = advance
		}
	}
	if hmtxMax != fnt.Hhea.AdvanceWidthMax {
		c.Error("AdvanceWidthMax mismatch: expected %d (from hmtx); got %d (from hhea).", hmtxMax, fnt.Hhea.AdvanceWidthMax)
		return
	}
	c.OK("MaxAdvanceWidth is consistent with values in the Hmtx and Hhea tables.")
}

// CheckForPointsOutOfBounds warns on outline points outside the glyph's
// bounding box or beyond the 32766 coordinate limit. Points off extremes are
// common and often harmless, so this never errors.
func CheckForPointsOutOfBounds(r *domain.Recorder, fnt *font.Font) {
	c := r.NewCheck("075", "Check for points out of bounds")
	failed := false
	for _, name := range sortedGlyphNames(fnt) {
		glyph := fnt.Glyphs[name]
		for _, contour := range glyph.Contours {
			for _, p := range contour {
				if p.X < glyph.XMin || p.X > glyph.XMax ||
					p.Y < glyph.YMin || p.Y > glyph.YMax ||
					abs(p.X) > 32766 || abs(p.Y) > 32766 {
					failed = true
					c.Warning("Glyph %q coordinates (%d,%d) out of bounds. This happens a lot when points are not extremes, which is usually bad. However, fixing this alert by adding points on extremes may do more harm than good, especially with italics, calligraphic-script, handwriting, rounded and other fonts. So it is common to ignore this message.", name, p.X, p.Y)
				}
			}
		}
	}
	if !failed {
		c.OK("All glyph paths have coordinates within bounds!")
	}
}

// CheckGlyphsHaveUniqueUnicodeCodepoints rejects Unicode subtables where two
// glyph names share one code point.
func CheckGlyphsHaveUniqueUnicodeCodepoints(r *domain.Recorder, fnt *font.Font) {
	c := r.NewCheck("076", "Check glyphs have unique unicode codepoints")
	failed := false
	byCodepoint := make(map[rune]map[string]bool)
	for _, sub := range fnt.Cmaps {
		if !sub.IsUnicode() {
			continue
		}
		for cp, name := range sub.Mapping {
			if byCodepoint[cp] == nil {
				byCodepoint[cp] = make(map[string]bool)
			}
			byCodepoint[cp][name] = true
		}
	}
	for cp, names := range byCodepoint {
		if len(names) < 2 {
			continue
		}
		failed = true
		var list []string
		for name := range names {
			list = append(list, name)
		}
		sort.Strings(list)
		c.Error("These glyphs carry the same unicode value %d: %s.", cp, strings.Join(list, ", "))
	}
	if !failed {
		c.OK("All glyphs have unique unicode codepoint assignments.")
	}
}

// CheckAllGlyphsHaveCodepointsAssigned rejects Unicode subtable entries that
// map a code point to an empty glyph name.
func CheckAllGlyphsHaveCodepointsAssigned(r *domain.Recorder, fnt *font.Font) {
	c := r.NewCheck("077", "Check all glyphs have codepoints assigned")
	failed := false
	for _, sub := range fnt.Cmaps {
		if !sub.IsUnicode() {
			continue
		}
		for cp, name := range sub.Mapping {
			if name == "" {
				failed = true
				c.Error("Codepoint %d lacks a glyph name assignment.", cp)
			}
		}
	}
	if !failed {
		c.OK("All glyphs have a codepoint value assigned.")
	}
}

// CheckGlyphNamesDoNotExceedMaxLength caps cmap glyph names at 109
// characters.
func CheckGlyphNamesDoNotExceedMaxLength(r *domain.Recorder, fnt *font.Font) {
	c := r.NewCheck("078", "Check that glyph names do not exceed max length")
	failed := false
	for _, sub := range fnt.Cmaps {
		for _, name := range sub.Mapping {
			if len(name) > 109 {
				failed = true
				c.Error("Glyph name is too long: %q.", name)
			}
		}
	}
	if !failed {
		c.OK("No glyph names exceed max allowed length.")
	}
}

// CheckFontEmSize warns when unitsPerEm differs from the conventional 1000.
// Skipped outside the hosted-fonts workflow.
func CheckFontEmSize(r *domain.Recorder, fnt *font.Font) {
	c := r.NewCheck("116", "Is font em size (ideally) equal to 1000?")
	if r.Config.SkipGoogleFonts {
		c.Skip("Skipping this hosted-fonts specific check.")
		return
	}
	upm, ok := fnt.Entry("head", "unitsPerEm")
	if !ok {
		c.Error("Font lacks a head table.")
		return
	}
	if upm != 1000 {
		c.Warning("Font em size (%d) is not equal to 1000.", upm)
		return
	}
	c.OK("Font em size is equal to 1000.")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sortedGlyphNames(fnt *font.Font) []string {
	names := make([]string, 0, len(fnt.Glyphs))
	for name := range fnt.Glyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
