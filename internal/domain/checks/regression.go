package checks

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/font"
)

// surfaceAreaThreshold is the per-glyph area delta tolerated between
// releases, in squared font units.
const surfaceAreaThreshold = 8000

// CheckVersionNumberIncreased verifies head.fontRevision did not go
// backwards since the previous release.
func CheckVersionNumberIncreased(r *domain.Recorder, newFont, oldFont *font.Font) {
	c := r.NewCheck("117", "Version number has increased since previous release?")
	if newFont.Head == nil || oldFont.Head == nil {
		c.Error("Font lacks a head table, so the version numbers cannot be compared.")
		return
	}
	newV := newFont.Head.FontRevision
	oldV := oldFont.Head.FontRevision
	if newV < oldV {
		c.Error("Version number %g is less than old version %g.", newV, oldV)
		return
	}
	c.OK("Version number %g is greater than or equal to old version %g.", newV, oldV)
}

// CheckGlyphsAreSimilarToOldVersion compares per-glyph outline surface areas
// between releases for glyphs present in both.
func CheckGlyphsAreSimilarToOldVersion(r *domain.Recorder, newFont, oldFont *font.Font) {
	c := r.NewCheck("118", "Glyphs are similar to old version")
	newAreas := newFont.GlyphSurfaceAreas()
	oldAreas := oldFont.GlyphSurfaceAreas()

	var bad []string
	for name, newArea := range newAreas {
		oldArea, shared := oldAreas[name]
		if !shared {
			continue
		}
		delta := int(newArea) - int(oldArea)
		if delta < 0 {
			delta = -delta
		}
		if delta > surfaceAreaThreshold {
			bad = append(bad, name)
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		c.Error("Following glyphs differ greatly from previous version: [%s].", strings.Join(bad, ", "))
		return
	}
	c.OK("Yes, the glyphs are similar in comparison to the previous version.")
}

// xheightPattern matches the autohinter's x-height increase sequence in the
// fpgm assembly: the PUSHW operand following an MPPEM read.
var xheightPattern = regexp.MustCompile(`MPPEM\[ \].*\nPUSHW\[ \].*\n([0-9]+)`)

// fpgmXHeightIncrease extracts the autohinter --increase-x-height value from
// the fpgm program assembly. Second result is false when the font has no
// fpgm program or the sequence is absent.
func fpgmXHeightIncrease(fnt *font.Font) (int, bool) {
	if len(fnt.FpgmAssembly) == 0 {
		return 0, false
	}
	m := xheightPattern.FindStringSubmatch(strings.Join(fnt.FpgmAssembly, "\n"))
	if m == nil {
		return 0, false
	}
	value, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return value, true
}

// CheckAutohintXHeightIncreaseMatches verifies the autohinter's x-height
// increase value did not change between releases. Both sides lacking one is
// fine; a one-sided value is a mismatch.
func CheckAutohintXHeightIncreaseMatches(r *domain.Recorder, newFont, oldFont *font.Font) {
	c := r.NewCheck("119", "TTFAutohint x-height increase value is same as previous release?")
	newValue, newOK := fpgmXHeightIncrease(newFont)
	oldValue, oldOK := fpgmXHeightIncrease(oldFont)

	switch {
	case !newOK && !oldOK:
		c.Skip("Neither release carries an x-height increase value in the fpgm program.")
	case newOK != oldOK || newValue != oldValue:
		c.Error("TTFAutohint --increase-x-height is %s. It should match the previous version's value %s.",
			formatXHeight(newValue, newOK), formatXHeight(oldValue, oldOK))
	default:
		c.OK("TTFAutohint --increase-x-height is the same as the previous release, %d.", newValue)
	}
}

func formatXHeight(value int, ok bool) string {
	if !ok {
		return "unset"
	}
	return strconv.Itoa(value)
}
