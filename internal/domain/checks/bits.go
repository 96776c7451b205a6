package checks

import (
	"strings"

	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/font"
)

// bitExpectation drives one "is bit X set, should it be" assertion. The
// repeated pattern across fsSelection and macStyle differs only in this
// metadata.
type bitExpectation struct {
	table    string
	field    string
	expected bool
	bitmask  int
	bitname  string
}

func checkBitEntry(c *domain.Check, fnt *font.Font, e bitExpectation) {
	value, ok := fnt.Entry(e.table, e.field)
	if !ok {
		c.Error("Font lacks a %q table entry %q.", e.table, e.field)
		return
	}
	isSet := value&e.bitmask != 0
	if isSet == e.expected {
		state := "unset"
		if e.expected {
			state = "set"
		}
		c.OK("%s %s %s bit is properly %s.", e.table, e.field, e.bitname, state)
		return
	}
	state := "unset"
	if e.expected {
		state = "set"
	}
	c.Error("%s %s %s bit should be %s but is not.", e.table, e.field, e.bitname, state)
}

// isRegularStyle reports whether the style string warrants the fsSelection
// REGULAR bit: either a "Regular" style, or a non-RIBBI plain style.
func isRegularStyle(style string) bool {
	if strings.Contains(style, "Regular") {
		return true
	}
	canonical := false
	for _, name := range font.StyleNames {
		if strings.ReplaceAll(name, " ", "") == style {
			canonical = true
			break
		}
	}
	ribbi := false
	for _, name := range font.RIBBIStyleNames {
		if strings.ReplaceAll(name, " ", "") == style {
			ribbi = true
			break
		}
	}
	return canonical && !ribbi && !strings.Contains(style, "Italic")
}

// CheckOS2FSSelection verifies the REGULAR, ITALIC and BOLD fsSelection bits
// against the style derived from the filename.
func CheckOS2FSSelection(r *domain.Recorder, fnt *font.Font, style string) {
	c := r.NewCheck("129", "Checking OS/2 fsSelection value")
	for _, e := range []bitExpectation{
		{"OS/2", "fsSelection", isRegularStyle(style), font.FsSelRegular, "REGULAR"},
		{"OS/2", "fsSelection", strings.Contains(style, "Italic"), font.FsSelItalic, "ITALIC"},
		{"OS/2", "fsSelection", style == "Bold" || style == "BoldItalic", font.FsSelBold, "BOLD"},
	} {
		checkBitEntry(c, fnt, e)
	}
}

// CheckHeadMacStyle verifies the ITALIC and BOLD macStyle bits against the
// style derived from the filename.
func CheckHeadMacStyle(r *domain.Recorder, fnt *font.Font, style string) {
	c := r.NewCheck("131", "Checking head.macStyle value")
	for _, e := range []bitExpectation{
		{"head", "macStyle", strings.Contains(style, "Italic"), font.MacStyleItalic, "ITALIC"},
		{"head", "macStyle", style == "Bold" || style == "BoldItalic", font.MacStyleBold, "BOLD"},
	} {
		checkBitEntry(c, fnt, e)
	}
}

// CheckPostItalicAngle validates post.italicAngle: non-positive (autofixable
// by negation), magnitude at most 20 (autofixable by clamping to -20), and
// nonzero exactly when the style is italic. Repairs are flushed through save
// before the check returns, never silently.
func CheckPostItalicAngle(r *domain.Recorder, fnt *font.Font, style string, save func(*font.Font) error) {
	c := r.NewCheck("130", "Checking post.italicAngle value")
	if fnt.Post == nil {
		c.Skip("Font lacks a post table.")
		return
	}

	failed := false
	mutated := false
	value := fnt.Post.ItalicAngle

	if value > 0 {
		failed = true
		if r.Config.Autofix {
			fnt.Post.ItalicAngle = -value
			mutated = true
			c.Hotfix("post.italicAngle changed from %g to %g.", value, -value)
		} else {
			c.Error("post.italicAngle value must be changed from %g to %g.", value, -value)
		}
		value = -value
	}

	if value < -20 {
		failed = true
		if r.Config.Autofix {
			fnt.Post.ItalicAngle = -20
			mutated = true
			c.Hotfix("post.italicAngle changed from %g to -20.", value)
		} else {
			c.Error("post.italicAngle value must be changed from %g to -20.", value)
		}
	}

	if strings.Contains(style, "Italic") {
		if fnt.Post.ItalicAngle == 0 {
			failed = true
			c.Error("Font is italic, so post.italicAngle should be non-zero.")
		}
	} else if fnt.Post.ItalicAngle != 0 {
		failed = true
		c.Error("Font is not italic, so post.italicAngle should be equal to zero.")
	}

	if !failed {
		c.OK("post.italicAngle is %g.", value)
	}
	if mutated {
		if err := save(fnt); err != nil {
			c.Error("Failed to persist the hotfixed post table: %v", err)
		}
	}
}

// CheckOS2WeightClassMatchesMetadata asserts OS/2 usWeightClass equals the
// weight declared in the family metadata.
func CheckOS2WeightClassMatchesMetadata(r *domain.Recorder, fnt *font.Font, weight int) {
	c := r.NewCheck("112", "Checking OS/2 usWeightClass matches weight specified at METADATA")
	r.AssertTableEntry(c, fnt, "OS/2", "usWeightClass", weight)
}
