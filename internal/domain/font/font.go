package font

import (
	"path/filepath"
	"strings"
)

// NameEntry is one decoded name table record.
type NameEntry struct {
	NameID     int    `json:"name_id"`
	PlatformID int    `json:"platform_id"`
	EncodingID int    `json:"encoding_id"`
	LanguageID int    `json:"language_id"`
	Value      string `json:"value"`
}

// OS2 mirrors the OS/2 table fields the checks read.
type OS2 struct {
	USWeightClass int       `json:"us_weight_class"`
	FSSelection   int       `json:"fs_selection"`
	UnicodeRanges [4]uint32 `json:"unicode_ranges"`
}

// Head mirrors the head table fields the checks read.
type Head struct {
	MacStyle     int     `json:"mac_style"`
	UnitsPerEm   int     `json:"units_per_em"`
	FontRevision float64 `json:"font_revision"`
}

// Post mirrors the post table. ItalicAngle is one of the two fields the
// autofix path may write back.
type Post struct {
	ItalicAngle float64  `json:"italic_angle"`
	GlyphNames  []string `json:"glyph_names,omitempty"`
}

// Hhea mirrors the hhea table fields the checks read.
type Hhea struct {
	AdvanceWidthMax int `json:"advance_width_max"`
}

// Point is one outline point in font units.
type Point struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	OnCurve bool `json:"on_curve"`
}

// Glyph is one glyf entry: bounding box plus outline points grouped by
// contour.
type Glyph struct {
	XMin     int       `json:"x_min"`
	YMin     int       `json:"y_min"`
	XMax     int       `json:"x_max"`
	YMax     int       `json:"y_max"`
	Contours [][]Point `json:"contours"`
}

func (g *Glyph) NumContours() int { return len(g.Contours) }

func (g *Glyph) NumPoints() int {
	n := 0
	for _, c := range g.Contours {
		n += len(c)
	}
	return n
}

// CmapSubtable is one character map: code point to glyph name.
type CmapSubtable struct {
	PlatformID int             `json:"platform_id"`
	EncodingID int             `json:"encoding_id"`
	Mapping    map[rune]string `json:"mapping"`
}

// IsUnicode reports whether the subtable carries Unicode semantics.
func (s *CmapSubtable) IsUnicode() bool {
	return s.PlatformID == 0 ||
		(s.PlatformID == 3 && (s.EncodingID == 1 || s.EncodingID == 10))
}

// PairValue is one second-glyph record of a GPOS pair set.
type PairValue struct {
	SecondGlyph string `json:"second_glyph"`
	XAdvance    int    `json:"x_advance"`
}

// PairLookup is one GPOS pair-adjustment lookup: PairSets is parallel to
// Coverage.
type PairLookup struct {
	Coverage []string      `json:"coverage"`
	PairSets [][]PairValue `json:"pair_sets"`
}

// GPOS carries the pair-adjustment lookups the kerning checks read.
type GPOS struct {
	PairLookups []PairLookup `json:"pair_lookups"`
}

// Font is the typed accessor over an externally parsed font's tables.
// It is exclusively owned by the check run that loaded it and never mutated
// except by an explicit autofix write-back.
type Font struct {
	Filename string `json:"filename"`

	Names []NameEntry `json:"names"`
	OS2   *OS2        `json:"os2,omitempty"`
	Head  *Head       `json:"head,omitempty"`
	Post  *Post       `json:"post,omitempty"`
	Hhea  *Hhea       `json:"hhea,omitempty"`

	// Metrics holds per-glyph advance widths from hmtx.
	Metrics map[string]int `json:"metrics,omitempty"`

	Cmaps  []CmapSubtable    `json:"cmaps,omitempty"`
	Glyphs map[string]*Glyph `json:"glyphs,omitempty"`

	// GlyfLength is the glyf table byte length; LocaEntries the loca entry
	// count. The expected glyf length is LocaEntries-1.
	GlyfLength  int `json:"glyf_length,omitempty"`
	LocaEntries int `json:"loca_entries,omitempty"`

	HasCFF  bool `json:"has_cff,omitempty"`
	HasKern bool `json:"has_kern,omitempty"`

	PrepBytecode []byte   `json:"prep_bytecode,omitempty"`
	FpgmAssembly []string `json:"fpgm_assembly,omitempty"`

	// Ligatures maps a ligature's first component to its second components,
	// as discovered by the parser from the substitution lookups.
	Ligatures map[string][]string `json:"ligatures,omitempty"`

	GPOS *GPOS `json:"gpos,omitempty"`

	// ValidationState is the external glyph-structure validator's defect
	// bitmask. Nil when the dump carries no validator output.
	ValidationState *uint32 `json:"validation_state,omitempty"`
}

// NameStrings returns every decoded name table value for the given name ID.
func (f *Font) NameStrings(nameID int) []string {
	var out []string
	for _, n := range f.Names {
		if n.NameID == nameID {
			out = append(out, n.Value)
		}
	}
	return out
}

// Style derives the style name from the canonical filename
// ("Family-Style.ttf"). Empty when the filename is not canonical.
func (f *Font) Style() string {
	base := strings.TrimSuffix(f.Filename, filepath.Ext(f.Filename))
	if i := strings.Index(base, "-"); i >= 0 {
		return base[i+1:]
	}
	return ""
}

// ReverseCmap maps glyph names to the code points assigned to them across
// all Unicode subtables.
func (f *Font) ReverseCmap() map[string][]rune {
	rev := make(map[string][]rune)
	for _, sub := range f.Cmaps {
		if !sub.IsUnicode() {
			continue
		}
		for cp, name := range sub.Mapping {
			rev[name] = append(rev[name], cp)
		}
	}
	return rev
}

// Entry returns the numeric value of a table field addressed by name.
// Supports the fields the equality and bit-flag helpers assert on.
func (f *Font) Entry(table, field string) (int, bool) {
	switch table + "." + field {
	case "OS/2.usWeightClass":
		if f.OS2 != nil {
			return f.OS2.USWeightClass, true
		}
	case "OS/2.fsSelection":
		if f.OS2 != nil {
			return f.OS2.FSSelection, true
		}
	case "head.macStyle":
		if f.Head != nil {
			return f.Head.MacStyle, true
		}
	case "head.unitsPerEm":
		if f.Head != nil {
			return f.Head.UnitsPerEm, true
		}
	case "hhea.advanceWidthMax":
		if f.Hhea != nil {
			return f.Hhea.AdvanceWidthMax, true
		}
	}
	return 0, false
}
