package checks

import (
	"regexp"
	"strings"

	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/font"
	"github.com/fontcheck/fontcheck/internal/domain/metadata"
)

// CheckFontAndMetadataHaveSameFamilyName compares the on-disk name table
// family entry against the metadata name field.
func CheckFontAndMetadataHaveSameFamilyName(r *domain.Recorder, fnt *font.Font, f metadata.FontMetadata) {
	c := r.NewCheck("092", "Font on disk and in METADATA have the same family name?")
	familyNames := fnt.NameStrings(font.NameIDFontFamilyName)
	if len(familyNames) == 0 {
		c.Error("This font lacks a FONT_FAMILY_NAME entry (nameID=%d) in the name table.", font.NameIDFontFamilyName)
		return
	}
	for _, name := range familyNames {
		if name == f.Name {
			c.OK("Family name %q is identical in METADATA and on the font file.", f.Name)
			return
		}
	}
	c.Error("Unmatched family name in font: the font has %q while METADATA has %q.", familyNames, f.Name)
}

// CheckPostScriptNameMatchesNameTableValue compares the metadata postscript
// name against the name table entry.
func CheckPostScriptNameMatchesNameTableValue(r *domain.Recorder, fnt *font.Font, f metadata.FontMetadata) {
	c := r.NewCheck("093", "Checks METADATA postScriptName matches font postScriptName")
	names := fnt.NameStrings(font.NameIDPostscriptName)
	if len(names) == 0 {
		c.Error("This font lacks a POSTSCRIPT_NAME entry (nameID=%d) in the name table.", font.NameIDPostscriptName)
		return
	}
	if names[0] != f.PostScriptName {
		c.Error("Unmatched postscript name in font: the font has %q while METADATA has %q.", names[0], f.PostScriptName)
		return
	}
	c.OK("Postscript name %q is identical in METADATA and on the font file.", f.PostScriptName)
}

// CheckFullnameMatchesNameTableValue compares the metadata full_name against
// the name table entry.
func CheckFullnameMatchesNameTableValue(r *domain.Recorder, fnt *font.Font, f metadata.FontMetadata) {
	c := r.NewCheck("094", "METADATA fullname value matches internal fullname?")
	names := fnt.NameStrings(font.NameIDFullFontName)
	if len(names) == 0 {
		c.Error("This font lacks a FULL_FONT_NAME entry (nameID=%d) in the name table.", font.NameIDFullFontName)
		return
	}
	if names[0] != f.FullName {
		c.Error("Unmatched fullname in font: the font has %q while METADATA has %q.", names[0], f.FullName)
		return
	}
	c.OK("Full fontname %q is identical in METADATA and on the font file.", f.FullName)
}

// CheckMetadataNameMatchesFontFamilyName verifies the name table family entry
// appears inside the metadata name field.
func CheckMetadataNameMatchesFontFamilyName(r *domain.Recorder, fnt *font.Font, f metadata.FontMetadata) {
	c := r.NewCheck("095", "METADATA fonts name property should be same as font familyname")
	names := fnt.NameStrings(font.NameIDFontFamilyName)
	if len(names) == 0 {
		c.Error("This font lacks a FONT_FAMILY_NAME entry (nameID=%d) in the name table.", font.NameIDFontFamilyName)
		return
	}
	if !strings.Contains(f.Name, names[0]) {
		c.Error("Unmatched familyname in font: the font has %q while METADATA has name=%q.", names[0], f.Name)
		return
	}
	c.OK("Family name %q is identical in METADATA and on the font file.", f.Name)
}

// CheckFullNameMatchesPostScriptName compares full_name against
// post_script_name with all non-word characters stripped from both sides.
func CheckFullNameMatchesPostScriptName(r *domain.Recorder, f metadata.FontMetadata) {
	c := r.NewCheck("096", "METADATA fullName matches postScriptName?")
	if stripNonWord(f.FullName) != stripNonWord(f.PostScriptName) {
		c.Error("METADATA full_name=%q does not match post_script_name=%q.", f.FullName, f.PostScriptName)
		return
	}
	c.OK("METADATA fields fullName and postScriptName have the same value.")
}

// CheckFilenameMatchesPostScriptName compares the filename (extension
// dropped) against post_script_name with non-word characters stripped.
func CheckFilenameMatchesPostScriptName(r *domain.Recorder, f metadata.FontMetadata) {
	c := r.NewCheck("097", "METADATA filename matches postScriptName?")
	if stripNonWord(f.FilenameBase()) != stripNonWord(f.PostScriptName) {
		c.Error("METADATA filename=%q does not match post_script_name=%q.", f.Filename, f.PostScriptName)
		return
	}
	c.OK("METADATA fields filename and postScriptName have matching values.")
}

// CheckMetadataNameContainsGoodFontName verifies the metadata name field
// contains the name table family name. Returns that family name so the three
// dependent contains-checks below can reuse it; ok is false when the name
// table lacks the entry, in which case the dependents must be skipped.
func CheckMetadataNameContainsGoodFontName(r *domain.Recorder, fnt *font.Font, f metadata.FontMetadata) (familyName string, ok bool) {
	c := r.NewCheck("098", "METADATA name contains font name in right format?")
	names := fnt.NameStrings(font.NameIDFontFamilyName)
	if len(names) == 0 {
		c.Error("A corrupt font that lacks a FONT_FAMILY_NAME entry caused a whole sequence of checks to be skipped.")
		return "", false
	}
	familyName = names[0]
	if strings.Contains(f.Name, familyName) {
		c.OK("METADATA name contains font name in right format.")
	} else {
		c.Error("METADATA name=%q does not match correct font name format.", f.Name)
	}
	return familyName, true
}

// CheckFullNameContainsGoodFontName verifies full_name contains the name
// table family name.
func CheckFullNameContainsGoodFontName(r *domain.Recorder, f metadata.FontMetadata, familyName string) {
	c := r.NewCheck("099", "METADATA full_name contains font name in right format?")
	if strings.Contains(f.FullName, familyName) {
		c.OK("METADATA full_name contains font name in right format.")
		return
	}
	c.Error("METADATA full_name=%q does not match correct font name format.", f.FullName)
}

// CheckFilenameContainsGoodFontName verifies the filename contains the
// family name with spaces removed.
func CheckFilenameContainsGoodFontName(r *domain.Recorder, f metadata.FontMetadata, familyName string) {
	c := r.NewCheck("100", "METADATA filename contains font name in right format?")
	if strings.Contains(f.Filename, strings.Join(strings.Fields(familyName), "")) {
		c.OK("METADATA filename contains font name in right format.")
		return
	}
	c.Error("METADATA filename=%q does not match correct font name format.", f.Filename)
}

// CheckPostScriptNameContainsGoodFontName verifies post_script_name contains
// the family name with spaces removed.
func CheckPostScriptNameContainsGoodFontName(r *domain.Recorder, f metadata.FontMetadata, familyName string) {
	c := r.NewCheck("101", "METADATA postScriptName contains font name in right format?")
	if strings.Contains(f.PostScriptName, strings.Join(strings.Fields(familyName), "")) {
		c.OK("METADATA postScriptName contains font name in right format.")
		return
	}
	c.Error("METADATA postScriptName=%q does not match correct font name format.", f.PostScriptName)
}

var (
	copyrightAlmostRe = regexp.MustCompile(`Copyright\s+20\d{2}.+`)
	copyrightFullRe   = regexp.MustCompile(`Copyright\s+20\d{2}\s+.*\(.+@.+\..+\)`)
)

// CheckCopyrightNoticeMatchesCanonicalPattern verifies the copyright field
// follows "Copyright 2016 Author Name (name@site.com)". A notice with the
// right shape but no email address is a WARNING rather than an ERROR.
func CheckCopyrightNoticeMatchesCanonicalPattern(r *domain.Recorder, f metadata.FontMetadata) {
	c := r.NewCheck("102", "Copyright notice matches canonical pattern?")
	if copyrightFullRe.MatchString(f.Copyright) {
		c.OK("METADATA copyright field matches canonical pattern.")
		return
	}
	if copyrightAlmostRe.MatchString(f.Copyright) {
		c.Warning("METADATA: Copyright notice is okay, but it lacks an email address. Expected pattern is: 'Copyright 2016 Author Name (name@site.com)'. But detected copyright string is: %q.", f.Copyright)
		return
	}
	c.Error("METADATA: Copyright notices should match the following pattern: 'Copyright 2016 Author Name (name@site.com)'. But instead we have got: %q.", f.Copyright)
}

// CheckCopyrightNoticeDoesNotContainReservedName warns on copyright notices
// mentioning "Reserved Font Name"; legitimate uses are rare.
func CheckCopyrightNoticeDoesNotContainReservedName(r *domain.Recorder, f metadata.FontMetadata) {
	c := r.NewCheck("103", "Copyright notice does not contain Reserved Font Name")
	if strings.Contains(f.Copyright, "Reserved Font Name") {
		c.Warning("METADATA: copyright field (%q) contains 'Reserved Font Name'. This is an error except in a few specific rare cases.", f.Copyright)
		return
	}
	c.OK("METADATA copyright field does not contain 'Reserved Font Name'.")
}

// CheckCopyrightNoticeDoesNotExceed500Chars caps the copyright notice at 500
// characters.
func CheckCopyrightNoticeDoesNotExceed500Chars(r *domain.Recorder, f metadata.FontMetadata) {
	c := r.NewCheck("104", "Copyright notice shouldn't exceed 500 chars")
	if len(f.Copyright) > 500 {
		c.Error("METADATA: Copyright notice exceeds maximum allowed length of 500 characters.")
		return
	}
	c.OK("Copyright notice string is shorter than 500 chars.")
}

// CheckFontItalicMatchesFontInternals verifies fonts declared italic carry
// the macStyle ITALIC bit and "Italic"-suffixed name entries.
func CheckFontItalicMatchesFontInternals(r *domain.Recorder, fnt *font.Font, f metadata.FontMetadata) {
	c := r.NewCheck("106", "METADATA font.style italic matches font internals?")
	if f.Style != "italic" {
		c.Skip("This check only applies to italic fonts.")
		return
	}
	familyNames := fnt.NameStrings(font.NameIDFontFamilyName)
	fullNames := fnt.NameStrings(font.NameIDFullFontName)
	if len(familyNames) == 0 || len(fullNames) == 0 {
		c.Skip("Font lacks familyname and/or fullname entries in name table.")
		return
	}
	familyName := familyNames[0]
	fullName := fullNames[0]

	switch {
	case fnt.Head == nil || fnt.Head.MacStyle&font.MacStyleItalic == 0:
		c.Error("METADATA style has been set to italic but font macStyle is improperly set.")
	case !strings.HasSuffix(lastDashSegment(familyName), "Italic"):
		c.Error("Font macStyle Italic bit is set but nameID %d (%q) is not ended with 'Italic'.", font.NameIDFontFamilyName, familyName)
	case !strings.HasSuffix(lastDashSegment(fullName), "Italic"):
		c.Error("Font macStyle Italic bit is set but nameID %d (%q) is not ended with 'Italic'.", font.NameIDFullFontName, fullName)
	default:
		c.OK("METADATA font.style 'italic' matches font internals.")
	}
}

// CheckFontStyleNormalMatchesInternals verifies fonts declared normal do not
// carry italic signals in macStyle or the name entries.
func CheckFontStyleNormalMatchesInternals(r *domain.Recorder, fnt *font.Font, f metadata.FontMetadata) {
	c := r.NewCheck("107", "METADATA font.style normal matches font internals?")
	if f.Style != "normal" {
		c.Skip("This check only applies to normal fonts.")
		return
	}
	familyNames := fnt.NameStrings(font.NameIDFontFamilyName)
	fullNames := fnt.NameStrings(font.NameIDFullFontName)
	if len(familyNames) == 0 || len(fullNames) == 0 {
		c.Skip("Font lacks familyname and/or fullname entries in name table.")
		return
	}
	familyName := familyNames[0]
	fullName := fullNames[0]

	switch {
	case fnt.Head != nil && fnt.Head.MacStyle&font.MacStyleItalic != 0:
		c.Error("METADATA style has been set to normal but font macStyle is improperly set.")
	case strings.HasSuffix(lastDashSegment(familyName), "Italic"):
		c.Error("Font macStyle indicates a non-Italic font, but nameID %d (%q) ends with 'Italic'.", font.NameIDFontFamilyName, familyName)
	case strings.HasSuffix(lastDashSegment(fullName), "Italic"):
		c.Error("Font macStyle indicates a non-Italic font, but nameID %d (%q) ends with 'Italic'.", font.NameIDFullFontName, fullName)
	default:
		c.OK("METADATA font.style 'normal' matches font internals.")
	}
}

// CheckMetadataKeyValueMatchToTableNameFields requires literal equality
// between metadata (name, full_name) and the corresponding name table
// entries.
func CheckMetadataKeyValueMatchToTableNameFields(r *domain.Recorder, fnt *font.Font, f metadata.FontMetadata) {
	c := r.NewCheck("108", "Metadata key-value match to table name fields?")
	familyNames := fnt.NameStrings(font.NameIDFontFamilyName)
	fullNames := fnt.NameStrings(font.NameIDFullFontName)
	if len(familyNames) == 0 || len(fullNames) == 0 {
		c.Error("Font lacks familyname and/or fullname entries in name table.")
		return
	}
	switch {
	case familyNames[0] != f.Name:
		c.Error("METADATA family name (%q) does not match name table entry %q!", f.Name, familyNames[0])
	case fullNames[0] != f.FullName:
		c.Error("METADATA: fullname (%q) does not match name table entry %q!", f.FullName, fullNames[0])
	default:
		c.OK("METADATA familyname and fullName fields match corresponding name table entries.")
	}
}

func lastDashSegment(s string) string {
	if i := strings.LastIndex(s, "-"); i >= 0 {
		return s[i+1:]
	}
	return s
}
