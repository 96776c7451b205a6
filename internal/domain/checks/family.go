package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/metadata"
)

// CheckDesignerSimpleShortName requires the designer field to be a simple
// short name: fewer than four words, no "and", no dots, no commas.
func CheckDesignerSimpleShortName(r *domain.Recorder, fam *metadata.Family) {
	c := r.NewCheck("080", "METADATA: ensure designer simple short name")
	if len(strings.Fields(fam.Designer)) >= 4 ||
		strings.Contains(fam.Designer, " and ") ||
		strings.Contains(fam.Designer, ".") ||
		strings.Contains(fam.Designer, ",") {
		c.Error("Designer key must be a simple short name.")
		return
	}
	c.OK("Designer is a simple short name.")
}

// CheckMetadataHasUniqueFullNameValues requires every font entry to declare
// a distinct full_name.
func CheckMetadataHasUniqueFullNameValues(r *domain.Recorder, fam *metadata.Family) {
	c := r.NewCheck("083", "METADATA: check fonts field only has unique full_name values")
	seen := make(map[string]bool)
	for _, f := range fam.Fonts {
		seen[f.FullName] = true
	}
	if len(seen) != len(fam.Fonts) {
		c.Error("Found duplicated full_name values in METADATA fonts field.")
		return
	}
	c.OK("METADATA fonts field only has unique full_name values.")
}

// CheckStyleWeightPairsAreUnique requires every (style, weight) pair to be
// unique within the family.
func CheckStyleWeightPairsAreUnique(r *domain.Recorder, fam *metadata.Family) {
	c := r.NewCheck("084", "METADATA: check fonts field only contains unique style:weight pairs")
	pairs := make(map[string]bool)
	for _, f := range fam.Fonts {
		pairs[fmt.Sprintf("%s:%d", f.Style, f.Weight)] = true
	}
	if len(pairs) != len(fam.Fonts) {
		c.Error("Found duplicated style:weight pair in METADATA fonts field.")
		return
	}
	c.OK("METADATA fonts field only has unique style:weight pairs.")
}

// CheckLicenseIsKnown requires the declared license to be APACHE2, OFL or
// UFL.
func CheckLicenseIsKnown(r *domain.Recorder, fam *metadata.Family) {
	c := r.NewCheck("085", "METADATA license is APACHE2, UFL or OFL?")
	licenses := []string{"APACHE2", "OFL", "UFL"}
	for _, l := range licenses {
		if fam.License == l {
			c.OK("Font license is declared in METADATA as %q.", fam.License)
			return
		}
	}
	c.Error("METADATA license field (%q) must be one of the following: %q.", fam.License, licenses)
}

// CheckSubsetsContainMenuAndLatin requires the mandatory menu and latin
// subsets to be declared.
func CheckSubsetsContainMenuAndLatin(r *domain.Recorder, fam *metadata.Family) {
	c := r.NewCheck("086", "METADATA should contain at least menu and latin subsets")
	var missing []string
	for _, want := range []string{"menu", "latin"} {
		found := false
		for _, s := range fam.Subsets {
			if s == want {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		c.Error("Subsets 'menu' and 'latin' are mandatory, but METADATA is missing %q.", strings.Join(missing, " and "))
		return
	}
	c.OK("METADATA contains 'menu' and 'latin' subsets.")
}

// CheckSubsetsAlphabeticallyOrdered requires subsets to be sorted. With
// autofix enabled the order is repaired in place and persisted through save
// before the check returns.
func CheckSubsetsAlphabeticallyOrdered(r *domain.Recorder, fam *metadata.Family, save func(*metadata.Family) error) {
	c := r.NewCheck("087", "METADATA subsets should be alphabetically ordered")
	expected := make([]string, len(fam.Subsets))
	copy(expected, fam.Subsets)
	sort.Strings(expected)

	sorted := true
	for i := range fam.Subsets {
		if fam.Subsets[i] != expected[i] {
			sorted = false
			break
		}
	}
	if sorted {
		c.OK("METADATA subsets are sorted in alphabetical order.")
		return
	}

	if r.Config.Autofix {
		got := make([]string, len(fam.Subsets))
		copy(got, fam.Subsets)
		copy(fam.Subsets, expected)
		c.Hotfix("METADATA subsets were not sorted in alphabetical order: %q. Hotfixed to %q.", got, expected)
		if err := save(fam); err != nil {
			c.Error("Failed to persist the hotfixed subsets order: %v", err)
		}
		return
	}
	c.Error("METADATA subsets are not sorted in alphabetical order: got %q and expected %q.", fam.Subsets, expected)
}

// CheckCopyrightNoticeIsTheSameInAllFonts requires one identical copyright
// string across all fonts of the family.
func CheckCopyrightNoticeIsTheSameInAllFonts(r *domain.Recorder, fam *metadata.Family) {
	c := r.NewCheck("088", "Copyright notice is the same in all fonts?")
	for i := 1; i < len(fam.Fonts); i++ {
		if fam.Fonts[i].Copyright != fam.Fonts[i-1].Copyright {
			c.Error("METADATA: copyright field value is inconsistent across family.")
			return
		}
	}
	c.OK("Copyright is consistent across family.")
}

// CheckFamilyValuesAreAllTheSame requires every font entry to declare the
// same family name field.
func CheckFamilyValuesAreAllTheSame(r *domain.Recorder, fam *metadata.Family) {
	c := r.NewCheck("089", "Check that METADATA family values are all the same")
	for i := 1; i < len(fam.Fonts); i++ {
		if fam.Fonts[i].Name != fam.Fonts[i-1].Name {
			c.Error("METADATA: family name is not the same in all metadata fonts items.")
			return
		}
	}
	c.OK("METADATA: family name is the same in all metadata fonts items.")
}

// CheckFontHasRegularStyle requires a font with weight 400 and style normal.
// Returns whether one was found; dependent checks take the result as input.
func CheckFontHasRegularStyle(r *domain.Recorder, fam *metadata.Family) bool {
	c := r.NewCheck("090", "Font should have a Regular style")
	for _, f := range fam.Fonts {
		if f.Weight == 400 && f.Style == "normal" {
			c.OK("Font has a Regular style.")
			return true
		}
	}
	c.Error("This font lacks a Regular (style: normal and weight: 400) as required by the family standards.")
	return false
}

// CheckRegularIs400 verifies every font whose full name ends in "Regular"
// declares weight 400. Only meaningful when a Regular style exists.
func CheckRegularIs400(r *domain.Recorder, fam *metadata.Family, hasRegular bool) {
	c := r.NewCheck("091", "Regular should be 400")
	if !hasRegular {
		c.Skip("This check only runs if the font has a Regular style.")
		return
	}
	var bad []string
	for _, f := range fam.Fonts {
		if strings.HasSuffix(f.FullName, "Regular") && f.Weight != 400 {
			bad = append(bad, fmt.Sprintf("%s (weight: %d)", f.Filename, f.Weight))
		}
	}
	if len(bad) > 0 {
		c.Error("METADATA: Regular font weight must be 400. Please fix: %s.", strings.Join(bad, ", "))
		return
	}
	c.OK("Regular has weight=400.")
}
