package checks

import (
	"context"

	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/metadata"
)

const profilesBrowseURL = "https://github.com/google/fonts/blob/master/designers/profiles.csv"

// CheckFamilyIsListedInDirectory asks the remote font directory whether the
// family is hosted. A failed query degrades to WARNING: the network is an
// advisory source, not a font defect.
func CheckFamilyIsListedInDirectory(r *domain.Recorder, ctx context.Context, dir domain.WebDirectory, fam *metadata.Family) {
	c := r.NewCheck("081", "METADATA: Fontfamily is listed in Google Font Directory?")
	if r.Config.SkipNetwork {
		c.Skip("Skipping network checks.")
		return
	}
	url, listed, err := dir.FamilyListed(ctx, fam.Name)
	if err != nil {
		c.Warning("Failed to query the font directory at %s.", url)
		return
	}
	if !listed {
		c.Error("No family found in the font directory at %s.", url)
		return
	}
	c.OK("Font is properly listed in Google Font Directory.")
}

// CheckDesignerExistsInProfiles verifies the declared designer appears in
// the remote designer profiles listing. "Multiple Designers" is exempt; an
// empty designer is an error regardless of network availability.
func CheckDesignerExistsInProfiles(r *domain.Recorder, ctx context.Context, dir domain.WebDirectory, fam *metadata.Family) {
	c := r.NewCheck("082", "METADATA: Designer exists in GWF profiles.csv?")
	if fam.Designer == "" {
		c.Error("METADATA field 'designer' MUST NOT be empty!")
		return
	}
	if fam.Designer == "Multiple Designers" {
		c.Skip("Found 'Multiple Designers' at METADATA, which is OK, so we won't look for it at profiles.csv.")
		return
	}
	if r.Config.SkipNetwork {
		c.Skip("Skipping network checks.")
		return
	}
	designers, err := dir.DesignerProfiles(ctx)
	if err != nil {
		c.Warning("Failed to fetch the designer profiles listing.")
		return
	}
	for _, name := range designers {
		if name == fam.Designer {
			c.OK("Found designer %q at profiles.csv.", fam.Designer)
			return
		}
	}
	c.Warning("METADATA: Designer %q is not listed in profiles.csv (at %q).", fam.Designer, profilesBrowseURL)
}
