package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/checks"
	"github.com/fontcheck/fontcheck/internal/domain/font"
	"github.com/fontcheck/fontcheck/internal/domain/metadata"
)

// newRecorder builds a recorder with the default run configuration.
func newRecorder(t *testing.T) *domain.Recorder {
	t.Helper()
	return domain.NewRecorder(domain.DefaultRunConfig())
}

// newRecorderWith builds a recorder after applying overrides to the default
// configuration.
func newRecorderWith(t *testing.T, mutate func(*domain.RunConfig)) *domain.Recorder {
	t.Helper()
	cfg := domain.DefaultRunConfig()
	mutate(&cfg)
	return domain.NewRecorder(cfg)
}

// lastStatus returns the status of the most recently completed check.
func lastStatus(t *testing.T, r *domain.Recorder) domain.Status {
	t.Helper()
	cs := r.Checks()
	require.NotEmpty(t, cs)
	return cs[len(cs)-1].Status()
}

func TestCheckFileIsNamedCanonically(t *testing.T) {
	tests := []struct {
		filename string
		ok       bool
	}{
		{"Nunito-Regular.ttf", true},
		{"Oswald-BoldItalic.ttf", true},
		{"Lobster-Thin.ttf", true},
		{"Nunito_Regular.ttf", false},
		{"Nunito.ttf", false},
		{"Nunito-Heavy.ttf", false},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			r := newRecorder(t)
			got := checks.CheckFileIsNamedCanonically(r, tt.filename)
			assert.Equal(t, tt.ok, got)
			if tt.ok {
				assert.Equal(t, domain.StatusOK, lastStatus(t, r))
			} else {
				assert.Equal(t, domain.StatusError, lastStatus(t, r))
			}
		})
	}
}

func TestCheckFilenameIsSetCanonically(t *testing.T) {
	r := newRecorder(t)
	checks.CheckFilenameIsSetCanonically(r, metadata.FontMetadata{
		Name: "Nunito", Weight: 400, Style: "normal", Filename: "Nunito-Regular.ttf",
	})
	assert.Equal(t, domain.StatusOK, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckFilenameIsSetCanonically(r, metadata.FontMetadata{
		Name: "Nunito", Weight: 700, Style: "normal", Filename: "Nunito-Regular.ttf",
	})
	assert.Equal(t, domain.StatusError, lastStatus(t, r))
}

func TestCheckFontNameIsNotCamelCased(t *testing.T) {
	r := newRecorder(t)
	checks.CheckFontNameIsNotCamelCased(r, metadata.FontMetadata{Name: "OpenSans"})
	assert.Equal(t, domain.StatusError, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckFontNameIsNotCamelCased(r, metadata.FontMetadata{Name: "Open Sans"})
	assert.Equal(t, domain.StatusOK, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckFontNameIsNotCamelCased(r, metadata.FontMetadata{Name: "Lobster"})
	assert.Equal(t, domain.StatusOK, lastStatus(t, r))
}

func TestCheckFontNameIsTheSameAsFamilyName(t *testing.T) {
	fam := &metadata.Family{Name: "Nunito"}

	r := newRecorder(t)
	checks.CheckFontNameIsTheSameAsFamilyName(r, fam, metadata.FontMetadata{Name: "Nunito"})
	assert.Equal(t, domain.StatusOK, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckFontNameIsTheSameAsFamilyName(r, fam, metadata.FontMetadata{Name: "Nunito Sans"})
	assert.Equal(t, domain.StatusError, lastStatus(t, r))
}

func TestCheckFontWeightHasACanonicalValue(t *testing.T) {
	for _, weight := range []int{100, 400, 900} {
		r := newRecorder(t)
		checks.CheckFontWeightHasACanonicalValue(r, metadata.FontMetadata{Weight: weight})
		assert.Equal(t, domain.StatusOK, lastStatus(t, r), "weight %d", weight)
	}
	for _, weight := range []int{0, 50, 450, 1000} {
		r := newRecorder(t)
		checks.CheckFontWeightHasACanonicalValue(r, metadata.FontMetadata{Weight: weight})
		assert.Equal(t, domain.StatusError, lastStatus(t, r), "weight %d", weight)
	}
}

func TestCheckWeightMatchesPostScriptName(t *testing.T) {
	r := newRecorder(t)
	checks.CheckWeightMatchesPostScriptName(r, metadata.FontMetadata{
		Weight: 700, PostScriptName: "Nunito-Bold",
	})
	assert.Equal(t, domain.StatusOK, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckWeightMatchesPostScriptName(r, metadata.FontMetadata{
		Weight: 400, PostScriptName: "Nunito-Regular",
	})
	assert.Equal(t, domain.StatusOK, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckWeightMatchesPostScriptName(r, metadata.FontMetadata{
		Weight: 700, PostScriptName: "Nunito-Light",
	})
	assert.Equal(t, domain.StatusError, lastStatus(t, r))
}

func TestCheckFontsNamedCanonically(t *testing.T) {
	fnt := &font.Font{
		Names: []font.NameEntry{{NameID: font.NameIDFontFamilyName, Value: "Nunito"}},
		OS2:   &font.OS2{USWeightClass: 700},
	}

	r := newRecorder(t)
	checks.CheckFontsNamedCanonically(r, fnt, metadata.FontMetadata{FullName: "Nunito Bold"})
	assert.Equal(t, domain.StatusOK, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckFontsNamedCanonically(r, fnt, metadata.FontMetadata{FullName: "Nunito Light"})
	assert.Equal(t, domain.StatusError, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckFontsNamedCanonically(r, &font.Font{}, metadata.FontMetadata{FullName: "Nunito Bold"})
	assert.Equal(t, domain.StatusSkip, lastStatus(t, r))
}

func TestCheckFontStylesAreNamedCanonically(t *testing.T) {
	italicFont := &font.Font{
		Head: &font.Head{MacStyle: font.MacStyleItalic},
		Post: &font.Post{ItalicAngle: -12},
	}
	uprightFont := &font.Font{Head: &font.Head{}, Post: &font.Post{}}

	r := newRecorder(t)
	checks.CheckFontStylesAreNamedCanonically(r, italicFont, metadata.FontMetadata{Style: "italic"})
	assert.Equal(t, domain.StatusOK, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckFontStylesAreNamedCanonically(r, italicFont, metadata.FontMetadata{Style: "normal"})
	assert.Equal(t, domain.StatusError, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckFontStylesAreNamedCanonically(r, uprightFont, metadata.FontMetadata{Style: "italic"})
	assert.Equal(t, domain.StatusError, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckFontStylesAreNamedCanonically(r, uprightFont, metadata.FontMetadata{Style: "condensed"})
	assert.Equal(t, domain.StatusSkip, lastStatus(t, r))
}
