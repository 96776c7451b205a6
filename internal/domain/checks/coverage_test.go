package checks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/checks"
)

// fakeCoverageRunner implements domain.CoverageRunner with a canned result.
type fakeCoverageRunner struct {
	output string
	err    error

	gotFontPath string
	gotGlyphSet string
}

func (f *fakeCoverageRunner) Run(_ context.Context, fontPath, glyphSet string) (string, error) {
	f.gotFontPath = fontPath
	f.gotGlyphSet = glyphSet
	return f.output, f.err
}

var latinCore = checks.GlyphSetCheck{
	ID: "143", Title: "Checking Google Latin Core glyph coverage", GlyphSet: "google_latin_core",
}

func TestCheckGlyphCoverage_FullSupport(t *testing.T) {
	runner := &fakeCoverageRunner{output: "Font: Nunito-Regular.ttf\nSupport level: full\n"}

	r := newRecorder(t)
	checks.CheckGlyphCoverage(r, context.Background(), runner, "family/Nunito-Regular.ttf", latinCore)

	assert.Equal(t, domain.StatusOK, lastStatus(t, r))
	assert.Equal(t, "family/Nunito-Regular.ttf", runner.gotFontPath)
	assert.Equal(t, "google_latin_core", runner.gotGlyphSet)
}

func TestCheckGlyphCoverage_PartialSupport(t *testing.T) {
	runner := &fakeCoverageRunner{output: "Support level: partial\nMissing: 42 glyphs\n"}

	r := newRecorder(t)
	checks.CheckGlyphCoverage(r, context.Background(), runner, "font.ttf", latinCore)
	assert.Equal(t, domain.StatusError, lastStatus(t, r))
}

func TestCheckGlyphCoverage_ToolUnavailable(t *testing.T) {
	runner := &fakeCoverageRunner{err: domain.ErrCoverageToolUnavailable}

	r := newRecorder(t)
	checks.CheckGlyphCoverage(r, context.Background(), runner, "font.ttf", latinCore)
	assert.Equal(t, domain.StatusWarning, lastStatus(t, r))
}

func TestCheckGlyphCoverage_ToolError(t *testing.T) {
	runner := &fakeCoverageRunner{output: "traceback", err: errors.New("exit status 1")}

	r := newRecorder(t)
	checks.CheckGlyphCoverage(r, context.Background(), runner, "font.ttf", latinCore)
	assert.Equal(t, domain.StatusError, lastStatus(t, r))
}

func TestCheckGlyphCoverage_DisabledGlyphSet(t *testing.T) {
	r := newRecorderWith(t, func(cfg *domain.RunConfig) {
		cfg.GlyphSets = []string{"google_arabic"}
	})
	runner := &fakeCoverageRunner{output: "Support level: full"}

	checks.CheckGlyphCoverage(r, context.Background(), runner, "font.ttf", latinCore)
	assert.Equal(t, domain.StatusSkip, lastStatus(t, r))
	assert.Empty(t, runner.gotGlyphSet, "the tool must not run for disabled glyph sets")
}

func TestGlyphSetChecks_CatalogShape(t *testing.T) {
	require.Len(t, checks.GlyphSetChecks, 20)
	seen := make(map[string]bool)
	for _, gc := range checks.GlyphSetChecks {
		assert.NotEmpty(t, gc.ID)
		assert.NotEmpty(t, gc.GlyphSet)
		assert.False(t, seen[gc.ID], "duplicate check ID %s", gc.ID)
		seen[gc.ID] = true
	}
	assert.Equal(t, "132", checks.GlyphSetChecks[0].ID)
	assert.Equal(t, "151", checks.GlyphSetChecks[len(checks.GlyphSetChecks)-1].ID)
}
