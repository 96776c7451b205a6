package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/checks"
	"github.com/fontcheck/fontcheck/internal/domain/font"
)

func fontWithGlyphs(filename string, glyphs map[string]*font.Glyph) *font.Font {
	return &font.Font{Filename: filename, Glyphs: glyphs}
}

func TestCheckAllFontsHaveMatchingGlyphNames(t *testing.T) {
	r := newRecorder(t)
	checks.CheckAllFontsHaveMatchingGlyphNames(r, []*font.Font{
		fontWithGlyphs("Nunito-Regular.ttf", map[string]*font.Glyph{"A": {}, "B": {}}),
		fontWithGlyphs("Nunito-Bold.ttf", map[string]*font.Glyph{"B": {}, "A": {}}),
	})
	assert.Equal(t, domain.StatusOK, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckAllFontsHaveMatchingGlyphNames(r, []*font.Font{
		fontWithGlyphs("Nunito-Regular.ttf", map[string]*font.Glyph{"A": {}, "B": {}}),
		fontWithGlyphs("Nunito-Bold.ttf", map[string]*font.Glyph{"A": {}}),
	})
	assert.Equal(t, domain.StatusError, lastStatus(t, r))
}

func TestCheckGlyphsHaveSameNumOfContours(t *testing.T) {
	oneContour := &font.Glyph{Contours: [][]font.Point{{{X: 0, Y: 0}}}}
	twoContours := &font.Glyph{Contours: [][]font.Point{{{X: 0, Y: 0}}, {{X: 1, Y: 1}}}}

	r := newRecorder(t)
	checks.CheckGlyphsHaveSameNumOfContours(r, []*font.Font{
		fontWithGlyphs("Nunito-Regular.ttf", map[string]*font.Glyph{"A": oneContour}),
		fontWithGlyphs("Nunito-Bold.ttf", map[string]*font.Glyph{"A": oneContour}),
	})
	assert.Equal(t, domain.StatusOK, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckGlyphsHaveSameNumOfContours(r, []*font.Font{
		fontWithGlyphs("Nunito-Regular.ttf", map[string]*font.Glyph{"A": oneContour}),
		fontWithGlyphs("Nunito-Bold.ttf", map[string]*font.Glyph{"A": twoContours}),
	})
	assert.Equal(t, domain.StatusError, lastStatus(t, r))
}

func TestCheckGlyphsHaveSameNumOfPoints(t *testing.T) {
	threePoints := &font.Glyph{Contours: [][]font.Point{{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1},
	}}}
	fourPoints := &font.Glyph{Contours: [][]font.Point{{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}}}

	r := newRecorder(t)
	checks.CheckGlyphsHaveSameNumOfPoints(r, []*font.Font{
		fontWithGlyphs("Nunito-Regular.ttf", map[string]*font.Glyph{"A": fourPoints}),
		fontWithGlyphs("Nunito-Bold.ttf", map[string]*font.Glyph{"A": fourPoints}),
	})
	assert.Equal(t, domain.StatusOK, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckGlyphsHaveSameNumOfPoints(r, []*font.Font{
		fontWithGlyphs("Nunito-Regular.ttf", map[string]*font.Glyph{"A": fourPoints}),
		fontWithGlyphs("Nunito-Bold.ttf", map[string]*font.Glyph{"A": threePoints}),
	})
	assert.Equal(t, domain.StatusError, lastStatus(t, r))
}
