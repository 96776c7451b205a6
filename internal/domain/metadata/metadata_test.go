package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fontcheck/fontcheck/internal/domain/metadata"
)

func TestFontMetadata_CanonicalFilename(t *testing.T) {
	tests := []struct {
		name string
		fm   metadata.FontMetadata
		want string
	}{
		{
			"regular weight maps to Regular",
			metadata.FontMetadata{Name: "Nunito", Weight: 400, Style: "normal"},
			"Nunito-Regular.ttf",
		},
		{
			"bold italic",
			metadata.FontMetadata{Name: "Inter", Weight: 700, Style: "italic"},
			"Inter-BoldItalic.ttf",
		},
		{
			"regular italic drops the Regular prefix",
			metadata.FontMetadata{Name: "Inter", Weight: 400, Style: "italic"},
			"Inter-Italic.ttf",
		},
		{
			"spaces stripped from the family name",
			metadata.FontMetadata{Name: "Open Sans", Weight: 300, Style: "normal"},
			"OpenSans-Light.ttf",
		},
		{
			"black weight",
			metadata.FontMetadata{Name: "Nunito", Weight: 900, Style: "normal"},
			"Nunito-Black.ttf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fm.CanonicalFilename())
		})
	}
}

func TestFontMetadata_FilenameBase(t *testing.T) {
	fm := metadata.FontMetadata{Filename: "Nunito-Regular.ttf"}
	assert.Equal(t, "Nunito-Regular", fm.FilenameBase())
}
