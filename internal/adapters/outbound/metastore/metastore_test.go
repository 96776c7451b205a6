package metastore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontcheck/fontcheck/internal/adapters/outbound/metastore"
	"github.com/fontcheck/fontcheck/internal/domain/metadata"
)

func writeMetadata(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "METADATA.json"), []byte(contents), 0o644))
}

const validMetadata = `{
	"name": "Nunito",
	"designer": "Vernon Adams",
	"license": "OFL",
	"subsets": ["latin", "menu"],
	"fonts": [{
		"name": "Nunito",
		"style": "normal",
		"weight": 400,
		"filename": "Nunito-Regular.ttf",
		"full_name": "Nunito Regular",
		"post_script_name": "Nunito-Regular",
		"copyright": "Copyright 2014 Vernon Adams (vern@newtypography.co.uk)"
	}]
}`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeMetadata(t, dir, validMetadata)

	fam, err := metastore.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Nunito", fam.Name)
	assert.Equal(t, "OFL", fam.License)
	require.Len(t, fam.Fonts, 1)
	assert.Equal(t, 400, fam.Fonts[0].Weight)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := metastore.New().Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidStyle(t *testing.T) {
	dir := t.TempDir()
	writeMetadata(t, dir, `{
		"name": "Nunito",
		"license": "OFL",
		"fonts": [{
			"name": "Nunito",
			"style": "oblique",
			"weight": 400,
			"filename": "Nunito-Regular.ttf"
		}]
	}`)

	_, err := metastore.New().Load(dir)
	assert.Error(t, err, "style must be normal or italic")
}

func TestLoad_RejectsEmptyFonts(t *testing.T) {
	dir := t.TempDir()
	writeMetadata(t, dir, `{"name": "Nunito", "license": "OFL", "fonts": []}`)

	_, err := metastore.New().Load(dir)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := metastore.New()

	fam := &metadata.Family{
		Name:    "Nunito",
		License: "OFL",
		Subsets: []string{"cyrillic", "latin", "menu"},
		Fonts: []metadata.FontMetadata{{
			Name: "Nunito", Style: "normal", Weight: 400, Filename: "Nunito-Regular.ttf",
		}},
	}
	require.NoError(t, store.Save(dir, fam))

	loaded, err := store.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, fam.Subsets, loaded.Subsets)
}
