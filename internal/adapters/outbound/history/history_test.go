package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontcheck/fontcheck/internal/adapters/outbound/history"
	"github.com/fontcheck/fontcheck/internal/domain"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.RunEntry{
		Timestamp:  time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		CommitHash: "abc1234",
		Summary:    domain.Summary{Passed: 40, Errors: 2},
	}
	require.NoError(t, h.Save(dir, entry))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc1234", entries[0].CommitHash)
	assert.Equal(t, 40, entries[0].Summary.Passed)
	assert.Equal(t, 2, entries[0].Summary.Errors)
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	for i := 0; i < 3; i++ {
		require.NoError(t, h.Save(dir, domain.RunEntry{
			Timestamp: time.Now(),
			Summary:   domain.Summary{Passed: i},
		}))
	}

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 0, entries[0].Summary.Passed)
	assert.Equal(t, 2, entries[2].Summary.Passed)
}

func TestHistory_LoadMissingFileReturnsEmpty(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
