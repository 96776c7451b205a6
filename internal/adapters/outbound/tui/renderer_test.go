package tui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fontcheck/fontcheck/internal/adapters/outbound/tui"
	"github.com/fontcheck/fontcheck/internal/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		FamilyDir:  "fonts/nunito",
		CommitHash: "abc1234def5678",
		Timestamp:  time.Now(),
		Checks: []domain.CheckResult{
			{ID: "001", Title: "Checking file is named canonically", Status: domain.StatusOK},
			{ID: "070", Title: "Font has 'EURO SIGN' character?", Status: domain.StatusError,
				Events: []domain.Event{{Kind: domain.EventError, Message: "Font lacks the 'EURO SIGN' character."}}},
			{ID: "116", Title: "Is font em size (ideally) equal to 1000?", Status: domain.StatusSkip},
		},
		Summary: domain.Summary{Passed: 1, Errors: 1, Skipped: 1},
	}
}

func TestRenderReport(t *testing.T) {
	out := tui.RenderReport(sampleReport())

	assert.Contains(t, out, "fontcheck")
	assert.Contains(t, out, "fonts/nunito")
	assert.Contains(t, out, "1 checks failing")
	assert.Contains(t, out, "Checking file is named canonically")
	// Failing checks print their event detail.
	assert.Contains(t, out, "Font lacks the 'EURO SIGN' character.")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "1 passed")
	assert.Contains(t, out, "1 errors")
	assert.Contains(t, out, "1 skipped")
	// Commit hashes are abbreviated.
	assert.Contains(t, out, "commit abc1234")
	assert.NotContains(t, out, "abc1234def5678")
}

func TestRenderReport_AllPassing(t *testing.T) {
	report := &domain.Report{
		FamilyDir: "fonts/nunito",
		Checks: []domain.CheckResult{
			{ID: "001", Title: "Checking file is named canonically", Status: domain.StatusOK},
		},
		Summary: domain.Summary{Passed: 1},
	}

	out := tui.RenderReport(report)
	assert.Contains(t, out, "All checks passing")
}

func TestRenderHistory(t *testing.T) {
	entries := []domain.RunEntry{
		{
			Timestamp:  time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
			CommitHash: "abc1234def",
			Summary:    domain.Summary{Passed: 50},
		},
		{
			Timestamp: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
			Summary:   domain.Summary{Passed: 48, Errors: 2},
		},
	}

	out := tui.RenderHistory(entries)
	assert.Contains(t, out, "Run History")
	assert.Contains(t, out, "2026-08-20")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, "pass")
	assert.Contains(t, out, "2 errors")
}

func TestRenderHistory_Empty(t *testing.T) {
	out := tui.RenderHistory(nil)
	assert.Contains(t, out, "No run history found.")
}
