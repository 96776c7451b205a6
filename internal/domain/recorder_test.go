package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/font"
)

func TestRecorder_CollectsChecksInOrder(t *testing.T) {
	rec := domain.NewRecorder(domain.DefaultRunConfig())

	c1 := rec.NewCheck("001", "first")
	c1.OK("fine")
	c2 := rec.NewCheck("002", "second")
	c2.Error("broken")

	checks := rec.Checks()
	require.Len(t, checks, 2)
	assert.Equal(t, "001", checks[0].ID)
	assert.Equal(t, "002", checks[1].ID)
	assert.Equal(t, domain.StatusOK, checks[0].Status())
	assert.Equal(t, domain.StatusError, checks[1].Status())
}

func TestRecorder_PanicsWhenCheckRecordsNoEvent(t *testing.T) {
	rec := domain.NewRecorder(domain.DefaultRunConfig())
	rec.NewCheck("001", "never records")

	assert.Panics(t, func() {
		rec.NewCheck("002", "next")
	})
}

func TestRecorder_PanicsOnBuildWithEmptyLastCheck(t *testing.T) {
	rec := domain.NewRecorder(domain.DefaultRunConfig())
	c := rec.NewCheck("001", "ok")
	c.OK("done")
	rec.NewCheck("002", "empty")

	assert.Panics(t, func() {
		rec.Checks()
	})
}

func TestCheck_PanicsWhenRecordingAfterRecorderMovedOn(t *testing.T) {
	rec := domain.NewRecorder(domain.DefaultRunConfig())
	c1 := rec.NewCheck("001", "first")
	c1.OK("fine")
	c2 := rec.NewCheck("002", "second")
	c2.OK("fine too")

	assert.Panics(t, func() {
		c1.Error("too late")
	})
}

func TestCheck_StatusResolution(t *testing.T) {
	tests := []struct {
		name   string
		record func(c *domain.Check)
		want   domain.Status
	}{
		{"single ok", func(c *domain.Check) { c.OK("x") }, domain.StatusOK},
		{"error wins over warning", func(c *domain.Check) { c.Warning("w"); c.Error("e") }, domain.StatusError},
		{"warning wins over info", func(c *domain.Check) { c.Info("i"); c.Warning("w") }, domain.StatusWarning},
		{"info wins over skip", func(c *domain.Check) { c.Skip("s"); c.Info("i") }, domain.StatusInfo},
		{"skip wins over ok", func(c *domain.Check) { c.OK("o"); c.Skip("s") }, domain.StatusSkip},
		{"only hotfix is fixed", func(c *domain.Check) { c.Hotfix("h") }, domain.StatusFixed},
		{"hotfix plus ok is fixed", func(c *domain.Check) { c.Hotfix("h"); c.OK("o") }, domain.StatusFixed},
		{"hotfix plus warning is warning", func(c *domain.Check) { c.Hotfix("h"); c.Warning("w") }, domain.StatusWarning},
		{"hotfix plus error is error", func(c *domain.Check) { c.Error("e"); c.Hotfix("h") }, domain.StatusError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := domain.NewRecorder(domain.DefaultRunConfig())
			c := rec.NewCheck("x", "status")
			tt.record(c)
			assert.Equal(t, tt.want, c.Status())
		})
	}
}

func TestRecorder_InternalFailureWithoutOpenCheck(t *testing.T) {
	rec := domain.NewRecorder(domain.DefaultRunConfig())
	rec.InternalFailure("exploded early")

	checks := rec.Checks()
	require.Len(t, checks, 1)
	assert.Equal(t, "internal", checks[0].ID)
	assert.Equal(t, domain.StatusError, checks[0].Status())
}

func TestRecorder_AssertTableEntry(t *testing.T) {
	fnt := &font.Font{OS2: &font.OS2{USWeightClass: 700}}

	rec := domain.NewRecorder(domain.DefaultRunConfig())
	c := rec.NewCheck("x", "equality")
	rec.AssertTableEntry(c, fnt, "OS/2", "usWeightClass", 700)
	assert.Equal(t, domain.StatusOK, c.Status())

	c2 := rec.NewCheck("y", "mismatch")
	rec.AssertTableEntry(c2, fnt, "OS/2", "usWeightClass", 400)
	assert.Equal(t, domain.StatusError, c2.Status())

	c3 := rec.NewCheck("z", "missing table")
	rec.AssertTableEntry(c3, &font.Font{}, "OS/2", "usWeightClass", 400)
	assert.Equal(t, domain.StatusError, c3.Status())
}

func TestBuildReport_SummaryCounts(t *testing.T) {
	rec := domain.NewRecorder(domain.DefaultRunConfig())
	rec.NewCheck("a", "pass").OK("x")
	rec.NewCheck("b", "fail").Error("x")
	rec.NewCheck("c", "warn").Warning("x")
	rec.NewCheck("d", "skip").Skip("x")
	rec.NewCheck("e", "fixed").Hotfix("x")
	rec.NewCheck("f", "info").Info("x")

	report := domain.BuildReport("testfamily", "abc1234", rec.Checks())
	assert.Equal(t, 1, report.Summary.Passed)
	assert.Equal(t, 1, report.Summary.Errors)
	assert.Equal(t, 1, report.Summary.Warnings)
	assert.Equal(t, 1, report.Summary.Skipped)
	assert.Equal(t, 1, report.Summary.Fixed)
	assert.Equal(t, 1, report.Summary.Infos)
	assert.True(t, report.HasErrors())
	assert.Equal(t, "abc1234", report.CommitHash)
	require.Len(t, report.Checks, 6)
}
