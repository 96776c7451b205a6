package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fontcheck/fontcheck/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	skipColor = lipgloss.Color("#4B5563") // dark gray
	fixed     = lipgloss.Color("#A3E635") // lime
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	infoStyle     = lipgloss.NewStyle().Foreground(info)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	fixedStyle    = lipgloss.NewStyle().Foreground(fixed)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders a full run report as a styled TUI string.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("fontcheck")
	subtitle := dimStyle.Render(report.FamilyDir)
	verdict := verdictLine(report)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict))
	b.WriteString("\n\n")

	// ── Checks ──
	for _, check := range report.Checks {
		renderCheck(&b, check)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Summary ──
	renderSummary(&b, report.Summary)

	if report.CommitHash != "" {
		hash := report.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		b.WriteString("  " + faintStyle.Render("commit "+hash) + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func verdictLine(report *domain.Report) string {
	if report.HasErrors() {
		return errorTagStyle.Render(fmt.Sprintf("%d checks failing", report.Summary.Errors))
	}
	return passStyle.Render("All checks passing")
}

func renderCheck(b *strings.Builder, check domain.CheckResult) {
	tag := statusTag(check.Status)
	id := faintStyle.Render(check.ID)
	fmt.Fprintf(b, "  %s %s  %s\n", tag, id, check.Title)

	// Only failing or noteworthy checks get their event detail printed.
	if check.Status == domain.StatusOK || check.Status == domain.StatusSkip {
		return
	}
	for _, e := range check.Events {
		if e.Kind == domain.EventOK {
			continue
		}
		for _, line := range strings.Split(e.Message, "\n") {
			fmt.Fprintf(b, "         %s\n", dimStyle.Render(line))
		}
	}
}

func statusTag(status domain.Status) string {
	switch status {
	case domain.StatusError:
		return failStyle.Render("✗ ERROR")
	case domain.StatusWarning:
		return warnStyle.Render("! WARN ")
	case domain.StatusInfo:
		return infoStyle.Render("i INFO ")
	case domain.StatusSkip:
		return skipStyle.Render("○ SKIP ")
	case domain.StatusFixed:
		return fixedStyle.Render("+ FIXED")
	default:
		return passStyle.Render("✓ OK   ")
	}
}

func renderSummary(b *strings.Builder, s domain.Summary) {
	b.WriteString("  " + titleStyle.Render("Summary") + "  ")
	parts := []string{
		passStyle.Render(fmt.Sprintf("%d passed", s.Passed)),
	}
	if s.Fixed > 0 {
		parts = append(parts, fixedStyle.Render(fmt.Sprintf("%d fixed", s.Fixed)))
	}
	if s.Warnings > 0 {
		parts = append(parts, warnStyle.Render(fmt.Sprintf("%d warnings", s.Warnings)))
	}
	if s.Errors > 0 {
		parts = append(parts, errorTagStyle.Render(fmt.Sprintf("%d errors", s.Errors)))
	}
	if s.Infos > 0 {
		parts = append(parts, infoStyle.Render(fmt.Sprintf("%d info", s.Infos)))
	}
	if s.Skipped > 0 {
		parts = append(parts, skipStyle.Render(fmt.Sprintf("%d skipped", s.Skipped)))
	}
	b.WriteString(strings.Join(parts, "  "))
	b.WriteString("\n")
}

// RenderHistory formats run history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		status := passStyle.Render("pass")
		if e.Summary.Errors > 0 {
			status = failStyle.Render(fmt.Sprintf("%d errors", e.Summary.Errors))
		}

		line := fmt.Sprintf("  %s  %s  %s",
			dimStyle.Render(e.Timestamp.Format("2006-01-02")),
			faintStyle.Render(hash),
			status,
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
