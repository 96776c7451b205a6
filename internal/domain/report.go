package domain

import "time"

// CheckResult is the immutable per-check entry of a Report.
type CheckResult struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Priority Priority `json:"priority"`
	Status   Status   `json:"status"`
	Events   []Event  `json:"events"`
}

// Summary counts checks per final status.
type Summary struct {
	Passed   int `json:"passed"`
	Fixed    int `json:"fixed"`
	Skipped  int `json:"skipped"`
	Infos    int `json:"infos"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// Report is the sole user-facing artifact of a run. Read-only once built;
// presentation layers consume the per-check final status.
type Report struct {
	FamilyDir  string        `json:"family_dir"`
	CommitHash string        `json:"commit_hash,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
	Checks     []CheckResult `json:"checks"`
	Summary    Summary       `json:"summary"`
}

// BuildReport folds the recorder's accumulated checks into a final report.
func BuildReport(familyDir, commitHash string, checks []*Check) *Report {
	r := &Report{
		FamilyDir:  familyDir,
		CommitHash: commitHash,
		Timestamp:  time.Now(),
	}
	for _, c := range checks {
		status := c.Status()
		r.Checks = append(r.Checks, CheckResult{
			ID:       c.ID,
			Title:    c.Title,
			Priority: c.Priority,
			Status:   status,
			Events:   c.Events,
		})
		switch status {
		case StatusOK:
			r.Summary.Passed++
		case StatusFixed:
			r.Summary.Fixed++
		case StatusSkip:
			r.Summary.Skipped++
		case StatusInfo:
			r.Summary.Infos++
		case StatusWarning:
			r.Summary.Warnings++
		case StatusError:
			r.Summary.Errors++
		}
	}
	return r
}

// HasErrors reports whether any check resolved to ERROR.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}
