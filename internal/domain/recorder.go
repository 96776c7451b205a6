package domain

import (
	"fmt"

	"github.com/fontcheck/fontcheck/internal/domain/font"
)

// Recorder accumulates check results for one run. It is single-owner state:
// one recorder per run, never shared across concurrent runs.
type Recorder struct {
	Config RunConfig

	checks  []*Check
	current *Check
}

func NewRecorder(cfg RunConfig) *Recorder {
	return &Recorder{Config: cfg}
}

// NewCheck opens a new check context and invalidates the prior one. A check
// must record at least one event before the recorder moves on; closing an
// empty check is a framework defect and panics.
func (r *Recorder) NewCheck(id, title string) *Check {
	if r.current != nil && len(r.current.Events) == 0 {
		panic(fmt.Sprintf("check %s (%s) finished without recording any event", r.current.ID, r.current.Title))
	}
	c := &Check{ID: id, Title: title, Priority: PriorityNormal, recorder: r}
	r.checks = append(r.checks, c)
	r.current = c
	return c
}

// Checks returns all checks recorded so far, validating that the last one
// also closed with at least one event.
func (r *Recorder) Checks() []*Check {
	if r.current != nil && len(r.current.Events) == 0 {
		panic(fmt.Sprintf("check %s (%s) finished without recording any event", r.current.ID, r.current.Title))
	}
	return r.checks
}

// InternalFailure records a run-abort condition for the check currently
// executing. Used by the driver when a rule panics; the run continues with
// the remaining checks.
func (r *Recorder) InternalFailure(msg string) {
	if r.current == nil {
		c := &Check{ID: "internal", Title: "Internal failure", Priority: PriorityNormal, recorder: r}
		r.checks = append(r.checks, c)
		r.current = c
	}
	r.current.Error("Internal failure: %s", msg)
}

// AssertTableEntry reads a numeric field from the font table view and records
// OK if it equals expected, ERROR otherwise. This is the only recorder helper
// that reaches into the view directly; rules with richer logic read the view
// themselves.
func (r *Recorder) AssertTableEntry(c *Check, f *font.Font, table, field string, expected int) {
	got, ok := f.Entry(table, field)
	if !ok {
		c.Error("Font lacks a %q table entry %q.", table, field)
		return
	}
	if got != expected {
		c.Error("%s %s is %d; expected %d.", table, field, got, expected)
		return
	}
	c.OK("%s %s is %d.", table, field, got)
}
