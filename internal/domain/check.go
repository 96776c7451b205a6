package domain

import "fmt"

// Priority classifies how urgent a failing check is.
type Priority string

const (
	PriorityCritical  Priority = "CRITICAL"
	PriorityImportant Priority = "IMPORTANT"
	PriorityNormal    Priority = "NORMAL"
)

// Check is one independently identified validation rule execution. It is
// created by Recorder.NewCheck and collects events until the recorder moves
// on to the next check.
type Check struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Priority Priority `json:"priority"`
	Events   []Event  `json:"events"`

	recorder *Recorder
}

// SetPriority attaches a severity class to the check. Defaults to NORMAL.
func (c *Check) SetPriority(p Priority) {
	c.Priority = p
}

func (c *Check) record(kind EventKind, format string, args ...interface{}) {
	if c.recorder == nil || c.recorder.current != c {
		panic(fmt.Sprintf("check %s: recording after the recorder moved on", c.ID))
	}
	c.Events = append(c.Events, Event{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

func (c *Check) OK(format string, args ...interface{}) {
	c.record(EventOK, format, args...)
}

func (c *Check) Error(format string, args ...interface{}) {
	c.record(EventError, format, args...)
}

func (c *Check) Warning(format string, args ...interface{}) {
	c.record(EventWarning, format, args...)
}

func (c *Check) Info(format string, args ...interface{}) {
	c.record(EventInfo, format, args...)
}

func (c *Check) Skip(format string, args ...interface{}) {
	c.record(EventSkip, format, args...)
}

// Hotfix records an autonomously repaired condition. Callers must persist the
// repair before the check returns.
func (c *Check) Hotfix(format string, args ...interface{}) {
	c.record(EventHotfix, format, args...)
}

// Status resolves the check's final outcome: the maximum-severity event
// recorded, except that a check whose only non-OK events are HOTFIXes is
// reported as FIXED rather than failing.
func (c *Check) Status() Status {
	worst := EventKind("")
	fixed := false
	for _, e := range c.Events {
		if e.Kind == EventHotfix {
			fixed = true
			continue
		}
		if severityRank(e.Kind) > severityRank(worst) {
			worst = e.Kind
		}
	}
	switch worst {
	case EventError:
		return StatusError
	case EventWarning:
		return StatusWarning
	case EventInfo:
		return StatusInfo
	case EventSkip:
		return StatusSkip
	}
	if fixed {
		return StatusFixed
	}
	return StatusOK
}
