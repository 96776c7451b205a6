package domain

// EventKind classifies a single recorded outcome of a check.
type EventKind string

const (
	EventOK      EventKind = "OK"
	EventError   EventKind = "ERROR"
	EventWarning EventKind = "WARNING"
	EventInfo    EventKind = "INFO"
	EventSkip    EventKind = "SKIP"
	EventHotfix  EventKind = "HOTFIX"
)

// Event is one recorded observation. A check records one or more of these
// before it finishes.
type Event struct {
	Kind    EventKind `json:"kind"`
	Message string    `json:"message"`
}

// severityRank orders event kinds from most to least severe. HOTFIX is not
// ranked: it marks a repaired condition and is resolved separately.
func severityRank(k EventKind) int {
	switch k {
	case EventError:
		return 5
	case EventWarning:
		return 4
	case EventInfo:
		return 3
	case EventSkip:
		return 2
	case EventOK:
		return 1
	default:
		return 0
	}
}

// Status is the final per-check outcome derived from its events.
type Status string

const (
	StatusError   Status = "ERROR"
	StatusWarning Status = "WARNING"
	StatusInfo    Status = "INFO"
	StatusSkip    Status = "SKIP"
	StatusFixed   Status = "FIXED"
	StatusOK      Status = "OK"
)
