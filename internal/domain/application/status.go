// Package application defines the job application entity and the state
// machine that governs its lifecycle.
//
// Valid status graph:
//
//	PENDING ──► UNDER_REVIEW ──► INTERVIEW_SCHEDULED ──► ACCEPTED
//	    │            │                     │
//	    ├────────────┼─────────────────────┴───────────► REJECTED
//	    │            │
//	    └────────────┴─────────────────────────────────► WITHDRAWN
//
// A reviewer may also schedule an interview straight from PENDING. A
// student may withdraw only until an interview is scheduled. ACCEPTED,
// REJECTED and WITHDRAWN are terminal states.
package application

import "fmt"

// Status values mirror the application_status enum in PostgreSQL.
type Status string

const (
	StatusPending            Status = "PENDING"
	StatusUnderReview        Status = "UNDER_REVIEW"
	StatusInterviewScheduled Status = "INTERVIEW_SCHEDULED"
	StatusAccepted           Status = "ACCEPTED"
	StatusRejected           Status = "REJECTED"
	StatusWithdrawn          Status = "WITHDRAWN"
)

// AllStatuses is the canonical bucket order for counts and dropdowns.
var AllStatuses = []Status{
	StatusPending,
	StatusUnderReview,
	StatusInterviewScheduled,
	StatusAccepted,
	StatusRejected,
	StatusWithdrawn,
}

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusPending:            {StatusUnderReview, StatusInterviewScheduled, StatusRejected, StatusWithdrawn},
	StatusUnderReview:        {StatusInterviewScheduled, StatusRejected, StatusWithdrawn},
	StatusInterviewScheduled: {StatusAccepted, StatusRejected},
	// ACCEPTED, REJECTED and WITHDRAWN are terminal — no outgoing transitions
}

// ParseStatus converts a raw string to a Status. The legacy label
// "REVIEWED" is accepted as an alias of UNDER_REVIEW; some older screens
// still send it.
func ParseStatus(s string) (Status, error) {
	if s == "REVIEWED" {
		return StatusUnderReview, nil
	}
	st := Status(s)
	switch st {
	case StatusPending, StatusUnderReview, StatusInterviewScheduled, StatusAccepted, StatusRejected, StatusWithdrawn:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// IsTerminal reports whether status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	_, ok := validTransitions[s]
	return !ok
}

// CanTransition reports whether moving from → to is permitted by the
// transition table, ignoring actor authority.
func CanTransition(from, to Status) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
