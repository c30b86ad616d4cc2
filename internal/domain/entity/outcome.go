package entity

import "time"

type OutcomeStatus string

const (
	// OutcomeSkipped means the group already had the desired members
	OutcomeSkipped OutcomeStatus = "skipped"
	// OutcomeUpdated means the group membership was replaced
	OutcomeUpdated OutcomeStatus = "updated"
	// OutcomeEmpty means no on-call identity matched the directory, so nothing was written
	OutcomeEmpty OutcomeStatus = "empty"
	// OutcomeFailed means the run aborted on an error
	OutcomeFailed OutcomeStatus = "failed"
)

// Outcome is the result of reconciling one on-call set against the group.
type Outcome struct {
	Status   OutcomeStatus
	GroupID  string
	Previous []string
	Members  []string
	Reason   string
}

// Run is a recorded invocation of the on-call sync.
type Run struct {
	ID          string
	Date        time.Time
	GroupHandle string
	Status      OutcomeStatus
	OnCall      []string
	Members     []string
	Error       string
	StartedAt   time.Time
	FinishedAt  time.Time
}
