package domain

import "time"

type ResultStatus string

const (
	StatusWin      ResultStatus = "win"
	StatusDefeat   ResultStatus = "defeat"
	StatusDraw     ResultStatus = "draw"
	StatusNameless ResultStatus = "nameless"
)

// Result is the outcome of one seat once the session logic reached its end.
type Result struct {
	Seat        int
	Participant ParticipantID
	Status      ResultStatus
	Moves       int
}

type Cause string

const (
	CauseTimedOut      Cause = "timed-out"
	CauseServerStopped Cause = "server-stopped"
)

type Outcome string

const (
	OutcomeFinished  Outcome = "finished"
	OutcomeCancelled Outcome = "cancelled"
)

// SessionRecord is the history row written when a session leaves the registry.
type SessionRecord struct {
	SessionID    SessionID       `json:"session_id"`
	Kind         SessionKind     `json:"kind"`
	Participants []ParticipantID `json:"participants"`
	Outcome      Outcome         `json:"outcome"`
	Cause        Cause           `json:"cause,omitempty"`
	Results      []Result        `json:"results,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	ClosedAt     time.Time       `json:"closed_at"`
}
