package domain

import "time"

// WaitlistEntry is a participant request to join a session of a given kind.
// Handle references the conversation or message the request originated from.
type WaitlistEntry struct {
	Kind        SessionKind `validate:"required"`
	Participant Participant `validate:"required"`
	Handle      string
	RequestedAt time.Time
}

func NewWaitlistEntry(kind SessionKind, participant Participant, handle string) WaitlistEntry {
	return WaitlistEntry{
		Kind:        kind,
		Participant: participant,
		Handle:      handle,
		RequestedAt: time.Now().UTC(),
	}
}

// Equivalent reports whether two entries must not be waiting at the same time.
func (e WaitlistEntry) Equivalent(other WaitlistEntry, spec KindSpec) bool {
	if e.Kind != other.Kind {
		return false
	}
	// Entries without a handle fall back to the participant
	if spec.MatchByHandle && e.Handle != "" && other.Handle != "" {
		return e.Handle == other.Handle
	}
	return e.Participant.ID == other.Participant.ID
}
