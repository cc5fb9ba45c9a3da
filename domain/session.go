package domain

import (
	"fmt"
	"game-hub/errors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// SessionID is a random UUIDv4. With 122 random bits, the probability of a
// collision among a billion sessions is below 1e-19, so ids are assumed unique.
type SessionID string

func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// Session is one running game. Its participant list is fixed at creation and
// once the logic is terminal or the session is cancelled, no event is accepted.
// A Session is not safe for concurrent use: callers hold its registry slot.
type Session struct {
	ID           SessionID
	Kind         SessionKind
	Participants []Participant
	Logic        SessionLogic
	CreatedAt    time.Time
	handles      []string
	synced       []bool
	cause        Cause
}

// NewSession seats the cohort in join order.
func NewSession(cohort []WaitlistEntry, logic SessionLogic, createdAt time.Time) (*Session, error) {
	if len(cohort) == 0 {
		return nil, fmt.Errorf("%w: empty cohort", errors.ErrInvalidCohort)
	}
	kind := cohort[0].Kind
	if lo.SomeBy(cohort, func(e WaitlistEntry) bool { return e.Kind != kind }) {
		return nil, fmt.Errorf("%w: mixed session kinds", errors.ErrInvalidCohort)
	}
	return &Session{
		ID:           NewSessionID(),
		Kind:         kind,
		Participants: lo.Map(cohort, func(e WaitlistEntry, _ int) Participant { return e.Participant }),
		Logic:        logic,
		CreatedAt:    createdAt,
		handles:      lo.Map(cohort, func(e WaitlistEntry, _ int) string { return e.Handle }),
		synced:       make([]bool, len(cohort)),
	}, nil
}

func (s *Session) Seats() int {
	return len(s.Participants)
}

// Handle returns the outbound artifact of a seat, empty when none was rendered yet.
func (s *Session) Handle(seat int) string {
	if seat < 0 || seat >= len(s.handles) {
		return ""
	}
	return s.handles[seat]
}

// SetHandle is called by transports once they created the artifact of a seat.
func (s *Session) SetHandle(seat int, handle string) {
	if seat < 0 || seat >= len(s.handles) {
		return
	}
	s.handles[seat] = handle
}

// IsSynced reports whether the seat sent at least one event.
func (s *Session) IsSynced(seat int) bool {
	if seat < 0 || seat >= len(s.synced) {
		return false
	}
	return s.synced[seat]
}

func (s *Session) AllSynced() bool {
	return lo.EveryBy(s.synced, func(synced bool) bool { return synced })
}

// SeatOf resolves the seat an event comes from, by handle first and by actor second.
func (s *Session) SeatOf(evt InboundEvent) (int, error) {
	if evt.Handle != "" {
		if _, seat, ok := lo.FindIndexOf(s.handles, func(h string) bool { return h == evt.Handle }); ok {
			return seat, nil
		}
	}
	if _, seat, ok := lo.FindIndexOf(s.Participants, func(p Participant) bool { return p.ID == evt.Actor }); ok {
		return seat, nil
	}
	return -1, fmt.Errorf("%w: actor %s, session %s", errors.ErrUnknownSeat, evt.Actor, s.ID)
}

// Apply hands the event to the logic. The returned bool tells whether the
// state changed.
func (s *Session) Apply(evt InboundEvent) (bool, error) {
	if s.Closed() {
		return false, fmt.Errorf("%w: %s", errors.ErrSessionClosed, s.ID)
	}
	seat, err := s.SeatOf(evt)
	if err != nil {
		return false, err
	}
	s.synced[seat] = true
	if evt.Handle != "" {
		s.handles[seat] = evt.Handle
	}
	return s.Logic.ApplyEvent(seat, evt.Payload)
}

func (s *Session) IsTerminal() bool {
	return s.Logic.IsTerminal()
}

// Cancel marks the session as cancelled. It returns false when the session was
// already closed, the first cause wins.
func (s *Session) Cancel(cause Cause) bool {
	if s.Closed() {
		return false
	}
	s.cause = cause
	return true
}

func (s *Session) IsCancelled() bool {
	return s.cause != ""
}

func (s *Session) Cause() Cause {
	return s.cause
}

func (s *Session) Closed() bool {
	return s.IsCancelled() || s.IsTerminal()
}

func (s *Session) Deadline() time.Time {
	return s.Logic.Deadline()
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.Deadline())
}

// Results joins the logic results with participant identities.
func (s *Session) Results() []Result {
	return lo.Map(s.Logic.Results(), func(r Result, _ int) Result {
		if r.Seat >= 0 && r.Seat < len(s.Participants) {
			r.Participant = s.Participants[r.Seat].ID
		}
		return r
	})
}

func (s *Session) Record(closedAt time.Time) SessionRecord {
	record := SessionRecord{
		SessionID:    s.ID,
		Kind:         s.Kind,
		Participants: lo.Map(s.Participants, func(p Participant, _ int) ParticipantID { return p.ID }),
		Outcome:      OutcomeFinished,
		CreatedAt:    s.CreatedAt,
		ClosedAt:     closedAt,
	}
	if s.IsCancelled() {
		record.Outcome = OutcomeCancelled
		record.Cause = s.cause
		return record
	}
	record.Results = s.Results()
	return record
}
