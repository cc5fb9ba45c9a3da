package domain_test

import (
	"game-hub/domain"
	"game-hub/errors"
	"game-hub/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func halmaCohort() []domain.WaitlistEntry {
	return []domain.WaitlistEntry{
		domain.NewWaitlistEntry(domain.KindHalma, domain.NewParticipant("alice", "Alice"), "msg-a"),
		domain.NewWaitlistEntry(domain.KindHalma, domain.NewParticipant("bob", "Bob"), "msg-b"),
	}
}

func TestNewSession_Seats_Cohort_In_Join_Order(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	logic := mocks.NewMockSessionLogic(ctrl)

	// When a session is created from a cohort
	session, err := domain.NewSession(halmaCohort(), logic, time.Now())

	// Then participants and handles follow the join order
	req.NoError(err)
	req.NotEmpty(session.ID)
	req.Equal(domain.KindHalma, session.Kind)
	req.Equal(2, session.Seats())
	req.Equal(domain.ParticipantID("alice"), session.Participants[0].ID)
	req.Equal("msg-b", session.Handle(1))
	req.False(session.IsSynced(0))
	req.False(session.AllSynced())
}

func TestNewSession_Rejects_Invalid_Cohorts(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	logic := mocks.NewMockSessionLogic(ctrl)

	_, err := domain.NewSession(nil, logic, time.Now())
	req.ErrorIs(err, errors.ErrInvalidCohort)

	mixed := halmaCohort()
	mixed[1].Kind = domain.KindMemory
	_, err = domain.NewSession(mixed, logic, time.Now())
	req.ErrorIs(err, errors.ErrInvalidCohort)
}

func TestSession_Ids_Are_Unique(t *testing.T) {
	req := require.New(t)
	seen := make(map[domain.SessionID]struct{})
	for i := 0; i < 1000; i++ {
		id := domain.NewSessionID()
		_, exists := seen[id]
		req.False(exists)
		seen[id] = struct{}{}
	}
}

func TestSession_Apply_Resolves_Seat_And_Syncs(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	logic := mocks.NewMockSessionLogic(ctrl)
	session, err := domain.NewSession(halmaCohort(), logic, time.Now())
	req.NoError(err)

	payload := domain.Payload{Action: domain.ActionClick, Row: 7, Column: 7}
	logic.EXPECT().IsTerminal().Return(false).AnyTimes()
	logic.EXPECT().ApplyEvent(1, payload).Return(true, nil).Times(1)

	// When bob clicks from his own message
	changed, err := session.Apply(domain.NewInboundEvent(session.ID, "bob", "msg-b", payload))

	// Then the logic receives the event for seat 1
	req.NoError(err)
	req.True(changed)
	req.True(session.IsSynced(1))
	req.False(session.IsSynced(0))
}

func TestSession_Apply_Unknown_Actor(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	logic := mocks.NewMockSessionLogic(ctrl)
	session, err := domain.NewSession(halmaCohort(), logic, time.Now())
	req.NoError(err)
	logic.EXPECT().IsTerminal().Return(false).AnyTimes()

	_, err = session.Apply(domain.NewInboundEvent(session.ID, "mallory", "msg-x", domain.Payload{}))

	req.ErrorIs(err, errors.ErrUnknownSeat)
}

func TestSession_Cancel_Closes_Session(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	logic := mocks.NewMockSessionLogic(ctrl)
	session, err := domain.NewSession(halmaCohort(), logic, time.Now())
	req.NoError(err)
	logic.EXPECT().IsTerminal().Return(false).AnyTimes()

	// Given a cancelled session
	req.True(session.Cancel(domain.CauseTimedOut))
	// Then the first cause wins
	req.False(session.Cancel(domain.CauseServerStopped))
	req.Equal(domain.CauseTimedOut, session.Cause())

	// And no event is accepted anymore
	_, err = session.Apply(domain.NewInboundEvent(session.ID, "alice", "msg-a", domain.Payload{}))
	req.ErrorIs(err, errors.ErrSessionClosed)

	record := session.Record(time.Now())
	req.Equal(domain.OutcomeCancelled, record.Outcome)
	req.Equal(domain.CauseTimedOut, record.Cause)
	req.Equal([]domain.ParticipantID{"alice", "bob"}, record.Participants)
}

func TestSession_Expired(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	logic := mocks.NewMockSessionLogic(ctrl)
	now := time.Now()
	session, err := domain.NewSession(halmaCohort(), logic, now)
	req.NoError(err)
	logic.EXPECT().Deadline().Return(now.Add(time.Minute)).AnyTimes()

	req.False(session.Expired(now))
	req.True(session.Expired(now.Add(2 * time.Minute)))
}

func TestSession_Record_Finished_Results(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	logic := mocks.NewMockSessionLogic(ctrl)
	session, err := domain.NewSession(halmaCohort(), logic, time.Now())
	req.NoError(err)
	logic.EXPECT().IsTerminal().Return(true).AnyTimes()
	logic.EXPECT().Results().Return([]domain.Result{
		{Seat: 0, Status: domain.StatusDefeat, Moves: 12},
		{Seat: 1, Status: domain.StatusWin, Moves: 12},
	})

	record := session.Record(time.Now())

	req.Equal(domain.OutcomeFinished, record.Outcome)
	req.Len(record.Results, 2)
	req.Equal(domain.ParticipantID("bob"), record.Results[1].Participant)
	req.Equal(domain.StatusWin, record.Results[1].Status)
}

func TestParseKind(t *testing.T) {
	req := require.New(t)

	kind, err := domain.ParseKind("HALMA")
	req.NoError(err)
	req.Equal(domain.KindHalma, kind)

	kind, err = domain.ParseKind(" memory ")
	req.NoError(err)
	req.Equal(domain.KindMemory, kind)

	kind, err = domain.ParseKind("Memory_Game")
	req.NoError(err)
	req.Equal(domain.KindMemory, kind)

	kind, err = domain.ParseKind("halma-game")
	req.NoError(err)
	req.Equal(domain.KindHalma, kind)

	_, err = domain.ParseKind("chess")
	req.ErrorIs(err, errors.ErrUnknownKind)
}

func TestWaitlistEntry_Equivalent(t *testing.T) {
	req := require.New(t)
	specs := domain.DefaultKindSpecs()
	memory, halma := specs[0], specs[1]

	alice := domain.NewParticipant("alice", "Alice")
	// Same participant, different messages: equivalent for memory only
	a1 := domain.NewWaitlistEntry(domain.KindMemory, alice, "m1")
	a2 := domain.NewWaitlistEntry(domain.KindMemory, alice, "m2")
	req.True(a1.Equivalent(a2, memory))

	h1 := domain.NewWaitlistEntry(domain.KindHalma, alice, "m1")
	h2 := domain.NewWaitlistEntry(domain.KindHalma, alice, "m2")
	req.False(h1.Equivalent(h2, halma))

	// Same conversation handle for halma
	bob := domain.NewParticipant("bob", "Bob")
	h3 := domain.NewWaitlistEntry(domain.KindHalma, bob, "m1")
	req.True(h1.Equivalent(h3, halma))

	// Different kinds never match
	req.False(a1.Equivalent(h1, memory))

	// Without a handle, halma entries are told apart by participant
	noHandleAlice := domain.NewWaitlistEntry(domain.KindHalma, alice, "")
	noHandleBob := domain.NewWaitlistEntry(domain.KindHalma, bob, "")
	req.False(noHandleAlice.Equivalent(noHandleBob, halma))
	req.True(noHandleAlice.Equivalent(domain.NewWaitlistEntry(domain.KindHalma, alice, ""), halma))
	req.False(noHandleAlice.Equivalent(h3, halma))
}
