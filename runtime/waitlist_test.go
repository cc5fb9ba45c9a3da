package runtime

import (
	"fmt"
	"game-hub/domain"
	"game-hub/errors"
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const kindPair domain.SessionKind = "pair"

func pairWaitlist() *Waitlist {
	return NewWaitlist([]domain.KindSpec{
		{Kind: kindPair, CohortSize: 2},
		{Kind: domain.KindMemory, CohortSize: 1},
		{Kind: domain.KindHalma, CohortSize: 2, MatchByHandle: true},
	})
}

func entryOf(kind domain.SessionKind, id string) domain.WaitlistEntry {
	return domain.NewWaitlistEntry(kind, domain.NewParticipant(domain.ParticipantID(id), id), "handle-"+id)
}

func participantIDs(entries []domain.WaitlistEntry) []domain.ParticipantID {
	return lo.Map(entries, func(e domain.WaitlistEntry, _ int) domain.ParticipantID { return e.Participant.ID })
}

func TestWaitlist_Cohort_Of_Two_In_Join_Order(t *testing.T) {
	req := require.New(t)
	waitlist := pairWaitlist()

	// Given A and B join
	for _, id := range []string{"A", "B"} {
		joined, err := waitlist.Join(entryOf(kindPair, id))
		req.NoError(err)
		req.True(joined)
	}

	// Then they form a cohort
	cohort, ok := waitlist.PopFormedCohort(kindPair)
	req.True(ok)
	req.Equal([]domain.ParticipantID{"A", "B"}, participantIDs(cohort))

	// When C joins alone, C keeps waiting
	joined, err := waitlist.Join(entryOf(kindPair, "C"))
	req.NoError(err)
	req.True(joined)
	_, ok = waitlist.PopFormedCohort(kindPair)
	req.False(ok)
	req.Equal(1, waitlist.Waiting(kindPair))

	// When D joins, C and D are grouped
	_, err = waitlist.Join(entryOf(kindPair, "D"))
	req.NoError(err)
	cohort, ok = waitlist.PopFormedCohort(kindPair)
	req.True(ok)
	req.Equal([]domain.ParticipantID{"C", "D"}, participantIDs(cohort))
	req.Zero(waitlist.Waiting(kindPair))
}

func TestWaitlist_Cohorts_Are_Popped_In_Formation_Order(t *testing.T) {
	req := require.New(t)
	waitlist := pairWaitlist()

	for _, id := range []string{"A", "B", "C", "D", "E"} {
		_, err := waitlist.Join(entryOf(kindPair, id))
		req.NoError(err)
	}

	first, _ := waitlist.PopFormedCohort(kindPair)
	second, _ := waitlist.PopFormedCohort(kindPair)
	_, ok := waitlist.PopFormedCohort(kindPair)

	req.Equal([]domain.ParticipantID{"A", "B"}, participantIDs(first))
	req.Equal([]domain.ParticipantID{"C", "D"}, participantIDs(second))
	req.False(ok)
	req.Equal(1, waitlist.Waiting(kindPair))
}

func TestWaitlist_Single_Seat_Kind_Forms_On_Every_Join(t *testing.T) {
	req := require.New(t)
	waitlist := pairWaitlist()

	joined, err := waitlist.Join(entryOf(domain.KindMemory, "A"))
	req.NoError(err)
	req.True(joined)

	cohort, ok := waitlist.PopFormedCohort(domain.KindMemory)
	req.True(ok)
	req.Len(cohort, 1)
	req.Zero(waitlist.Waiting(domain.KindMemory))
}

func TestWaitlist_Duplicate_Join_Is_Refused(t *testing.T) {
	req := require.New(t)
	waitlist := pairWaitlist()

	joined, err := waitlist.Join(entryOf(kindPair, "A"))
	req.NoError(err)
	req.True(joined)

	// When A joins again while waiting
	joined, err = waitlist.Join(entryOf(kindPair, "A"))

	// Then nothing changes
	req.NoError(err)
	req.False(joined)
	req.Equal(1, waitlist.Waiting(kindPair))
}

func TestWaitlist_Handle_Equivalence(t *testing.T) {
	req := require.New(t)
	waitlist := pairWaitlist()
	alice := domain.NewParticipant("alice", "Alice")
	bob := domain.NewParticipant("bob", "Bob")

	// Given two participants joining from the same conversation
	joined, err := waitlist.Join(domain.NewWaitlistEntry(domain.KindHalma, alice, "chat-1"))
	req.NoError(err)
	req.True(joined)
	joined, err = waitlist.Join(domain.NewWaitlistEntry(domain.KindHalma, bob, "chat-1"))

	// Then the second request is a duplicate
	req.NoError(err)
	req.False(joined)
	req.Equal(1, waitlist.Waiting(domain.KindHalma))
}

func TestWaitlist_Handle_Equivalence_Without_Handles(t *testing.T) {
	req := require.New(t)
	waitlist := pairWaitlist()
	alice := domain.NewParticipant("alice", "Alice")
	bob := domain.NewParticipant("bob", "Bob")

	// Given alice waiting for halma without a conversation handle
	joined, err := waitlist.Join(domain.NewWaitlistEntry(domain.KindHalma, alice, ""))
	req.NoError(err)
	req.True(joined)

	// When alice joins again, still without a handle
	joined, err = waitlist.Join(domain.NewWaitlistEntry(domain.KindHalma, alice, ""))

	// Then the request is a duplicate
	req.NoError(err)
	req.False(joined)

	// When bob joins without a handle
	joined, err = waitlist.Join(domain.NewWaitlistEntry(domain.KindHalma, bob, ""))

	// Then both are grouped into a cohort
	req.NoError(err)
	req.True(joined)
	cohort, ok := waitlist.PopFormedCohort(domain.KindHalma)
	req.True(ok)
	req.Equal([]domain.ParticipantID{"alice", "bob"}, participantIDs(cohort))
}

func TestWaitlist_Unknown_Kind(t *testing.T) {
	req := require.New(t)
	waitlist := pairWaitlist()

	joined, err := waitlist.Join(entryOf("chess", "A"))

	req.False(joined)
	req.ErrorIs(err, errors.ErrUnknownKind)
	req.False(waitlist.Withdraw(entryOf("chess", "A")))
	_, ok := waitlist.PopFormedCohort("chess")
	req.False(ok)
}

func TestWaitlist_Invalid_Participant(t *testing.T) {
	req := require.New(t)
	waitlist := pairWaitlist()

	joined, err := waitlist.Join(domain.NewWaitlistEntry(kindPair, domain.Participant{}, ""))

	req.False(joined)
	req.Error(err)
	req.Zero(waitlist.Waiting(kindPair))
}

func TestWaitlist_Participant_Id_With_Separator_Is_Rejected(t *testing.T) {
	req := require.New(t)
	waitlist := pairWaitlist()

	// When a participant id holds the history key separator
	joined, err := waitlist.Join(entryOf(kindPair, "alice:1"))

	// Then the entry is refused
	req.False(joined)
	req.Error(err)
	req.Zero(waitlist.Waiting(kindPair))
}

func TestWaitlist_Withdraw(t *testing.T) {
	req := require.New(t)
	waitlist := pairWaitlist()

	_, err := waitlist.Join(entryOf(kindPair, "A"))
	req.NoError(err)

	// When A withdraws while waiting
	req.True(waitlist.Withdraw(entryOf(kindPair, "A")))
	req.Zero(waitlist.Waiting(kindPair))

	// Then a second withdraw finds nothing
	req.False(waitlist.Withdraw(entryOf(kindPair, "A")))
}

func TestWaitlist_Withdraw_After_Grouping_Fails(t *testing.T) {
	req := require.New(t)
	waitlist := pairWaitlist()

	_, _ = waitlist.Join(entryOf(kindPair, "A"))
	_, _ = waitlist.Join(entryOf(kindPair, "B"))

	req.False(waitlist.Withdraw(entryOf(kindPair, "A")))
	cohort, ok := waitlist.PopFormedCohort(kindPair)
	req.True(ok)
	req.Len(cohort, 2)
}

func TestWaitlist_Snapshot_And_Clear(t *testing.T) {
	req := require.New(t)
	waitlist := pairWaitlist()

	for _, id := range []string{"A", "B", "C"} {
		_, _ = waitlist.Join(entryOf(kindPair, id))
	}
	_, _ = waitlist.Join(entryOf(domain.KindMemory, "M"))

	snapshot := waitlist.Snapshot()
	req.ElementsMatch([]domain.ParticipantID{"A", "B", "C", "M"}, participantIDs(snapshot))

	waitlist.Clear()
	req.Empty(waitlist.Snapshot())
	_, ok := waitlist.PopFormedCohort(kindPair)
	req.False(ok)
}

func TestWaitlist_Concurrent_Joins_Never_Double_Count(t *testing.T) {
	req := require.New(t)
	waitlist := pairWaitlist()

	// Given 100 participants each joining several times concurrently
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 100; i++ {
		for j := 0; j < 3; j++ {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				if joined, _ := waitlist.Join(entryOf(kindPair, id)); joined {
					mu.Lock()
					accepted++
					mu.Unlock()
				}
			}(fmt.Sprintf("p%d", i))
		}
	}
	wg.Wait()

	// Then every accepted entry lands exactly once and each cohort is full
	var seen []domain.ParticipantID
	for {
		cohort, ok := waitlist.PopFormedCohort(kindPair)
		if !ok {
			break
		}
		req.Len(cohort, 2)
		req.NotEqual(cohort[0].Participant.ID, cohort[1].Participant.ID)
		seen = append(seen, participantIDs(cohort)...)
	}
	waiting := participantIDs(waitlist.Snapshot())
	req.LessOrEqual(len(waiting), 1)
	seen = append(seen, waiting...)
	req.Len(seen, accepted)
	req.GreaterOrEqual(len(lo.Uniq(seen)), 100)
}

func TestWaitlist_Kinds_And_Specs(t *testing.T) {
	req := require.New(t)
	waitlist := pairWaitlist()

	req.Equal([]domain.SessionKind{kindPair, domain.KindMemory, domain.KindHalma}, waitlist.Kinds())
	spec, ok := waitlist.Spec(domain.KindHalma)
	req.True(ok)
	req.True(spec.MatchByHandle)
	_, ok = waitlist.Spec("chess")
	req.False(ok)
}
