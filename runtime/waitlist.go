package runtime

import (
	"fmt"
	"game-hub/contract"
	"game-hub/domain"
	"game-hub/errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var _ contract.IWaitlist = (*Waitlist)(nil)

// lane is the waiting line of one kind. Every operation on it runs under its own lock.
type lane struct {
	mu      sync.Mutex
	spec    domain.KindSpec
	waiting []domain.WaitlistEntry
	formed  [][]domain.WaitlistEntry
}

// Waitlist groups join requests into cohorts, one lane per session kind.
// Lanes are created once, so two kinds never contend.
type Waitlist struct {
	lanes    map[domain.SessionKind]*lane
	kinds    []domain.SessionKind
	validate *validator.Validate
}

func NewWaitlist(specs []domain.KindSpec) *Waitlist {
	w := &Waitlist{
		lanes:    make(map[domain.SessionKind]*lane, len(specs)),
		validate: validator.New(),
	}
	for _, spec := range specs {
		if spec.CohortSize < 1 {
			spec.CohortSize = 1
		}
		if _, ok := w.lanes[spec.Kind]; ok {
			continue
		}
		w.lanes[spec.Kind] = &lane{spec: spec}
		w.kinds = append(w.kinds, spec.Kind)
	}
	return w
}

func (w *Waitlist) lane(kind domain.SessionKind) (*lane, error) {
	l, ok := w.lanes[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownKind, kind)
	}
	return l, nil
}

// Join appends the entry unless an equivalent one is already waiting.
// Once enough entries wait, the oldest ones are grouped into a cohort in the same step.
func (w *Waitlist) Join(entry domain.WaitlistEntry) (bool, error) {
	l, err := w.lane(entry.Kind)
	if err != nil {
		return false, err
	}
	if err := w.validate.Struct(entry.Participant); err != nil {
		return false, fmt.Errorf("invalid participant %q: %w", entry.Participant.ID, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if lo.SomeBy(l.waiting, func(e domain.WaitlistEntry) bool { return e.Equivalent(entry, l.spec) }) {
		return false, nil
	}
	l.waiting = append(l.waiting, entry)
	if len(l.waiting) >= l.spec.CohortSize {
		cohort := make([]domain.WaitlistEntry, l.spec.CohortSize)
		copy(cohort, l.waiting)
		l.waiting = append(l.waiting[:0:0], l.waiting[l.spec.CohortSize:]...)
		l.formed = append(l.formed, cohort)
	}
	return true, nil
}

// Withdraw removes a waiting entry equivalent to the given one.
// Entries already grouped into a cohort can't be withdrawn.
func (w *Waitlist) Withdraw(entry domain.WaitlistEntry) bool {
	l, err := w.lane(entry.Kind)
	if err != nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, index, found := lo.FindIndexOf(l.waiting, func(e domain.WaitlistEntry) bool { return e.Equivalent(entry, l.spec) })
	if !found {
		return false
	}
	l.waiting = append(l.waiting[:index], l.waiting[index+1:]...)
	return true
}

// PopFormedCohort hands over the oldest formed cohort of the kind, if any.
func (w *Waitlist) PopFormedCohort(kind domain.SessionKind) ([]domain.WaitlistEntry, bool) {
	l, err := w.lane(kind)
	if err != nil {
		return nil, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.formed) == 0 {
		return nil, false
	}
	cohort := l.formed[0]
	l.formed[0] = nil
	l.formed = l.formed[1:]
	return cohort, true
}

// Snapshot lists waiting and grouped but undelivered entries of every kind.
func (w *Waitlist) Snapshot() []domain.WaitlistEntry {
	var entries []domain.WaitlistEntry
	for _, kind := range w.kinds {
		l := w.lanes[kind]
		l.mu.Lock()
		for _, cohort := range l.formed {
			entries = append(entries, cohort...)
		}
		entries = append(entries, l.waiting...)
		l.mu.Unlock()
	}
	return entries
}

func (w *Waitlist) Clear() {
	for _, l := range w.lanes {
		l.mu.Lock()
		l.waiting = nil
		l.formed = nil
		l.mu.Unlock()
	}
}

// Waiting counts entries of the kind not yet grouped.
func (w *Waitlist) Waiting(kind domain.SessionKind) int {
	l, err := w.lane(kind)
	if err != nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.waiting)
}

func (w *Waitlist) Spec(kind domain.SessionKind) (domain.KindSpec, bool) {
	l, ok := w.lanes[kind]
	if !ok {
		return domain.KindSpec{}, false
	}
	return l.spec, true
}

// Kinds returns the kinds in the order they were configured.
func (w *Waitlist) Kinds() []domain.SessionKind {
	return append([]domain.SessionKind(nil), w.kinds...)
}
