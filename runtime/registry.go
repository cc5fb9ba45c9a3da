package runtime

import (
	"context"
	"game-hub/contract"
	"game-hub/domain"
	"sync"

	"github.com/samber/lo"
)

var _ contract.IRegistry = (*Registry)(nil)

// slot guards one session. The token channel holds a single token while the
// session is free; gone is closed once the session left the registry.
type slot struct {
	session *domain.Session
	token   chan struct{}
	gone    chan struct{}
}

func newSlot(session *domain.Session) *slot {
	s := &slot{session: session, token: make(chan struct{}, 1), gone: make(chan struct{})}
	s.token <- struct{}{}
	return s
}

// Registry holds the live sessions, each behind its own exclusive slot.
// The structural lock only protects the map and is never held while waiting on a slot.
type Registry struct {
	mu    sync.RWMutex
	slots map[domain.SessionID]*slot
}

func NewRegistry() *Registry {
	return &Registry{slots: make(map[domain.SessionID]*slot)}
}

// Add registers the session with a free slot.
// Returns false, leaving the registry untouched, when the id is already present.
func (r *Registry) Add(session *domain.Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slots[session.ID]; ok {
		return false
	}
	r.slots[session.ID] = newSlot(session)
	return true
}

// IDs returns a snapshot of the registered ids, safe to iterate while
// sessions are added or removed.
func (r *Registry) IDs() []domain.SessionID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.slots)
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots)
}

func (r *Registry) Contains(id domain.SessionID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.slots[id]
	return ok
}

func (r *Registry) lookup(id domain.SessionID) *slot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.slots[id]
}

// Acquire waits for exclusive access to the session.
// Returns nil when the id is unknown, when the session is removed while
// waiting, or when ctx ends first.
func (r *Registry) Acquire(ctx context.Context, id domain.SessionID) *domain.Session {
	s := r.lookup(id)
	if s == nil {
		return nil
	}
	select {
	case <-s.token:
	case <-s.gone:
		return nil
	case <-ctx.Done():
		return nil
	}
	// Removal and release may race with the wake up
	select {
	case <-s.gone:
		return nil
	default:
		return s.session
	}
}

// TryAcquire grants exclusive access only if the slot is free right now.
func (r *Registry) TryAcquire(id domain.SessionID) *domain.Session {
	s := r.lookup(id)
	if s == nil {
		return nil
	}
	select {
	case <-s.token:
	default:
		return nil
	}
	select {
	case <-s.gone:
		return nil
	default:
		return s.session
	}
}

// Release gives the slot back. With remove, the session leaves the registry
// and every waiter wakes up empty-handed. Releasing a slot nobody holds is a no-op.
func (r *Registry) Release(id domain.SessionID, remove bool) {
	if remove {
		r.mu.Lock()
		s, ok := r.slots[id]
		if ok {
			delete(r.slots, id)
			close(s.gone)
		}
		r.mu.Unlock()
		return
	}

	s := r.lookup(id)
	if s == nil {
		return
	}
	select {
	case s.token <- struct{}{}:
	default:
	}
}
