package workers

import (
	"context"
	"fmt"
	"game-hub/contract"
	"game-hub/errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/sourcegraph/conc/panics"
	"golang.org/x/sync/semaphore"
)

var _ contract.IExecutor = (*Executor)(nil)

type Policy int

const (
	// Blocking makes Submit wait for a free slot. Used for anything that
	// affects session state: nothing submitted is ever lost.
	Blocking Policy = iota
	// Dropping makes Submit return false when the executor is full or paused.
	// Used for best-effort housekeeping where skipping a tick is fine.
	Dropping
)

func (p Policy) String() string {
	if p == Dropping {
		return "dropping"
	}
	return "blocking"
}

// Executor runs at most capacity tasks at the same time, each in its own goroutine.
// Every task runs behind the same boundary: a returned error or a panic is
// logged with the task tag and counted, and the slot is always given back.
type Executor struct {
	log      *slog.Logger
	name     string
	policy   Policy
	capacity int64
	slots    *semaphore.Weighted
	inFlight atomic.Int64
	failures atomic.Uint64
	dropped  atomic.Uint64
	wg       sync.WaitGroup

	mu      sync.Mutex
	paused  bool
	resumed chan struct{} // closed while not paused
}

func NewBlockingExecutor(log *slog.Logger, name string, capacity int) *Executor {
	return newExecutor(log, name, Blocking, capacity)
}

func NewDroppingExecutor(log *slog.Logger, name string, capacity int) *Executor {
	return newExecutor(log, name, Dropping, capacity)
}

func newExecutor(log *slog.Logger, name string, policy Policy, capacity int) *Executor {
	if capacity < 1 {
		capacity = 1
	}
	resumed := make(chan struct{})
	close(resumed)
	return &Executor{
		log:      log.With("executor", name, "policy", policy.String()),
		name:     name,
		policy:   policy,
		capacity: int64(capacity),
		slots:    semaphore.NewWeighted(int64(capacity)),
		resumed:  resumed,
	}
}

// Submit hands the task to a new goroutine once a slot is reserved.
// With the blocking policy it only returns false when ctx ends while waiting;
// with the dropping policy it returns false whenever the task was skipped.
func (e *Executor) Submit(ctx context.Context, tag string, task contract.Task) bool {
	if !e.reserve(ctx) {
		e.dropped.Add(1)
		e.log.Debug("Task not submitted", "task", tag)
		return false
	}
	e.inFlight.Add(1)
	e.wg.Add(1)
	go e.run(ctx, tag, task)
	return true
}

func (e *Executor) reserve(ctx context.Context) bool {
	if e.policy == Dropping {
		if e.IsPaused() {
			return false
		}
		return e.slots.TryAcquire(1)
	}
	for {
		e.mu.Lock()
		paused, resumed := e.paused, e.resumed
		e.mu.Unlock()
		if paused {
			select {
			case <-resumed:
				continue
			case <-ctx.Done():
				return false
			}
		}
		if err := e.slots.Acquire(ctx, 1); err != nil {
			return false
		}
		// Paused while waiting for the slot: give it back and wait for resume
		if e.IsPaused() {
			e.slots.Release(1)
			continue
		}
		return true
	}
}

func (e *Executor) run(ctx context.Context, tag string, task contract.Task) {
	defer func() {
		e.inFlight.Add(-1)
		e.slots.Release(1)
		e.wg.Done()
	}()

	var err error
	var catcher panics.Catcher
	catcher.Try(func() { err = task(ctx) })
	if recovered := catcher.Recovered(); recovered != nil {
		err = fmt.Errorf("%w: %v", errors.ErrTaskPanic, recovered.Value)
		e.log.Debug("Task panic stack", "task", tag, "stack", string(recovered.Stack))
	}
	if err != nil {
		e.failures.Add(1)
		e.log.Error("Task failed", "task", tag, "error", err)
	}
}

// IsBusy reports whether at least one task is in flight.
func (e *Executor) IsBusy() bool {
	return e.inFlight.Load() > 0
}

// IsOverloaded reports whether every slot is taken.
func (e *Executor) IsOverloaded() bool {
	return e.inFlight.Load() == e.capacity
}

func (e *Executor) InFlight() int {
	return int(e.inFlight.Load())
}

func (e *Executor) Capacity() int {
	return int(e.capacity)
}

func (e *Executor) Failures() uint64 {
	return e.failures.Load()
}

func (e *Executor) Dropped() uint64 {
	return e.dropped.Load()
}

func (e *Executor) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused {
		return
	}
	e.paused = true
	e.resumed = make(chan struct{})
}

func (e *Executor) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.paused {
		return
	}
	e.paused = false
	close(e.resumed)
}

func (e *Executor) IsPaused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

// Wait blocks until every submitted task returned.
func (e *Executor) Wait() {
	e.wg.Wait()
}
