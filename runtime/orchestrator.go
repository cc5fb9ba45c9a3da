// Package runtime forms sessions out of the waitlist and drives them.
// It schedules work without containing any game rule.
package runtime

import (
	"context"
	"fmt"
	"game-hub/contract"
	"game-hub/domain"
	"game-hub/errors"
	"game-hub/observability"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/samber/lo"
)

var _ contract.IOrchestrator = (*Orchestrator)(nil)

type State int

const (
	StateStopped State = iota
	StateRunning
	StateStopping
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateTerminated:
		return "terminated"
	default:
		return "stopped"
	}
}

// Stats is a point in time view of the engine.
type Stats struct {
	State    State                      `json:"state"`
	Active   int                        `json:"active"`
	Pending  int                        `json:"pending"`
	Waiting  map[domain.SessionKind]int `json:"waiting"`
	InFlight int                        `json:"in_flight"`
	Engine   observability.EngineStats  `json:"engine"`
}

type Orchestrator struct {
	mu         sync.Mutex
	announceMu sync.RWMutex
	state      State
	pending    []*domain.Session
	buffers    map[domain.SessionID][]domain.InboundEvent

	log              *slog.Logger
	supervisor       contract.ISupervisor
	registry         contract.IRegistry
	waitlist         contract.IWaitlist
	executor         contract.IExecutor
	factory          contract.LogicFactory
	renderer         contract.Renderer
	results          contract.ResultRepository
	monitor          *observability.Monitor
	pollInterval     time.Duration
	idlePollInterval time.Duration
	now              func() time.Time

	taskCtx  context.Context
	stopping atomic.Bool
	loopDone chan struct{}
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.IRegistry, waitlist contract.IWaitlist, executor contract.IExecutor,
	factory contract.LogicFactory, renderer contract.Renderer, results contract.ResultRepository,
	monitor *observability.Monitor, pollInterval, idlePollInterval time.Duration) *Orchestrator {
	return &Orchestrator{
		state:            StateStopped,
		buffers:          make(map[domain.SessionID][]domain.InboundEvent),
		log:              log,
		supervisor:       supervisor,
		registry:         registry,
		waitlist:         waitlist,
		executor:         executor,
		factory:          factory,
		renderer:         renderer,
		results:          results,
		monitor:          monitor,
		pollInterval:     pollInterval,
		idlePollInterval: idlePollInterval,
		now:              func() time.Time { return time.Now().UTC() },
		loopDone:         make(chan struct{}),
	}
}

// Start launches the control loop under the supervisor and returns.
// Cancelling ctx stops the loop, Stop is still needed to drain the sessions.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	switch o.state {
	case StateRunning, StateStopping:
		o.mu.Unlock()
		return errors.ErrAlreadyStarted
	case StateTerminated:
		o.mu.Unlock()
		return errors.ErrOrchestratorTerminated
	}
	o.state = StateRunning
	// Tasks outlive the loop: a stop lets them complete
	o.taskCtx = context.WithoutCancel(ctx)
	o.mu.Unlock()

	o.supervisor.Add(&ControlLoop{orchestrator: o})
	go func() {
		defer close(o.loopDone)
		o.supervisor.Run(ctx)
	}()
	o.log.Info("Orchestrator started", "poll_interval", o.pollInterval)
	return nil
}

// Stop blocks until every in-flight task completed, then cancels what is left:
// registered and pending sessions with the server-stopped cause, waiting
// entries with a withdrawal announcement.
func (o *Orchestrator) Stop() error {
	o.mu.Lock()
	switch o.state {
	case StateStopped:
		o.mu.Unlock()
		return errors.ErrNotStarted
	case StateStopping, StateTerminated:
		o.mu.Unlock()
		return errors.ErrAlreadyStopped
	}
	o.state = StateStopping
	ctx := o.taskCtx
	o.mu.Unlock()

	o.log.Info("Stopping orchestrator")
	o.stopping.Store(true)
	o.supervisor.Stop()
	<-o.loopDone

	o.waitIdle(ctx)
	o.shutdown(ctx)

	o.mu.Lock()
	o.state = StateTerminated
	o.mu.Unlock()
	o.log.Info("Orchestrator terminated")
	return nil
}

// waitIdle polls the executor with an exponential backoff until nothing runs.
func (o *Orchestrator) waitIdle(ctx context.Context) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = o.idlePollInterval
	b.MaxInterval = 20 * o.idlePollInterval
	for o.executor.IsBusy() {
		_, err := backoff.Retry(ctx, func() (int, error) {
			if n := o.executor.InFlight(); n > 0 {
				return n, errors.ErrExecutorBusy
			}
			return 0, nil
		}, backoff.WithBackOff(b))
		if err != nil {
			o.log.Debug("Executor still busy", "error", err)
		}
	}
}

func (o *Orchestrator) shutdown(ctx context.Context) {
	for _, id := range o.registry.IDs() {
		session := o.registry.Acquire(ctx, id)
		if session == nil {
			continue
		}
		o.cancel(ctx, session, domain.CauseServerStopped)
	}

	o.mu.Lock()
	pending := o.pending
	o.pending = nil
	o.mu.Unlock()
	for _, session := range pending {
		o.cancel(ctx, session, domain.CauseServerStopped)
	}

	for _, entry := range o.waitlist.Snapshot() {
		if err := o.renderer.AnnounceWithdrawn(ctx, entry); err != nil {
			o.log.Warn("Unable to announce withdrawal", "participant", entry.Participant.ID, "error", err)
		}
	}
	o.waitlist.Clear()

	o.mu.Lock()
	o.buffers = make(map[domain.SessionID][]domain.InboundEvent)
	o.mu.Unlock()
}

func (o *Orchestrator) isRunning() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state == StateRunning
}

// SubmitJoin puts the entry on the waitlist of its kind.
// Returns false when the orchestrator isn't running, the kind is unknown or
// an equivalent entry is already waiting.
func (o *Orchestrator) SubmitJoin(ctx context.Context, entry domain.WaitlistEntry) bool {
	if !o.isRunning() {
		return false
	}
	spec, ok := o.waitlist.Spec(entry.Kind)
	if !ok {
		o.log.Warn("Join refused", "kind", entry.Kind, "error", errors.ErrUnknownKind)
		return false
	}
	// Cohort announcements wait for the search announcement of the entries they hold
	o.announceMu.RLock()
	defer o.announceMu.RUnlock()
	joined, err := o.waitlist.Join(entry)
	if err != nil {
		o.log.Warn("Join refused", "participant", entry.Participant.ID, "kind", entry.Kind, "error", err)
		return false
	}
	if joined && spec.CohortSize > 1 {
		if err := o.renderer.AnnounceCohortNotFound(ctx, entry); err != nil {
			o.log.Warn("Unable to announce search", "participant", entry.Participant.ID, "error", err)
		}
	}
	return joined
}

func (o *Orchestrator) SubmitWithdraw(ctx context.Context, entry domain.WaitlistEntry) bool {
	if !o.isRunning() {
		return false
	}
	if !o.waitlist.Withdraw(entry) {
		return false
	}
	if err := o.renderer.AnnounceWithdrawn(ctx, entry); err != nil {
		o.log.Warn("Unable to announce withdrawal", "participant", entry.Participant.ID, "error", err)
	}
	return true
}

// SubmitEvent buffers the event for its session.
// An event for a session without a live buffer is stale: its artifact is disposed and false returned.
func (o *Orchestrator) SubmitEvent(ctx context.Context, evt domain.InboundEvent) bool {
	o.mu.Lock()
	buffer, ok := o.buffers[evt.SessionID]
	if ok && o.state == StateRunning {
		o.buffers[evt.SessionID] = append(buffer, evt)
		o.mu.Unlock()
		return true
	}
	o.mu.Unlock()

	o.dispose(ctx, evt)
	return false
}

func (o *Orchestrator) ActiveSessionCount() int {
	return o.registry.Count()
}

func (o *Orchestrator) PendingSessionCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pending)
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) Stats() Stats {
	waiting := make(map[domain.SessionKind]int)
	for _, kind := range o.waitlist.Kinds() {
		waiting[kind] = o.waitlist.Waiting(kind)
	}
	o.mu.Lock()
	state, pending := o.state, len(o.pending)
	o.mu.Unlock()
	return Stats{
		State:    state,
		Active:   o.registry.Count(),
		Pending:  pending,
		Waiting:  waiting,
		InFlight: o.executor.InFlight(),
		Engine:   o.monitor.GetLatest(),
	}
}

// ControlLoop only submits work, so a slow session never blocks it.
type ControlLoop struct {
	orchestrator *Orchestrator
}

func (l *ControlLoop) Run(ctx context.Context) error {
	o := l.orchestrator
	ticker := time.NewTicker(o.pollInterval)
	defer ticker.Stop()
	for {
		if o.stopping.Load() {
			return nil
		}
		o.tick(ctx)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// tick submits one round of work. Admission uses the loop context while the
// tasks themselves run on the task context so a stop lets them complete.
func (o *Orchestrator) tick(ctx context.Context) {
	o.executor.Submit(ctx, "drain-cohorts", func(context.Context) error {
		return o.drainCohorts(o.taskCtx)
	})

	if o.PendingSessionCount() > 0 {
		o.executor.Submit(ctx, "start-next", func(context.Context) error {
			return o.startNext(o.taskCtx)
		})
	}

	for _, id := range o.registry.IDs() {
		if o.stopping.Load() {
			return
		}
		session := o.registry.TryAcquire(id)
		if session == nil {
			continue
		}
		var tag string
		var task contract.Task
		switch {
		case session.Expired(o.now()):
			tag = "cancel"
			task = func(context.Context) error {
				o.cancel(o.taskCtx, session, domain.CauseTimedOut)
				return nil
			}
		case o.hasWork(session):
			tag = "process"
			task = func(context.Context) error {
				return o.process(o.taskCtx, session)
			}
		default:
			o.registry.Release(id, false)
			continue
		}
		if !o.executor.Submit(ctx, tag, task) {
			o.registry.Release(id, false)
		}
	}
}

func (o *Orchestrator) hasWork(session *domain.Session) bool {
	if session.IsTerminal() {
		return true
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.buffers[session.ID]) > 0
}

// drainCohorts turns every formed cohort into a pending session.
func (o *Orchestrator) drainCohorts(ctx context.Context) error {
	var failed error
	for _, kind := range o.waitlist.Kinds() {
		for {
			cohort, ok := o.waitlist.PopFormedCohort(kind)
			if !ok {
				break
			}
			if err := o.form(ctx, kind, cohort); err != nil {
				failed = err
			}
		}
	}
	return failed
}

func (o *Orchestrator) form(ctx context.Context, kind domain.SessionKind, cohort []domain.WaitlistEntry) error {
	spec, ok := o.waitlist.Spec(kind)
	if !ok {
		return fmt.Errorf("%w: %q", errors.ErrUnknownKind, kind)
	}
	now := o.now()
	logic, err := o.factory.New(spec, cohort, now.Add(spec.TTL))
	if err == nil {
		var session *domain.Session
		session, err = domain.NewSession(cohort, logic, now)
		if err == nil {
			o.announceMu.Lock()
			announceErr := o.renderer.AnnounceCohortFormed(ctx, session)
			o.announceMu.Unlock()
			if announceErr != nil {
				o.log.Warn("Unable to announce cohort", "session", session.ID, "error", announceErr)
			}
			o.mu.Lock()
			o.pending = append(o.pending, session)
			o.mu.Unlock()
			o.monitor.IncrSessionsFormed()
			o.log.Debug("Cohort formed", "session", session.ID, "kind", kind,
				"participants", lo.Map(session.Participants, func(p domain.Participant, _ int) domain.ParticipantID { return p.ID }))
			return nil
		}
	}
	for _, entry := range cohort {
		if announceErr := o.renderer.AnnounceWithdrawn(ctx, entry); announceErr != nil {
			o.log.Warn("Unable to announce withdrawal", "participant", entry.Participant.ID, "error", announceErr)
		}
	}
	return fmt.Errorf("unable to form %s session: %w", kind, err)
}

// startNext renders the oldest pending session then registers it.
// Until registered, nobody else can reach the session.
func (o *Orchestrator) startNext(ctx context.Context) error {
	o.mu.Lock()
	if len(o.pending) == 0 {
		o.mu.Unlock()
		return nil
	}
	session := o.pending[0]
	o.pending[0] = nil
	o.pending = o.pending[1:]
	o.mu.Unlock()

	if err := o.renderer.RenderState(ctx, session); err != nil {
		o.log.Warn("Unable to render initial state", "session", session.ID, "error", err)
	}

	o.mu.Lock()
	o.buffers[session.ID] = nil
	o.mu.Unlock()
	if !o.registry.Add(session) {
		o.mu.Lock()
		delete(o.buffers, session.ID)
		o.mu.Unlock()
		return fmt.Errorf("session %s already registered", session.ID)
	}
	o.monitor.IncrSessionsStarted()
	o.log.Debug("Session started", "session", session.ID, "kind", session.Kind)
	return nil
}

// process applies the buffered events in order, holding the session slot.
func (o *Orchestrator) process(ctx context.Context, session *domain.Session) error {
	removed := false
	defer func() {
		if !removed {
			o.registry.Release(session.ID, false)
		}
	}()

	events := o.takeEvents(session.ID)
	var rejected int
	var firstErr error
	for i, evt := range events {
		if session.IsTerminal() {
			o.disposeAll(ctx, events[i:])
			break
		}
		changed, err := session.Apply(evt)
		if err != nil {
			o.monitor.IncrEventsRejected()
			rejected++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		o.monitor.IncrEventsApplied()
		if changed {
			if err := o.renderer.RenderState(ctx, session); err != nil {
				o.log.Warn("Unable to render state", "session", session.ID, "error", err)
			}
		}
	}

	if session.IsTerminal() {
		removed = true
		o.finalize(ctx, session)
	}
	if firstErr != nil {
		return fmt.Errorf("%d event(s) rejected by session %s: %w", rejected, session.ID, firstErr)
	}
	return nil
}

func (o *Orchestrator) takeEvents(id domain.SessionID) []domain.InboundEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	events, ok := o.buffers[id]
	if !ok {
		return nil
	}
	o.buffers[id] = nil
	return events
}

func (o *Orchestrator) finalize(ctx context.Context, session *domain.Session) {
	if err := o.renderer.RenderFinal(ctx, session); err != nil {
		o.log.Warn("Unable to render final state", "session", session.ID, "error", err)
	}
	o.record(session)
	o.detach(ctx, session.ID)
	o.monitor.IncrSessionsFinished()
	o.log.Debug("Session finished", "session", session.ID)
}

// cancel closes a session the caller holds, or one that was never registered.
func (o *Orchestrator) cancel(ctx context.Context, session *domain.Session, cause domain.Cause) {
	session.Cancel(cause)
	if err := o.renderer.RenderCancelled(ctx, session, cause); err != nil {
		o.log.Warn("Unable to render cancellation", "session", session.ID, "error", err)
	}
	o.record(session)
	o.detach(ctx, session.ID)
	o.monitor.IncrSessionsCancelled()
	o.log.Debug("Session cancelled", "session", session.ID, "cause", cause)
}

// detach removes the buffer first so new events are routed as stale,
// then removes the session from the registry.
func (o *Orchestrator) detach(ctx context.Context, id domain.SessionID) {
	o.mu.Lock()
	leftovers := o.buffers[id]
	delete(o.buffers, id)
	o.mu.Unlock()

	o.registry.Release(id, true)
	o.disposeAll(ctx, leftovers)
}

func (o *Orchestrator) record(session *domain.Session) {
	if o.results == nil {
		return
	}
	if err := o.results.Store(session.Record(o.now())); err != nil {
		o.log.Error("Unable to store session record", "session", session.ID, "error", err)
	}
}

func (o *Orchestrator) dispose(ctx context.Context, evt domain.InboundEvent) {
	o.monitor.IncrStaleEvents()
	if err := o.renderer.DisposeStaleArtifact(ctx, evt); err != nil {
		o.log.Warn("Unable to dispose stale artifact", "session", evt.SessionID, "error", err)
	}
}

func (o *Orchestrator) disposeAll(ctx context.Context, events []domain.InboundEvent) {
	for _, evt := range events {
		o.dispose(ctx, evt)
	}
}
