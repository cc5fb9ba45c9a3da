//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"game-hub/domain"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Task is one unit of work handed to an executor.
type Task func(ctx context.Context) error

type IExecutor interface {
	Submit(ctx context.Context, tag string, task Task) bool
	IsBusy() bool
	IsOverloaded() bool
	InFlight() int
	Pause()
	Resume()
}

// Renderer is the transport collaborator. Session calls are made while the
// session's registry slot is held or before it is registered, so
// implementations may read and set session state. No seat means every seat.
type Renderer interface {
	RenderState(ctx context.Context, session *domain.Session, seats ...int) error
	RenderFinal(ctx context.Context, session *domain.Session) error
	RenderCancelled(ctx context.Context, session *domain.Session, cause domain.Cause) error
	DisposeStaleArtifact(ctx context.Context, evt domain.InboundEvent) error
	AnnounceCohortFormed(ctx context.Context, session *domain.Session) error
	AnnounceCohortNotFound(ctx context.Context, entry domain.WaitlistEntry) error
	AnnounceWithdrawn(ctx context.Context, entry domain.WaitlistEntry) error
}

// NameCensor masks forbidden words and returns the ones it found.
type NameCensor interface {
	Censor(text string) (string, []string)
}

type LogicFactory interface {
	New(spec domain.KindSpec, cohort []domain.WaitlistEntry, deadline time.Time) (domain.SessionLogic, error)
}

type IRegistry interface {
	Add(session *domain.Session) bool
	IDs() []domain.SessionID
	Count() int
	Contains(id domain.SessionID) bool
	Acquire(ctx context.Context, id domain.SessionID) *domain.Session
	TryAcquire(id domain.SessionID) *domain.Session
	Release(id domain.SessionID, remove bool)
}

type IWaitlist interface {
	Join(entry domain.WaitlistEntry) (bool, error)
	Withdraw(entry domain.WaitlistEntry) bool
	PopFormedCohort(kind domain.SessionKind) ([]domain.WaitlistEntry, bool)
	Snapshot() []domain.WaitlistEntry
	Clear()
	Spec(kind domain.SessionKind) (domain.KindSpec, bool)
	Kinds() []domain.SessionKind
	Waiting(kind domain.SessionKind) int
}

type IOrchestrator interface {
	Start(ctx context.Context) error
	Stop() error
	SubmitJoin(ctx context.Context, entry domain.WaitlistEntry) bool
	SubmitWithdraw(ctx context.Context, entry domain.WaitlistEntry) bool
	SubmitEvent(ctx context.Context, evt domain.InboundEvent) bool
	ActiveSessionCount() int
}

type ResultRepository interface {
	Store(record domain.SessionRecord) error
	ListByParticipant(id domain.ParticipantID) ([]domain.SessionRecord, error)
}
