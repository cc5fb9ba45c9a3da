package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrTaskPanic   = fmt.Errorf("task panic")

	ErrAlreadyStarted         = fmt.Errorf("orchestrator already started")
	ErrNotStarted             = fmt.Errorf("orchestrator not started")
	ErrAlreadyStopped         = fmt.Errorf("orchestrator already stopped")
	ErrOrchestratorTerminated = fmt.Errorf("orchestrator terminated, it cannot be restarted")
	ErrExecutorBusy           = fmt.Errorf("executor still has tasks in flight")

	ErrUnknownKind   = fmt.Errorf("unknown session kind")
	ErrInvalidCohort = fmt.Errorf("invalid cohort")
	ErrSessionClosed = fmt.Errorf("session is closed")
	ErrUnknownSeat   = fmt.Errorf("actor has no seat in session")
	ErrInvalidMove   = fmt.Errorf("invalid move")
	ErrInvalidBoard  = fmt.Errorf("invalid board settings")

	ErrRecordNotFound = fmt.Errorf("record not found")
	ErrInvalidKey     = fmt.Errorf("participant id can not hold a key separator")
	ErrEmptyWords     = fmt.Errorf("no words have been found")
)
