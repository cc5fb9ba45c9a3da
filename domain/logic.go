//go:generate go run go.uber.org/mock/mockgen -source=logic.go -destination=../mocks/mock_logic.go -package=mocks
package domain

import "time"

// SessionLogic is the pluggable rule engine of one kind of session.
// Implementations are not safe for concurrent use; the engine guarantees a
// single caller at a time.
type SessionLogic interface {
	// ApplyEvent returns true when the state changed and must be rendered again.
	ApplyEvent(seat int, payload Payload) (bool, error)
	IsTerminal() bool
	Results() []Result
	Deadline() time.Time
	View(seat int) View
}

// View is what a transport needs to draw the state of a session for one seat.
type View struct {
	Title  string
	Status string
	Cells  [][]string
}
