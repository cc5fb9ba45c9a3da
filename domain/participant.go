// Package domain contains core concepts of the game hub.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

type ParticipantID string

// MemorySettings is the board a participant asks for when joining a memory session.
type MemorySettings struct {
	Rows    int `validate:"min=1,max=8"`
	Columns int `validate:"min=2,max=8"`
	Variety int `validate:"min=1,max=32"`
}

func DefaultMemorySettings() MemorySettings {
	return MemorySettings{Rows: 3, Columns: 4, Variety: 6}
}

// Cards returns the number of cards on the requested board.
func (m MemorySettings) Cards() int {
	return m.Rows * m.Columns
}

// Participant is immutable for the duration of matchmaking.
type Participant struct {
	ID     ParticipantID `validate:"required,excludes=:"`
	Name   string
	Lang   string `validate:"omitempty,bcp47_language_tag"`
	Memory MemorySettings
}

func NewParticipant(id ParticipantID, name string) Participant {
	return Participant{
		ID:     id,
		Name:   name,
		Lang:   "en",
		Memory: DefaultMemorySettings(),
	}
}

// DisplayName falls back on the identity when no name was given.
func (p Participant) DisplayName() string {
	if p.Name == "" {
		return string(p.ID)
	}
	return p.Name
}
