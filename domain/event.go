package domain

import "time"

type Action string

const (
	ActionSelect  Action = "select"
	ActionClick   Action = "click"
	ActionEndTurn Action = "end-turn"
)

type Payload struct {
	Action Action
	Row    int
	Column int
}

// InboundEvent is produced by the transport and consumed exactly once by the
// buffer of its target session.
type InboundEvent struct {
	SessionID SessionID
	Actor     ParticipantID
	Handle    string
	Payload   Payload
	At        time.Time
}

func NewInboundEvent(sessionID SessionID, actor ParticipantID, handle string, payload Payload) InboundEvent {
	return InboundEvent{
		SessionID: sessionID,
		Actor:     actor,
		Handle:    handle,
		Payload:   payload,
		At:        time.Now().UTC(),
	}
}
