// Package simulation plays participants against the engine: it joins them,
// plays random moves in their sessions and joins them again once a session closed.
package simulation

import (
	"context"
	"fmt"
	"game-hub/contract"
	"game-hub/domain"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/samber/lo"
)

type Config struct {
	Participants int           `envconfig:"SIM_PARTICIPANTS" default:"6"`
	Duration     time.Duration `envconfig:"SIM_DURATION" default:"30s"`
	MoveInterval time.Duration `envconfig:"SIM_MOVE_INTERVAL" default:"50ms"`
	// SIM_COLOURS enables colorized output on the console transport
	Colours bool `envconfig:"SIM_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// table is what a bot remembers of a session it sits at.
type table struct {
	id           domain.SessionID
	kind         domain.SessionKind
	participants []domain.Participant
}

// Simulator decorates a renderer to learn which sessions its bots sit at.
type Simulator struct {
	contract.Renderer
	log          *slog.Logger
	config       Config
	orchestrator contract.IOrchestrator

	mu     sync.Mutex
	rnd    *rand.Rand
	tables map[domain.SessionID]table
	idle   []domain.Participant
	kinds  map[domain.ParticipantID]domain.SessionKind
}

func NewSimulator(log *slog.Logger, config Config, renderer contract.Renderer, seed uint64) *Simulator {
	idle := lo.Times(config.Participants, func(i int) domain.Participant {
		return domain.NewParticipant(domain.ParticipantID(fmt.Sprintf("bot-%02d", i)), fmt.Sprintf("Bot %d", i))
	})
	// Bots are spread evenly over the kinds
	kinds := make(map[domain.ParticipantID]domain.SessionKind, len(idle))
	for i, participant := range idle {
		kinds[participant.ID] = lo.Ternary(i%2 == 0, domain.KindMemory, domain.KindHalma)
	}
	return &Simulator{
		Renderer: renderer,
		log:      log,
		config:   config,
		rnd:      rand.New(rand.NewPCG(seed, seed+1)),
		tables:   make(map[domain.SessionID]table),
		idle:     idle,
		kinds:    kinds,
	}
}

// Bind gives the simulator the engine it plays against.
func (s *Simulator) Bind(orchestrator contract.IOrchestrator) {
	s.orchestrator = orchestrator
}

func (s *Simulator) Run(ctx context.Context) error {
	if s.orchestrator == nil {
		return fmt.Errorf("simulator is not bound to an orchestrator")
	}
	ticker := time.NewTicker(s.config.MoveInterval)
	defer ticker.Stop()
	for {
		s.tick(ctx)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Simulator) tick(ctx context.Context) {
	for _, participant := range s.takeIdle() {
		entry := domain.NewWaitlistEntry(s.kinds[participant.ID], participant, "chat-"+string(participant.ID))
		if !s.orchestrator.SubmitJoin(ctx, entry) {
			s.log.Debug("Join refused", "participant", participant.ID)
		}
	}
	for _, evt := range s.moves() {
		s.orchestrator.SubmitEvent(ctx, evt)
	}
}

func (s *Simulator) takeIdle() []domain.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	idle := s.idle
	s.idle = nil
	return idle
}

// moves draws one random move per table, from a random seat.
func (s *Simulator) moves() []domain.InboundEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := make([]domain.InboundEvent, 0, len(s.tables))
	for _, t := range s.tables {
		seat := s.rnd.IntN(len(t.participants))
		participant := t.participants[seat]
		var payload domain.Payload
		switch t.kind {
		case domain.KindMemory:
			payload = domain.Payload{
				Action: domain.ActionSelect,
				Row:    s.rnd.IntN(participant.Memory.Rows),
				Column: s.rnd.IntN(participant.Memory.Columns),
			}
		default:
			payload = domain.Payload{Action: domain.ActionClick, Row: s.rnd.IntN(8), Column: s.rnd.IntN(8)}
			if s.rnd.IntN(10) == 0 {
				payload = domain.Payload{Action: domain.ActionEndTurn}
			}
		}
		events = append(events, domain.NewInboundEvent(t.id, participant.ID, "", payload))
	}
	return events
}

func (s *Simulator) AnnounceCohortFormed(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	s.tables[session.ID] = table{
		id:           session.ID,
		kind:         session.Kind,
		participants: append([]domain.Participant(nil), session.Participants...),
	}
	s.mu.Unlock()
	return s.Renderer.AnnounceCohortFormed(ctx, session)
}

func (s *Simulator) RenderFinal(ctx context.Context, session *domain.Session) error {
	s.leave(session.ID)
	return s.Renderer.RenderFinal(ctx, session)
}

func (s *Simulator) RenderCancelled(ctx context.Context, session *domain.Session, cause domain.Cause) error {
	s.leave(session.ID)
	return s.Renderer.RenderCancelled(ctx, session, cause)
}

// leave frees the bots of a closed session so they join again.
func (s *Simulator) leave(id domain.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[id]
	if !ok {
		return
	}
	delete(s.tables, id)
	s.idle = append(s.idle, t.participants...)
}

func (s *Simulator) Tables() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tables)
}
