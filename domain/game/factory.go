package game

import (
	"fmt"
	"game-hub/domain"
	"game-hub/errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Factory builds the logic of every known session kind.
// It is safe for concurrent use.
type Factory struct {
	mu        sync.Mutex
	rnd       *rand.Rand
	validator *validator.Validate
}

func NewFactory(seed uint64) *Factory {
	return &Factory{
		rnd:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		validator: validator.New(),
	}
}

func (f *Factory) New(spec domain.KindSpec, cohort []domain.WaitlistEntry, deadline time.Time) (domain.SessionLogic, error) {
	if len(cohort) != spec.CohortSize {
		return nil, fmt.Errorf("%w: %d entries for a %s cohort of %d",
			errors.ErrInvalidCohort, len(cohort), spec.Kind, spec.CohortSize)
	}
	switch spec.Kind {
	case domain.KindMemory:
		settings := cohort[0].Participant.Memory
		if err := f.validator.Struct(settings); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrInvalidBoard, err)
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		return NewMemory(settings, f.rnd, deadline)
	case domain.KindHalma:
		return NewHalma(deadline), nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownKind, spec.Kind)
	}
}
