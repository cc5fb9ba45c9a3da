package domain

import (
	"fmt"
	"game-hub/errors"
	"strings"
	"time"
)

type SessionKind string

const (
	KindMemory SessionKind = "memory"
	KindHalma  SessionKind = "halma"
)

// defaultTTL matches the one year limit sessions had when no duration was given.
const defaultTTL = 365 * 24 * time.Hour

// KindSpec carries everything the engine needs to know about a kind of session.
// MatchByHandle makes two waiting entries equivalent when they come from the
// same conversation handle rather than from the same participant.
type KindSpec struct {
	Kind          SessionKind   `validate:"required"`
	CohortSize    int           `validate:"min=1"`
	TTL           time.Duration `validate:"gt=0"`
	MatchByHandle bool
}

func DefaultKindSpecs() []KindSpec {
	return []KindSpec{
		{Kind: KindMemory, CohortSize: 1, TTL: defaultTTL},
		{Kind: KindHalma, CohortSize: 2, TTL: defaultTTL, MatchByHandle: true},
	}
}

// ParseKind accepts keys such as "memory", "HALMA" or "memory_game" style variants.
func ParseKind(key string) (SessionKind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "-")
	normalized = strings.TrimSuffix(normalized, "-game")
	switch SessionKind(normalized) {
	case KindMemory:
		return KindMemory, nil
	case KindHalma:
		return KindHalma, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownKind, key)
	}
}

func (k SessionKind) String() string {
	return string(k)
}
