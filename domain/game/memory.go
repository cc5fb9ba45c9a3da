// Package game holds the rule engines plugged into sessions.
// Engines only know about seats and payloads, never about transports.
package game

import (
	"fmt"
	"game-hub/domain"
	"game-hub/errors"
	"math/rand/v2"
	"strconv"
	"time"
)

var _ domain.SessionLogic = (*Memory)(nil)

type position struct {
	row, column int
}

type memoryCard struct {
	value   int
	hidden  bool
	removed bool
}

// Memory is the single seat matching pairs game. A revealed pair is removed,
// or hidden back, when the next card is selected.
type Memory struct {
	cards    [][]memoryCard
	selected *position
	toRemove []position
	toHide   []position
	removed  int
	moves    int
	deadline time.Time
}

// NewMemory deals a shuffled board of pairs.
func NewMemory(settings domain.MemorySettings, rnd *rand.Rand, deadline time.Time) (*Memory, error) {
	total := settings.Cards()
	if total == 0 || total%2 != 0 || settings.Variety < 1 {
		return nil, fmt.Errorf("%w: %dx%d with variety %d",
			errors.ErrInvalidBoard, settings.Rows, settings.Columns, settings.Variety)
	}
	deck := make([]int, total)
	for i := range deck {
		deck[i] = (i / 2) % settings.Variety
	}
	rnd.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	values := make([][]int, settings.Rows)
	for r := range values {
		values[r] = deck[r*settings.Columns : (r+1)*settings.Columns]
	}
	return NewMemoryFromValues(values, deadline)
}

// NewMemoryFromValues builds a board with known card values.
func NewMemoryFromValues(values [][]int, deadline time.Time) (*Memory, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: empty board", errors.ErrInvalidBoard)
	}
	cards := make([][]memoryCard, len(values))
	for r, row := range values {
		if len(row) != len(values[0]) {
			return nil, fmt.Errorf("%w: ragged board", errors.ErrInvalidBoard)
		}
		cards[r] = make([]memoryCard, len(row))
		for c, v := range row {
			cards[r][c] = memoryCard{value: v, hidden: true}
		}
	}
	return &Memory{cards: cards, deadline: deadline}, nil
}

func (m *Memory) size() int {
	return len(m.cards) * len(m.cards[0])
}

func (m *Memory) inBounds(row, column int) bool {
	return row >= 0 && row < len(m.cards) && column >= 0 && column < len(m.cards[0])
}

func (m *Memory) ApplyEvent(seat int, payload domain.Payload) (bool, error) {
	if seat != 0 {
		return false, fmt.Errorf("%w: seat %d", errors.ErrUnknownSeat, seat)
	}
	if payload.Action != domain.ActionSelect && payload.Action != "" {
		return false, fmt.Errorf("%w: action %q", errors.ErrInvalidMove, payload.Action)
	}
	if !m.inBounds(payload.Row, payload.Column) {
		return false, fmt.Errorf("%w: card (%d,%d)", errors.ErrInvalidMove, payload.Row, payload.Column)
	}
	return m.selectCard(position{payload.Row, payload.Column}), nil
}

func (m *Memory) selectCard(p position) bool {
	for _, q := range m.toRemove {
		m.cards[q.row][q.column].removed = true
	}
	m.toRemove = m.toRemove[:0]
	for _, q := range m.toHide {
		m.cards[q.row][q.column].hidden = true
	}
	m.toHide = m.toHide[:0]

	card := &m.cards[p.row][p.column]
	if card.removed || !card.hidden {
		return false
	}
	card.hidden = false
	m.moves++

	if m.selected == nil {
		m.selected = &p
		return true
	}
	first := *m.selected
	m.selected = nil
	if m.cards[first.row][first.column].value == card.value {
		m.toRemove = append(m.toRemove, first, p)
		m.removed += 2
	} else {
		m.toHide = append(m.toHide, first, p)
	}
	return true
}

func (m *Memory) IsTerminal() bool {
	return m.removed == m.size()
}

func (m *Memory) Moves() int {
	return m.moves
}

func (m *Memory) Results() []domain.Result {
	if !m.IsTerminal() {
		return nil
	}
	return []domain.Result{{Seat: 0, Status: domain.StatusNameless, Moves: m.moves}}
}

func (m *Memory) Deadline() time.Time {
	return m.deadline
}

// View shows values of face up cards, "?" for hidden ones and blanks for removed pairs.
func (m *Memory) View(int) domain.View {
	cells := make([][]string, len(m.cards))
	for r, row := range m.cards {
		cells[r] = make([]string, len(row))
		for c, card := range row {
			switch {
			case card.removed:
				cells[r][c] = " "
			case card.hidden:
				cells[r][c] = "?"
			default:
				cells[r][c] = strconv.Itoa(card.value)
			}
		}
	}
	return domain.View{
		Title:  "Memory",
		Status: fmt.Sprintf("moves: %d, pairs left: %d", m.moves, (m.size()-m.removed)/2),
		Cells:  cells,
	}
}
