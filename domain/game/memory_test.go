package game

import (
	"game-hub/domain"
	"game-hub/errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func selectCard(row, column int) domain.Payload {
	return domain.Payload{Action: domain.ActionSelect, Row: row, Column: column}
}

func TestMemory_Pair_Is_Removed_On_Next_Selection(t *testing.T) {
	req := require.New(t)
	memory, err := NewMemoryFromValues([][]int{{0, 1}, {1, 0}}, time.Now().Add(time.Hour))
	req.NoError(err)

	// When the two "0" cards are revealed
	changed, err := memory.ApplyEvent(0, selectCard(0, 0))
	req.NoError(err)
	req.True(changed)
	changed, err = memory.ApplyEvent(0, selectCard(1, 1))
	req.NoError(err)
	req.True(changed)

	// Then both stay visible until the next move
	view := memory.View(0)
	req.Equal("0", view.Cells[0][0])
	req.Equal("0", view.Cells[1][1])
	req.False(memory.IsTerminal())

	// When the next card is selected
	changed, err = memory.ApplyEvent(0, selectCard(0, 1))
	req.NoError(err)
	req.True(changed)

	// Then the pair is gone
	view = memory.View(0)
	req.Equal(" ", view.Cells[0][0])
	req.Equal(" ", view.Cells[1][1])
	req.Equal("1", view.Cells[0][1])
}

func TestMemory_Mismatch_Is_Hidden_Again(t *testing.T) {
	req := require.New(t)
	memory, err := NewMemoryFromValues([][]int{{0, 1}, {1, 0}}, time.Now().Add(time.Hour))
	req.NoError(err)

	_, _ = memory.ApplyEvent(0, selectCard(0, 0))
	_, _ = memory.ApplyEvent(0, selectCard(0, 1))
	_, _ = memory.ApplyEvent(0, selectCard(1, 0))

	view := memory.View(0)
	req.Equal("?", view.Cells[0][0])
	req.Equal("?", view.Cells[0][1])
	req.Equal("1", view.Cells[1][0])
}

func TestMemory_Selecting_A_Visible_Card_Changes_Nothing(t *testing.T) {
	req := require.New(t)
	memory, err := NewMemoryFromValues([][]int{{0, 0}}, time.Now().Add(time.Hour))
	req.NoError(err)

	changed, err := memory.ApplyEvent(0, selectCard(0, 0))
	req.NoError(err)
	req.True(changed)

	changed, err = memory.ApplyEvent(0, selectCard(0, 0))
	req.NoError(err)
	req.False(changed)
	req.Equal(1, memory.Moves())
}

func TestMemory_Ends_When_Every_Pair_Is_Found(t *testing.T) {
	req := require.New(t)
	memory, err := NewMemoryFromValues([][]int{{0, 1}, {1, 0}}, time.Now().Add(time.Hour))
	req.NoError(err)

	for _, p := range [][2]int{{0, 0}, {1, 1}, {0, 1}, {1, 0}} {
		_, err = memory.ApplyEvent(0, selectCard(p[0], p[1]))
		req.NoError(err)
	}

	req.True(memory.IsTerminal())
	req.Equal([]domain.Result{{Seat: 0, Status: domain.StatusNameless, Moves: 4}}, memory.Results())
}

func TestMemory_Rejects_Invalid_Events(t *testing.T) {
	req := require.New(t)
	memory, err := NewMemoryFromValues([][]int{{0, 0}}, time.Now().Add(time.Hour))
	req.NoError(err)

	_, err = memory.ApplyEvent(0, selectCard(3, 0))
	req.ErrorIs(err, errors.ErrInvalidMove)

	_, err = memory.ApplyEvent(1, selectCard(0, 0))
	req.ErrorIs(err, errors.ErrUnknownSeat)

	_, err = memory.ApplyEvent(0, domain.Payload{Action: domain.ActionEndTurn})
	req.ErrorIs(err, errors.ErrInvalidMove)
}

func TestNewMemory_Deals_Pairs(t *testing.T) {
	req := require.New(t)
	settings := domain.MemorySettings{Rows: 3, Columns: 4, Variety: 6}

	memory, err := NewMemory(settings, rand.New(rand.NewPCG(1, 2)), time.Now())
	req.NoError(err)

	counts := make(map[int]int)
	for _, row := range memory.cards {
		for _, card := range row {
			counts[card.value]++
		}
	}
	req.Len(counts, 6)
	for _, n := range counts {
		req.Equal(2, n)
	}
}

func TestNewMemory_Rejects_Odd_Boards(t *testing.T) {
	req := require.New(t)

	_, err := NewMemory(domain.MemorySettings{Rows: 3, Columns: 3, Variety: 2}, rand.New(rand.NewPCG(1, 2)), time.Now())

	req.ErrorIs(err, errors.ErrInvalidBoard)
}
