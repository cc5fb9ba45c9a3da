package game

import (
	"fmt"
	"game-hub/domain"
	"game-hub/errors"
	"time"
)

var _ domain.SessionLogic = (*Halma)(nil)

const (
	halmaSize = 8
	noColor   = -1
)

type halmaSquare struct {
	color    int
	selected bool
}

func (s halmaSquare) empty() bool {
	return s.color == noColor
}

// Halma is the two seats territory race. Seat 0 starts in the bottom right
// corner, seat 1 in the top left one, and each must fill the opposite corner.
// Coordinates received and rendered are relative to the seat: seat 1 sees the
// board rotated by half a turn.
type Halma struct {
	board    [halmaSize][halmaSize]halmaSquare
	turn     int
	selected *position
	visited  map[position]struct{}
	moves    int
	ended    bool
	results  []domain.Result
	deadline time.Time
}

func NewHalma(deadline time.Time) *Halma {
	h := &Halma{visited: make(map[position]struct{}), deadline: deadline}
	for i := 0; i < halmaSize; i++ {
		for j := 0; j < halmaSize; j++ {
			h.board[i][j] = halmaSquare{color: noColor}
			if i+j < 4 {
				h.board[i][j].color = 1
			}
			if i+j > 10 {
				h.board[i][j].color = 0
			}
		}
	}
	return h
}

func (h *Halma) Turn() int {
	return h.turn
}

func (h *Halma) Moves() int {
	return h.moves
}

func (h *Halma) ApplyEvent(seat int, payload domain.Payload) (bool, error) {
	if seat != 0 && seat != 1 {
		return false, fmt.Errorf("%w: seat %d", errors.ErrUnknownSeat, seat)
	}
	switch payload.Action {
	case domain.ActionEndTurn:
		return h.endTurn(seat), nil
	case domain.ActionClick:
		if !inHalmaBounds(payload.Row, payload.Column) {
			return false, fmt.Errorf("%w: square (%d,%d)", errors.ErrInvalidMove, payload.Row, payload.Column)
		}
		return h.click(seat, absolute(seat, position{payload.Row, payload.Column})), nil
	default:
		return false, fmt.Errorf("%w: action %q", errors.ErrInvalidMove, payload.Action)
	}
}

func inHalmaBounds(row, column int) bool {
	return row >= 0 && row < halmaSize && column >= 0 && column < halmaSize
}

func absolute(seat int, p position) position {
	if seat == 1 {
		return position{halmaSize - 1 - p.row, halmaSize - 1 - p.column}
	}
	return p
}

func (h *Halma) square(p position) *halmaSquare {
	return &h.board[p.row][p.column]
}

func (h *Halma) pieceMoved() bool {
	return len(h.visited) > 1
}

// CanEndTurn is true once the seat moved a piece during its turn.
func (h *Halma) CanEndTurn(seat int) bool {
	return !h.ended && seat == h.turn && h.pieceMoved()
}

func (h *Halma) endTurn(seat int) bool {
	if !h.CanEndTurn(seat) {
		return false
	}
	h.changeTurn()
	return true
}

func (h *Halma) click(seat int, p position) bool {
	if h.ended || seat != h.turn {
		return false
	}
	if h.pieceMoved() {
		return h.movePiece(p)
	}
	if h.movePiece(p) {
		return true
	}
	changed := false
	if h.selected != nil {
		if *h.selected == p {
			return false
		}
		h.square(*h.selected).selected = false
		h.selected = nil
		changed = true
	}
	if sq := h.square(p); sq.color == seat && !sq.selected {
		sq.selected = true
		h.selected = &p
		clear(h.visited)
		h.visited[p] = struct{}{}
		changed = true
	}
	return changed
}

func isStep(d int) bool {
	return d >= -1 && d <= 1
}

func isJump(d int) bool {
	return d == -2 || d == 0 || d == 2
}

func (h *Halma) canMoveTo(p position) bool {
	if h.selected == nil || !inHalmaBounds(p.row, p.column) {
		return false
	}
	from := *h.selected
	if from == p {
		return false
	}
	if _, ok := h.visited[p]; ok {
		return false
	}
	di, dj := p.row-from.row, p.column-from.column
	if isStep(di) && isStep(dj) {
		return h.square(p).empty() && !h.pieceMoved()
	}
	if isJump(di) && isJump(dj) {
		over := position{(p.row + from.row) / 2, (p.column + from.column) / 2}
		return h.square(p).empty() && !h.square(over).empty()
	}
	return false
}

// movePiece moves the selected piece. A step ends the turn, a jump ends it
// only when no further jump is possible.
func (h *Halma) movePiece(p position) bool {
	if !h.canMoveTo(p) {
		return false
	}
	from := *h.selected
	*h.square(p) = *h.square(from)
	*h.square(from) = halmaSquare{color: noColor}
	h.visited[p] = struct{}{}
	h.selected = &p

	canJumpAgain := false
	if isJump(p.row-from.row) && isJump(p.column-from.column) {
		for _, a := range []int{-2, 0, 2} {
			for _, b := range []int{-2, 0, 2} {
				if a == 0 && b == 0 {
					continue
				}
				if h.canMoveTo(position{p.row + a, p.column + b}) {
					canJumpAgain = true
				}
			}
		}
	}
	if !canJumpAgain {
		h.changeTurn()
	}
	return true
}

func (h *Halma) changeTurn() {
	if h.turn == 1 {
		h.moves++
	}
	h.checkEnded()
	if h.selected != nil {
		h.square(*h.selected).selected = false
	}
	h.selected = nil
	clear(h.visited)
	h.turn ^= 1
}

func (h *Halma) checkEnded() {
	firstWon, secondWon := true, true
	for i := 0; i < halmaSize; i++ {
		for j := 0; j < halmaSize; j++ {
			if i+j < 4 && h.board[i][j].color != 0 {
				firstWon = false
			}
			if i+j > 10 && h.board[i][j].color != 1 {
				secondWon = false
			}
		}
	}
	switch {
	case firstWon:
		h.end(0)
	case secondWon:
		h.end(1)
	}
}

func (h *Halma) end(winner int) {
	h.ended = true
	h.results = make([]domain.Result, 0, 2)
	for seat := 0; seat < 2; seat++ {
		status := domain.StatusDefeat
		if seat == winner {
			status = domain.StatusWin
		}
		h.results = append(h.results, domain.Result{Seat: seat, Status: status, Moves: h.moves})
	}
}

func (h *Halma) IsTerminal() bool {
	return h.ended
}

func (h *Halma) Results() []domain.Result {
	return h.results
}

func (h *Halma) Deadline() time.Time {
	return h.deadline
}

// View renders own pieces as "o" ("O" when selected) and opponent pieces as "x" ("X").
func (h *Halma) View(seat int) domain.View {
	cells := make([][]string, halmaSize)
	for r := 0; r < halmaSize; r++ {
		cells[r] = make([]string, halmaSize)
		for c := 0; c < halmaSize; c++ {
			sq := *h.square(absolute(seat, position{r, c}))
			switch {
			case sq.empty():
				cells[r][c] = "."
			case sq.color == seat && sq.selected:
				cells[r][c] = "O"
			case sq.color == seat:
				cells[r][c] = "o"
			case sq.selected:
				cells[r][c] = "X"
			default:
				cells[r][c] = "x"
			}
		}
	}
	status := "opponent's turn"
	switch {
	case h.ended:
		status = "game over"
	case h.CanEndTurn(seat):
		status = "your turn, you may end it"
	case h.turn == seat:
		status = "your turn"
	}
	return domain.View{Title: "Halma", Status: status, Cells: cells}
}
