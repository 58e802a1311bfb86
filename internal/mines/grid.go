package mines

import (
	"fmt"
	"strings"
)

type CellState int8

const (
	Hidden CellState = iota
	Revealed
	Flagged
	Mined // revealed as a mine, only after a loss
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	case Mined:
		return "mined"
	default:
		return fmt.Sprintf("CellState(%d)", int8(s))
	}
}

// Grid is the player's view of a board, one state per cell.
type Grid struct {
	board  *Board
	states []CellState
}

func NewGrid(board *Board) *Grid {
	return &Grid{
		board:  board,
		states: repeat(Hidden, board.Width*board.Height),
	}
}

func (g *Grid) clone() *Grid {
	return &Grid{
		board:  g.board,
		states: append([]CellState(nil), g.states...),
	}
}

// Get returns Hidden and false for cells outside of the board.
func (g *Grid) Get(c Cell) (CellState, bool) {
	if !g.board.InBounds(c) {
		return Hidden, false
	}
	return g.states[g.board.index(c)], true
}

func (g *Grid) Set(c Cell, s CellState) error {
	if err := g.board.checkBounds(c); err != nil {
		return err
	}
	g.states[g.board.index(c)] = s
	return nil
}

func (g *Grid) state(c Cell) CellState {
	return g.states[g.board.index(c)]
}

func (g *Grid) set(c Cell, s CellState) {
	g.states[g.board.index(c)] = s
}

// FlaggedNeighbors counts flags around c.
func (g *Grid) FlaggedNeighbors(c Cell) int {
	n := 0
	neighbors(g.board.Width, g.board.Height, c.X, c.Y, func(x, y int) {
		if g.states[y*g.board.Width+x] == Flagged {
			n++
		}
	})
	return n
}

// IsSatisfied reports whether the flags around c account for every mine
// around it. Cells with no adjacent mines and no adjacent flags are
// trivially satisfied.
func (g *Grid) IsSatisfied(c Cell) bool {
	if !g.board.InBounds(c) {
		return false
	}
	return g.board.AdjacencyCount(c) == g.FlaggedNeighbors(c)
}

func (g *Grid) Count(s CellState) int {
	n := 0
	for _, st := range g.states {
		if st == s {
			n++
		}
	}
	return n
}

// String draws the grid the way a player sees it: '#' hidden, 'F' flag,
// '*' mine, digits for revealed cells.
func (g *Grid) String() string {
	var b strings.Builder
	w := g.board.Width
	for y := range g.board.Height {
		for x := range w {
			i := y*w + x
			switch g.states[i] {
			case Hidden:
				b.WriteByte('#')
			case Flagged:
				b.WriteByte('F')
			case Mined:
				b.WriteByte('*')
			case Revealed:
				fmt.Fprint(&b, g.board.adjacency[i])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
