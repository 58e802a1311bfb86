package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

type Outcome int8

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Outcome(%d)", int8(o))
	}
}

// Game is a single play session. It owns the player's grid and the outcome
// and is the only thing that changes them. A Game is not safe for
// concurrent use.
type Game struct {
	params    GameParams
	board     *Board
	grid      *Grid
	outcome   Outcome
	detonated Cell
	rnd       *rand.Rand
}

// NewRand returns a generator seeded from the runtime's hash seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// New generates a fresh board for params. A nil r is replaced with
// [NewRand].
func New(params GameParams, r *rand.Rand) (*Game, error) {
	if r == nil {
		r = NewRand()
	}
	board, err := Generate(params, r)
	if err != nil {
		return nil, err
	}
	g := &Game{params: params, rnd: r}
	g.reset(board)
	return g, nil
}

// NewWithBoard starts a game on a prepared board. Restarts generate random
// boards with the same dimensions and mine count.
func NewWithBoard(board *Board, r *rand.Rand) *Game {
	if r == nil {
		r = NewRand()
	}
	g := &Game{params: board.Params(), rnd: r}
	g.reset(board)
	return g
}

func (g *Game) reset(board *Board) {
	g.board = board
	g.grid = NewGrid(board)
	g.outcome = Playing
	g.detonated = Cell{}
}

func (g *Game) Params() GameParams { return g.params }
func (g *Game) Board() *Board      { return g.board }
func (g *Game) Outcome() Outcome   { return g.outcome }

// Grid returns a copy of the player's grid. Setting cells on it does not
// affect the game.
func (g *Game) Grid() *Grid {
	return g.grid.clone()
}

// Detonated returns the mine that lost the game.
func (g *Game) Detonated() (Cell, bool) {
	return g.detonated, g.outcome == Lost
}

// PrimaryClick reveals a hidden cell or chords a satisfied revealed one.
func (g *Game) PrimaryClick(c Cell) error {
	if err := g.board.checkBounds(c); err != nil {
		return err
	}
	if g.outcome != Playing {
		return nil
	}
	g.revealOrChord(c)
	return nil
}

// SecondaryClick toggles a flag. Revealed cells are left alone. Only
// placing a flag can win the game.
func (g *Game) SecondaryClick(c Cell) error {
	if err := g.board.checkBounds(c); err != nil {
		return err
	}
	if g.outcome != Playing {
		return nil
	}

	switch g.grid.state(c) {
	case Hidden:
		g.grid.set(c, Flagged)
		if g.flagsMatchMines() {
			g.outcome = Won
			Log.WithField("params", g.params.String()).Info("game won")
		}
	case Flagged:
		g.grid.set(c, Hidden)
	}
	return nil
}

// Restart deals a new board with the current params.
func (g *Game) Restart() error {
	return g.RestartWith(g.params)
}

func (g *Game) RestartWith(params GameParams) error {
	board, err := Generate(params, g.rnd)
	if err != nil {
		return err
	}
	g.params = params
	g.reset(board)
	Log.WithField("params", params.String()).Debug("game restarted")
	return nil
}

// flagsMatchMines reports whether the flagged cells are exactly the mines.
// A board without mines has nothing to flag and is never won this way.
func (g *Game) flagsMatchMines() bool {
	flags := 0
	for i, mine := range g.board.mines {
		flagged := g.grid.states[i] == Flagged
		if mine != flagged {
			return false
		}
		flags += iif(flagged, 1, 0)
	}
	return flags > 0
}

// triggerLoss ends the game on c. Only the first call while playing takes
// effect. Unflagged mines are shown; flags stay as they are.
func (g *Game) triggerLoss(c Cell) {
	if g.outcome != Playing {
		return
	}
	g.outcome = Lost
	g.detonated = c
	for i, mine := range g.board.mines {
		if mine && g.grid.states[i] != Flagged {
			g.grid.states[i] = Mined
		}
	}
	Log.WithFields(logrus.Fields{
		"params":    g.params.String(),
		"detonated": c.String(),
	}).Info("game lost")
}
