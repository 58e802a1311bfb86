package mines

// CellView is what a renderer needs to draw one tile.
type CellView struct {
	Cell           Cell
	AdjacencyCount int
	State          CellState
	Satisfied      bool
	Detonated      bool
}

// Snapshot is a copy of the game taken for drawing. Changing it does not
// affect the game.
type Snapshot struct {
	Width, Height int
	MineCount     int
	Outcome       Outcome
	Detonated     *Cell
	Cells         []CellView // row-major
}

// At returns the view of c, or false for cells outside of the board.
func (s Snapshot) At(c Cell) (CellView, bool) {
	if c.X < 0 || c.X >= s.Width || c.Y < 0 || c.Y >= s.Height {
		return CellView{}, false
	}
	return s.Cells[c.Y*s.Width+c.X], true
}

// FlagsLeft is the requested mine count minus placed flags. It goes
// negative when the player over-flags.
func (s Snapshot) FlagsLeft() int {
	n := s.MineCount
	for _, v := range s.Cells {
		if v.State == Flagged {
			n--
		}
	}
	return n
}

func (g *Game) RenderState() Snapshot {
	b := g.board
	snap := Snapshot{
		Width:     b.Width,
		Height:    b.Height,
		MineCount: b.MineCount,
		Outcome:   g.outcome,
		Cells:     make([]CellView, 0, b.Width*b.Height),
	}
	detonated, lost := g.Detonated()
	if lost {
		snap.Detonated = &detonated
	}
	for y := range b.Height {
		for x := range b.Width {
			c := Cell{x, y}
			snap.Cells = append(snap.Cells, CellView{
				Cell:           c,
				AdjacencyCount: b.AdjacencyCount(c),
				State:          g.grid.state(c),
				Satisfied:      g.grid.IsSatisfied(c),
				Detonated:      lost && c == detonated,
			})
		}
	}
	return snap
}
