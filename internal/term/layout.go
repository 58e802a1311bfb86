package term

import "github.com/vancomm/eelmines/internal/mines"

const (
	CellWidth  = 3
	CellHeight = 1
)

// Layout places a board on the screen. Every tile is CellWidth x
// CellHeight screen cells, the top-left tile starts at (X, Y).
type Layout struct {
	X, Y          int
	Width, Height int // in tiles
}

func newLayout(b *mines.Board) Layout {
	return Layout{X: 1, Y: 1, Width: b.Width, Height: b.Height}
}

// CellAt maps a screen position to the tile under it.
func (l Layout) CellAt(px, py int) (mines.Cell, bool) {
	dx, dy := px-l.X, py-l.Y
	if dx < 0 || dy < 0 {
		return mines.Cell{}, false
	}
	c := mines.Cell{X: dx / CellWidth, Y: dy / CellHeight}
	if c.X >= l.Width || c.Y >= l.Height {
		return mines.Cell{}, false
	}
	return c, true
}

// Origin is the top-left screen position of c.
func (l Layout) Origin(c mines.Cell) (x, y int) {
	return l.X + c.X*CellWidth, l.Y + c.Y*CellHeight
}

// StatusLine is the screen row below the board.
func (l Layout) StatusLine() int {
	return l.Y + l.Height*CellHeight + 1
}
