package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Cell struct {
	X, Y int
}

// [Cell] implements [fmt.Stringer]
func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.X, c.Y)
}

// Board is the immutable part of a game: where the mines are and how many
// of them touch every cell. Both slices are indexed y*Width+x.
type Board struct {
	Width, Height int
	MineCount     int // requested, see [Board.Mines] for the actual number

	mines     []bool
	adjacency []int
}

func newBoard(width, height, mineCount int, layout []bool) *Board {
	b := &Board{
		Width:     width,
		Height:    height,
		MineCount: mineCount,
		mines:     layout,
		adjacency: make([]int, len(layout)),
	}
	for y := range height {
		for x := range width {
			c := 0
			neighbors(width, height, x, y, func(xx, yy int) {
				if layout[yy*width+xx] {
					c++
				}
			})
			b.adjacency[y*width+x] = c
		}
	}
	return b
}

// NewBoard builds a board from an explicit row-major layout. MineCount is
// set to the number of mines in the layout, and at least one cell must be
// safe.
func NewBoard(width, height int, layout []bool) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, invalidConfiguration(
			"dimensions must be positive, got %dx%d", width, height,
		)
	}
	if len(layout) != width*height {
		return nil, invalidConfiguration(
			"layout has %d cells, want %d", len(layout), width*height,
		)
	}
	mineCount := 0
	for _, m := range layout {
		if m {
			mineCount++
		}
	}
	params := GameParams{Width: width, Height: height, MineCount: mineCount}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return newBoard(width, height, mineCount, append([]bool(nil), layout...)), nil
}

// ParseBoard reads a layout drawn as rows of '*' (mine) and '.' (safe).
// Blank lines and surrounding spaces are ignored.
func ParseBoard(s string) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, invalidConfiguration("empty layout")
	}
	width := len(rows[0])
	layout := make([]bool, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, invalidConfiguration(
				"row %d has %d cells, want %d", y, len(row), width,
			)
		}
		for x, c := range row {
			switch c {
			case '*':
				layout = append(layout, true)
			case '.':
				layout = append(layout, false)
			default:
				return nil, invalidConfiguration("unexpected %q at %d:%d", c, x, y)
			}
		}
	}
	return NewBoard(width, len(rows), layout)
}

func (b *Board) Params() GameParams {
	return GameParams{Width: b.Width, Height: b.Height, MineCount: b.MineCount}
}

func (b *Board) InBounds(c Cell) bool {
	return 0 <= c.X && c.X < b.Width && 0 <= c.Y && c.Y < b.Height
}

func (b *Board) index(c Cell) int {
	return c.Y*b.Width + c.X
}

func (b *Board) checkBounds(c Cell) error {
	if !b.InBounds(c) {
		return OutOfBoundsError{Cell: c, Width: b.Width, Height: b.Height}
	}
	return nil
}

// IsMine reports false for cells outside of the board.
func (b *Board) IsMine(c Cell) bool {
	return b.InBounds(c) && b.mines[b.index(c)]
}

// AdjacencyCount returns the number of mines around c, or -1 outside of the
// board.
func (b *Board) AdjacencyCount(c Cell) int {
	if !b.InBounds(c) {
		return -1
	}
	return b.adjacency[b.index(c)]
}

// Mines returns the number of mines actually placed.
func (b *Board) Mines() int {
	n := 0
	for _, m := range b.mines {
		if m {
			n++
		}
	}
	return n
}

func (b *Board) Neighbors(c Cell) []Cell {
	res := make([]Cell, 0, 8)
	neighbors(b.Width, b.Height, c.X, c.Y, func(x, y int) {
		res = append(res, Cell{x, y})
	})
	return res
}

// String draws mines as '*' and safe cells as their adjacency count.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.Height {
		for x := range b.Width {
			i := y*b.Width + x
			sb.WriteString(iif(b.mines[i], "*", strconv.Itoa(b.adjacency[i])))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
