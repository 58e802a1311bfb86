package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

// [GameParams] implements [fmt.Stringer]
func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

func (p GameParams) Size() int {
	return p.Width * p.Height
}

func (p GameParams) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return invalidConfiguration(
			"dimensions must be positive, got %dx%d", p.Width, p.Height,
		)
	}
	if p.MineCount < 0 || p.MineCount >= p.Size() {
		return invalidConfiguration(
			"mine count must be in [0, %d), got %d", p.Size(), p.MineCount,
		)
	}
	return nil
}

func (p GameParams) ValidatePosition(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

// Generate lays out mines by an independent draw per cell with probability
// MineCount/(Width*Height). The resulting number of mines matches MineCount
// only on average.
func Generate(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	width, height, mineCount := params.Unpack()
	ratio := float64(mineCount) / float64(width*height)

	layout := make([]bool, width*height)
	for i := range layout {
		layout[i] = r.Float64() < ratio
	}

	board := newBoard(width, height, mineCount, layout)
	Log.WithFields(logrus.Fields{
		"params": params.String(),
		"mines":  board.Mines(),
	}).Debug("generated board")

	return board, nil
}
