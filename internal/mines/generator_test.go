package mines

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
		valid  bool
	}{
		{"8x8(10)", GameParams{Width: 8, Height: 8, MineCount: 10}, true},
		{"1x1(0)", GameParams{Width: 1, Height: 1, MineCount: 0}, true},
		{"2x2(3)", GameParams{Width: 2, Height: 2, MineCount: 3}, true},
		{"2x2(4)", GameParams{Width: 2, Height: 2, MineCount: 4}, false},
		{"2x2(-1)", GameParams{Width: 2, Height: 2, MineCount: -1}, false},
		{"0x5(0)", GameParams{Width: 0, Height: 5, MineCount: 0}, false},
		{"5x-1(0)", GameParams{Width: 5, Height: -1, MineCount: 0}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.name, test.params.String())
			err := test.params.Validate()
			if test.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfiguration)

			_, err = Generate(test.params, rand.New(rand.NewPCG(1, 2)))
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestGenerateAdjacencyIsDerivedFromLayout(t *testing.T) {
	tests := []GameParams{
		{Width: 9, Height: 9, MineCount: 10},
		{Width: 16, Height: 16, MineCount: 40},
		{Width: 30, Height: 16, MineCount: 99},
		{Width: 30, Height: 16, MineCount: 170},
		{Width: 1, Height: 7, MineCount: 3},
	}

	for _, params := range tests {
		t.Run(params.String(), func(t *testing.T) {
			r := rand.New(rand.NewPCG(1, 2))
			for range 20 {
				b, err := Generate(params, r)
				require.NoError(t, err)
				require.Equal(t, params.Width, b.Width)
				require.Equal(t, params.Height, b.Height)

				sum, expected := 0, 0
				for y := range b.Height {
					for x := range b.Width {
						c := Cell{x, y}
						want := 0
						for _, nb := range b.Neighbors(c) {
							if b.IsMine(nb) {
								want++
							}
						}
						require.Equal(t, want, b.AdjacencyCount(c), "cell %s", c)
						sum += b.AdjacencyCount(c)
						if b.IsMine(c) {
							expected += len(b.Neighbors(c))
						}
					}
				}
				assert.Equal(t, expected, sum)
			}
		})
	}
}

func TestGenerateMineCountIsApproximate(t *testing.T) {
	params := GameParams{Width: 16, Height: 16, MineCount: 40}
	r := rand.New(rand.NewPCG(1, 2))

	const boards = 200
	total := 0
	for range boards {
		b, err := Generate(params, r)
		require.NoError(t, err)
		assert.Equal(t, 40, b.MineCount)
		total += b.Mines()
	}
	assert.InDelta(t, 40, float64(total)/boards, 3)
}

func TestGenerateWithoutMines(t *testing.T) {
	b, err := Generate(GameParams{Width: 5, Height: 4}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	assert.Zero(t, b.Mines())
	for y := range b.Height {
		for x := range b.Width {
			assert.Zero(t, b.AdjacencyCount(Cell{x, y}))
		}
	}
}

func TestNewBoardRejectsBadLayout(t *testing.T) {
	_, err := NewBoard(2, 2, []bool{true})
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))

	_, err = NewBoard(0, 2, nil)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))

	_, err = NewBoard(2, 2, []bool{true, true, true, true})
	assert.True(t, errors.Is(err, ErrInvalidConfiguration), "no safe cell")
}
