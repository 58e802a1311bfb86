package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/vancomm/eelmines/internal/mines"
)

func TestBandColor(t *testing.T) {
	assert.Equal(t, tcell.NewHexColor(0x00D111), bandColor(0))
	assert.Equal(t, tcell.NewRGBColor(0x20, 0xE5, 0x00), bandColor(1))
	assert.Equal(t, tcell.NewRGBColor(0xFF, 0xFF, 0x00), bandColor(8))

	for n := range 9 {
		r, g, _ := bandColor(n).RGB()
		assert.GreaterOrEqual(t, r, int32(0x20*min(n, 7)), "red grows with n=%d", n)
		assert.GreaterOrEqual(t, g, int32(0xD1), "green never wraps at n=%d", n)
	}
}

func TestLighten(t *testing.T) {
	c := tcell.NewRGBColor(10, 20, 30)
	assert.Equal(t, c, lighten(c, 0))
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), lighten(tcell.NewRGBColor(0, 0, 0), 1))
}

func TestTile(t *testing.T) {
	tests := []struct {
		name   string
		view   mines.CellView
		rune   rune
		fg, bg tcell.Color
	}{
		{
			name: "hidden",
			view: mines.CellView{State: mines.Hidden, AdjacencyCount: 2},
			rune: ' ', fg: rgba(symbolColor), bg: rgba(hiddenColor),
		},
		{
			name: "empty",
			view: mines.CellView{State: mines.Revealed},
			rune: ' ', fg: rgba(symbolColor), bg: bandColor(0),
		},
		{
			name: "number",
			view: mines.CellView{State: mines.Revealed, AdjacencyCount: 3},
			rune: '3', fg: rgba(symbolColor), bg: bandColor(3),
		},
		{
			name: "satisfied number",
			view: mines.CellView{State: mines.Revealed, AdjacencyCount: 3, Satisfied: true},
			rune: '3', fg: bandColor(3), bg: rgba(satisfiedColor),
		},
		{
			name: "flag",
			view: mines.CellView{State: mines.Flagged},
			rune: 'F', fg: rgba(symbolColor), bg: rgba(hiddenColor),
		},
		{
			name: "mine",
			view: mines.CellView{State: mines.Mined},
			rune: '*', fg: rgba(symbolColor), bg: rgba(hiddenColor),
		},
		{
			name: "detonated mine",
			view: mines.CellView{State: mines.Mined, Detonated: true},
			rune: '*', fg: rgba(detonatedColor), bg: rgba(hiddenColor),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, style := tile(test.view)
			fg, bg, _ := style.Decompose()
			assert.Equal(t, test.rune, r)
			assert.Equal(t, test.fg, fg)
			assert.Equal(t, test.bg, bg)
		})
	}
}
