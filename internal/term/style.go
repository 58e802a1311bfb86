package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/eelmines/internal/mines"
)

// Tile colours are RGBA. A revealed tile with n adjacent mines is tinted
// baseColor + n*(redMulti-otherSub) per channel, shifting from green
// towards red.
const (
	baseColor = 0x00D111FF
	redMulti  = 0x20230400
	otherSub  = 0x000F2F00

	hiddenColor    = 0x555555FF
	satisfiedColor = 0x777777FF
	detonatedColor = 0xDD1111FF
	symbolColor    = 0xFFFFFFFF
)

func rgba(c uint32) tcell.Color {
	return tcell.NewHexColor(int32(c >> 8))
}

// bandColor tints every channel on its own and clamps it, so high counts
// saturate instead of carrying into the next channel.
func bandColor(n int) tcell.Color {
	channel := func(shift uint) int32 {
		v := int32(baseColor>>shift&0xFF) +
			int32(n)*(int32(redMulti>>shift&0xFF)-int32(otherSub>>shift&0xFF))
		return min(max(v, 0), 0xFF)
	}
	return tcell.NewRGBColor(channel(24), channel(16), channel(8))
}

// lighten blends c towards white by f in [0, 1].
func lighten(c tcell.Color, f float64) tcell.Color {
	if f <= 0 {
		return c
	}
	r, g, b := c.RGB()
	blend := func(v int32) int32 {
		return v + int32(float64(255-v)*f)
	}
	return tcell.NewRGBColor(blend(r), blend(g), blend(b))
}

// tile returns the text and style for one tile. Satisfied revealed tiles
// swap colours: grey tile, tinted digit.
func tile(v mines.CellView) (rune, tcell.Style) {
	style := tcell.StyleDefault.Foreground(rgba(symbolColor))
	switch v.State {
	case mines.Revealed:
		band := bandColor(v.AdjacencyCount)
		r := rune('0' + v.AdjacencyCount)
		if v.AdjacencyCount == 0 {
			r = ' '
		}
		if v.Satisfied {
			return r, style.Background(rgba(satisfiedColor)).Foreground(band)
		}
		return r, style.Background(band)
	case mines.Flagged:
		return 'F', style.Background(rgba(hiddenColor))
	case mines.Mined:
		style = style.Background(rgba(hiddenColor))
		if v.Detonated {
			style = style.Foreground(rgba(detonatedColor))
		}
		return '*', style
	default:
		return ' ', style.Background(rgba(hiddenColor))
	}
}
