package term

import "time"

const (
	maxHeight = 15.0
	riseTime  = 250 * time.Millisecond
)

// heightMap drives the tile pop animation. It is purely cosmetic: a tile
// rises while hovered, jumps to full height when it changes, and sinks back
// three times slower than it rises.
type heightMap []float64

func (h heightMap) tick(hover int, dt time.Duration) {
	step := maxHeight * dt.Seconds() / riseTime.Seconds()
	if hover >= 0 && hover < len(h) {
		h[hover] = min(h[hover]+step*3, maxHeight)
	}
	for i, v := range h {
		if v > 0 {
			h[i] = max(v-step, 0)
		}
	}
}

func (h heightMap) pop(i int) {
	h[i] = maxHeight
}

// level is the height of tile i in [0, 1].
func (h heightMap) level(i int) float64 {
	return h[i] / maxHeight
}
