package mines

import "github.com/sirupsen/logrus"

var Log = logrus.New()

// neighborOffsets lists the 8-neighbourhood in row-major order. Every scan
// that can hit more than one mine walks it in this order.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// neighbors calls fn for every in-bounds neighbour of (x, y).
func neighbors(width, height, x, y int, fn func(xx, yy int)) {
	for _, d := range neighborOffsets {
		xx, yy := x+d[0], y+d[1]
		if xx >= 0 && xx < width && yy >= 0 && yy < height {
			fn(xx, yy)
		}
	}
}

func iif[T any](condition bool, valueIfTrue, valueIfFalse T) T {
	if condition {
		return valueIfTrue
	} else {
		return valueIfFalse
	}
}

func repeat[T any](value T, times int) (res []T) {
	for range times {
		res = append(res, value)
	}
	return
}
