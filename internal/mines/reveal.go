package mines

import "github.com/sirupsen/logrus"

func (g *Game) revealOrChord(c Cell) {
	switch g.grid.state(c) {
	case Revealed:
		if g.grid.IsSatisfied(c) {
			g.chord(c)
		}
	case Hidden:
		if g.board.IsMine(c) {
			g.grid.set(c, Mined)
			g.triggerLoss(c)
			return
		}
		g.grid.set(c, Revealed)
		n := 1
		if g.expands(c) {
			n += g.floodFill(c)
		}
		Log.WithFields(logrus.Fields{
			"cell":     c.String(),
			"revealed": n,
		}).Debug("opened cell")
	}
}

// expands reports whether opening c should carry on into its neighbours.
func (g *Game) expands(c Cell) bool {
	return g.board.AdjacencyCount(c) == 0 || g.grid.IsSatisfied(c)
}

// chord opens every hidden neighbour of a satisfied cell. A hidden mine
// among them loses the game; when there are several, the first one in
// row-major order is recorded since triggerLoss marks the rest as mined.
func (g *Game) chord(c Cell) {
	n := 0
	for _, nb := range g.board.Neighbors(c) {
		if g.grid.state(nb) != Hidden {
			continue
		}
		if g.board.IsMine(nb) {
			g.triggerLoss(nb)
			continue
		}
		g.grid.set(nb, Revealed)
		n++
		if g.expands(nb) {
			n += g.floodFill(nb)
		}
	}
	Log.WithFields(logrus.Fields{
		"cell":     c.String(),
		"revealed": n,
	}).Debug("chorded cell")
}

// floodFill opens the safe hidden cells reachable from start through cells
// that expand. Flags are never crossed. It returns the number of cells it
// opened, start excluded.
func (g *Game) floodFill(start Cell) int {
	w, h := g.board.Width, g.board.Height
	g.grid.set(start, Revealed)

	n := 0
	todo := []Cell{start}
	for len(todo) > 0 {
		c := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		neighbors(w, h, c.X, c.Y, func(x, y int) {
			nb := Cell{x, y}
			if g.grid.state(nb) != Hidden || g.board.mines[y*w+x] {
				return
			}
			g.grid.set(nb, Revealed)
			n++
			if g.expands(nb) {
				todo = append(todo, nb)
			}
		})
	}
	return n
}
