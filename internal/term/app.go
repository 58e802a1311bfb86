package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/eelmines/internal/mines"
)

const frameTime = time.Second / 60

// App plays a [mines.Game] on a terminal screen. Only the frame loop
// touches the game; the event pump just forwards screen events to it.
type App struct {
	screen  tcell.Screen
	game    *mines.Game
	logger  logrus.FieldLogger
	layout  Layout
	input   input
	heights heightMap
	prev    mines.Snapshot
}

func New(screen tcell.Screen, game *mines.Game, logger logrus.FieldLogger) *App {
	a := &App{
		screen: screen,
		game:   game,
		logger: logger,
	}
	a.sync()
	return a
}

// sync resizes the view after the board may have changed.
func (a *App) sync() {
	b := a.game.Board()
	a.layout = newLayout(b)
	if len(a.heights) != b.Width*b.Height {
		a.heights = make(heightMap, b.Width*b.Height)
	}
	a.prev = a.game.RenderState()
}

// Run takes over the screen until the player quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("unable to init screen: %w", err)
	}
	a.screen.EnableMouse()
	a.screen.HideCursor()

	events := make(chan tcell.Event)
	done := make(chan struct{})

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-done:
				return nil
			}
		}
	})
	g.Go(func() error {
		defer a.screen.Fini()
		defer close(done)
		return a.loop(gCtx, events)
	})

	return g.Wait()
}

func (a *App) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	last := time.Now()
	a.Draw()
	for {
		select {
		case <-ctx.Done():
			a.logger.Debug("context done, leaving")
			return nil
		case ev := <-events:
			if a.Handle(ev) {
				a.logger.Debug("player quit")
				return nil
			}
		case now := <-ticker.C:
			a.Tick(now.Sub(last))
			last = now
		}
		a.Draw()
	}
}

// Handle applies one screen event and reports whether the player asked to
// quit.
func (a *App) Handle(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		a.screen.Sync()
		return false
	}

	intent := a.input.translate(ev)
	if intent == None {
		return false
	}

	var err error
	switch intent {
	case Quit:
		return true
	case Restart:
		err = a.game.Restart()
		a.sync()
	case Primary, Secondary:
		c, ok := a.input.pointer(a.layout)
		if !ok {
			return false
		}
		a.logger.WithFields(logrus.Fields{
			"intent": intent.String(),
			"cell":   c.String(),
		}).Debug("click")
		if intent == Primary {
			err = a.game.PrimaryClick(c)
		} else {
			err = a.game.SecondaryClick(c)
		}
	}
	if err != nil {
		a.logger.WithError(err).WithField("intent", intent.String()).Error("unable to apply intent")
		return false
	}

	a.popChanged()
	return false
}

// popChanged raises every tile whose state changed since the last event.
func (a *App) popChanged() {
	snap := a.game.RenderState()
	if len(snap.Cells) == len(a.prev.Cells) {
		for i, v := range snap.Cells {
			if v.State != a.prev.Cells[i].State {
				a.heights.pop(i)
			}
		}
	}
	if snap.Outcome != a.prev.Outcome {
		a.logger.WithField("outcome", snap.Outcome.String()).Info("game over")
	}
	a.prev = snap
}

// Tick advances the pop animation by dt.
func (a *App) Tick(dt time.Duration) {
	hover := -1
	if c, ok := a.input.pointer(a.layout); ok {
		hover = c.Y*a.layout.Width + c.X
	}
	a.heights.tick(hover, dt)
}

func (a *App) Draw() {
	snap := a.game.RenderState()

	a.screen.Clear()
	for i, v := range snap.Cells {
		r, style := tile(v)
		if lvl := a.heights.level(i); lvl > 0 {
			_, bg, _ := style.Decompose()
			style = style.Background(lighten(bg, lvl*0.4)).Bold(true)
		}
		x, y := a.layout.Origin(v.Cell)
		for dy := range CellHeight {
			for dx := range CellWidth {
				ch := ' '
				if dx == CellWidth/2 && dy == CellHeight/2 {
					ch = r
				}
				a.screen.SetContent(x+dx, y+dy, ch, nil, style)
			}
		}
	}

	drawText(a.screen, a.layout.X, a.layout.StatusLine(), tcell.StyleDefault, status(snap))
	a.screen.Show()
}

func status(snap mines.Snapshot) string {
	switch snap.Outcome {
	case mines.Won:
		return "You won! r: restart  q: quit"
	case mines.Lost:
		return fmt.Sprintf("Boom at %s. r: restart  q: quit", snap.Detonated)
	default:
		return fmt.Sprintf("Flags left: %d  r: restart  q: quit", snap.FlagsLeft())
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
