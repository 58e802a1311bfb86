package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/eelmines/internal/mines"
)

type Intent int8

const (
	None Intent = iota
	Primary
	Secondary
	Restart
	Quit
)

func (i Intent) String() string {
	switch i {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// input turns raw screen events into intents. Buttons fire once when they
// go down; holding or dragging does not repeat them.
type input struct {
	buttons  tcell.ButtonMask
	px, py   int
	hovering bool
}

func (in *input) translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Quit
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return Quit
			case 'r', 'R':
				return Restart
			}
		}
	case *tcell.EventMouse:
		in.px, in.py = ev.Position()
		in.hovering = true

		buttons := ev.Buttons()
		pressed := buttons &^ in.buttons
		in.buttons = buttons

		switch {
		case pressed&tcell.Button1 != 0:
			return Primary
		case pressed&tcell.Button2 != 0:
			return Secondary
		}
	}
	return None
}

func (in *input) pointer(l Layout) (mines.Cell, bool) {
	if !in.hovering {
		return mines.Cell{}, false
	}
	return l.CellAt(in.px, in.py)
}
