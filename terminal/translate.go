// Package terminal adapts a tcell screen into the host of the interaction core.
//
// Cell coordinates are scaled into a pixel-like space (cell centre, CellWidthPx x
// CellHeightPx per cell) so distance tuning keeps its meaning on a character grid.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ripple/event"
	"github.com/lixenwraith/ripple/parameter"
)

// Command is a host-level key action outside the event broker
type Command uint8

const (
	CmdNone Command = iota
	CmdQuit
	CmdToggle
	CmdHUD
	CmdMute
)

func (c Command) String() string {
	switch c {
	case CmdQuit:
		return "quit"
	case CmdToggle:
		return "toggle"
	case CmdHUD:
		return "hud"
	case CmdMute:
		return "mute"
	default:
		return "none"
	}
}

// Translator converts tcell events into broker events
// Clicks are reported on the press edge of each button
type Translator struct {
	cellW, cellH float64

	buttons  tcell.ButtonMask
	lastCol  int
	lastRow  int
	hasMouse bool
}

// NewTranslator uses the default cell scale
func NewTranslator() *Translator {
	return &Translator{cellW: parameter.CellWidthPx, cellH: parameter.CellHeightPx}
}

// ToPixels maps a cell to the centre of its pixel box
func (t *Translator) ToPixels(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * t.cellW, (float64(row) + 0.5) * t.cellH
}

// ToCell maps a pixel position back to the cell containing it
func (t *Translator) ToCell(x, y float64) (int, int) {
	return int(x / t.cellW), int(y / t.cellH)
}

// SizeToPixels maps a screen size in cells to container pixels
func (t *Translator) SizeToPixels(cols, rows int) (int, int) {
	return int(float64(cols) * t.cellW), int(float64(rows) * t.cellH)
}

// Translate returns the broker events for ev; keys and unknown events yield none
func (t *Translator) Translate(ev tcell.Event) []*event.Event {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		return t.mouse(e)
	case *tcell.EventResize:
		cols, rows := e.Size()
		w, h := t.SizeToPixels(cols, rows)
		return []*event.Event{event.NewResize(w, h, e.When())}
	}
	return nil
}

var clickButtons = []struct {
	mask tcell.ButtonMask
	btn  event.Button
}{
	{tcell.Button1, event.ButtonPrimary},
	{tcell.Button3, event.ButtonMiddle},
	{tcell.Button2, event.ButtonSecondary},
}

func (t *Translator) mouse(e *tcell.EventMouse) []*event.Event {
	col, row := e.Position()
	btns := e.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	x, y := t.ToPixels(col, row)

	var out []*event.Event
	if !t.hasMouse || col != t.lastCol || row != t.lastRow {
		out = append(out, event.NewPointerMove(x, y, e.When()))
		t.lastCol, t.lastRow, t.hasMouse = col, row, true
	}

	pressed := btns &^ t.buttons
	t.buttons = btns
	for _, b := range clickButtons {
		if pressed&b.mask != 0 {
			out = append(out, event.NewClick(x, y, b.btn, e.When()))
		}
	}
	return out
}

// KeyCommand maps a key press to a host command
func KeyCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return CmdQuit
		case ' ', 't':
			return CmdToggle
		case 'p':
			return CmdHUD
		case 'm':
			return CmdMute
		}
	}
	return CmdNone
}
