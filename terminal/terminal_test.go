package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ripple/event"
)

func TestTranslateMotion(t *testing.T) {
	tr := NewTranslator()

	out := tr.Translate(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone))
	require.Len(t, out, 1)
	assert.Equal(t, event.EventPointerMove, out[0].Type)
	assert.Equal(t, 35.0, out[0].X)
	assert.Equal(t, 90.0, out[0].Y)

	// Same cell, no buttons: nothing new
	assert.Empty(t, tr.Translate(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone)))
}

func TestTranslateClickOnPressEdge(t *testing.T) {
	tr := NewTranslator()

	out := tr.Translate(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	require.Len(t, out, 2)
	assert.Equal(t, event.EventPointerMove, out[0].Type)
	assert.Equal(t, event.EventClick, out[1].Type)
	assert.Equal(t, event.ButtonPrimary, out[1].Button)

	// Held button while dragging produces moves only
	out = tr.Translate(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone))
	require.Len(t, out, 1)
	assert.Equal(t, event.EventPointerMove, out[0].Type)

	// Release then press again clicks again
	assert.Empty(t, tr.Translate(tcell.NewEventMouse(2, 1, tcell.ButtonNone, tcell.ModNone)))
	out = tr.Translate(tcell.NewEventMouse(2, 1, tcell.Button2, tcell.ModNone))
	require.Len(t, out, 1)
	assert.Equal(t, event.ButtonSecondary, out[0].Button)
}

func TestTranslateIgnoresWheel(t *testing.T) {
	tr := NewTranslator()
	tr.Translate(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	assert.Empty(t, tr.Translate(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone)))
}

func TestTranslateResize(t *testing.T) {
	tr := NewTranslator()
	out := tr.Translate(tcell.NewEventResize(80, 24))
	require.Len(t, out, 1)
	assert.Equal(t, event.EventResize, out[0].Type)
	assert.Equal(t, 800, out[0].Width)
	assert.Equal(t, 480, out[0].Height)
}

func TestCellMapping(t *testing.T) {
	tr := NewTranslator()
	x, y := tr.ToPixels(7, 2)
	col, row := tr.ToCell(x, y)
	assert.Equal(t, 7, col)
	assert.Equal(t, 2, row)
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Command
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CmdQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), CmdQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), CmdQuit},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), CmdToggle},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), CmdHUD},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), CmdMute},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, KeyCommand(tt.ev))
		})
	}
}

func TestHostLifecycle(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	h, err := NewHost(screen)
	require.NoError(t, err)
	screen.SetSize(80, 24)

	w, ht := h.ContainerSize()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 480.0, ht)

	h.Start()
	h.Start()
	require.NoError(t, screen.PostEvent(tcell.NewEventInterrupt("ping")))

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-h.Events():
			if in, ok := ev.(*tcell.EventInterrupt); ok && in.Data() == "ping" {
				h.Stop()
				h.Stop()
				return
			}
		case <-deadline:
			require.FailNow(t, "event was not forwarded")
		}
	}
}
