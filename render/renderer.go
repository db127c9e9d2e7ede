// Package render draws the interaction state into a tcell screen.
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ripple/engine"
	"github.com/lixenwraith/ripple/influence"
	"github.com/lixenwraith/ripple/parameter"
	"github.com/lixenwraith/ripple/perf"
	"github.com/lixenwraith/ripple/terminal"
)

// hudStatKeys are the registry entries listed under the perf block
var hudStatKeys = []string{
	"pointer.commits",
	"pointer.deferred",
	"mode.triggers",
	"spawn.spawned",
	"spawn.skipped",
	"spawn.expired",
}

// Renderer draws one frame per Draw call
type Renderer struct {
	screen tcell.Screen
	tr     *terminal.Translator
	shapes []influence.Element
	base   tcell.Style
}

// NewRenderer lays shapes out across the screen's current size
func NewRenderer(screen tcell.Screen, tr *terminal.Translator) *Renderer {
	r := &Renderer{
		screen: screen,
		tr:     tr,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
	r.Resize()
	return r
}

// Resize re-lays the shapes after a screen size change
func (r *Renderer) Resize() {
	w, h := r.tr.SizeToPixels(r.screen.Size())
	r.shapes = Layout(float64(w), float64(h))
}

// Shapes returns the current shape layout
func (r *Renderer) Shapes() []influence.Element {
	return r.shapes
}

// Draw renders shapes, targets, cursor, status bar and optionally the HUD
func (r *Renderer) Draw(e *engine.Engine, showHUD bool) {
	r.screen.SetStyle(r.base)
	r.screen.Clear()
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	m := e.Mode()
	r.drawShapes(e, m.Active)
	r.drawTargets(e)
	r.drawCursor(e, m.Active)
	r.drawStatusBar(e, width, height)
	if showHUD {
		r.drawHUD(e, width)
	}

	r.screen.Show()
}

func (r *Renderer) drawShapes(e *engine.Engine, active bool) {
	color := RgbShapeIdle
	if active {
		color = RgbShapeActive
	}

	for _, el := range r.shapes {
		res := e.Influence(el)
		col, row := r.tr.ToCell(el.X+res.DX, el.Y+res.DY)

		style := r.base.Foreground(lerp(RgbHUDText, color, res.Factor))
		if res.Scale > el.BaseScale+0.15 {
			style = style.Bold(true)
		}
		r.screen.SetContent(col, row, RotationGlyph(res.Rotation), nil, style)
	}
}

func (r *Renderer) drawTargets(e *engine.Engine) {
	now := e.Scheduler().Now()
	for _, t := range e.Targets() {
		c := e.TargetCenter(t)
		col, row := r.tr.ToCell(c.X, c.Y)

		age := float64(now.Sub(t.SpawnedAt)) / float64(t.TTL)
		style := r.base.Foreground(lerp(RgbTargetFresh, RgbTargetStale, age)).Bold(true)
		r.screen.SetContent(col, row, parameter.TargetGlyph, nil, style)
	}
}

func (r *Renderer) drawCursor(e *engine.Engine, active bool) {
	p := e.Pointer()
	col, row := r.tr.ToCell(p.X, p.Y)

	glyph, color := parameter.CursorIdle, RgbCursorIdle
	if active {
		glyph, color = parameter.CursorActive, RgbCursorActive
	}
	r.screen.SetContent(col, row, glyph, nil, r.base.Foreground(color).Bold(active))
}

func (r *Renderer) drawStatusBar(e *engine.Engine, width, height int) {
	y := height - 1
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, r.base)
	}

	m := e.Mode()
	text, bg := " IDLE ", RgbModeIdleBg
	if m.Active {
		remaining := m.Remaining(e.Scheduler().Now()).Round(time.Second)
		text, bg = fmt.Sprintf(" ACTIVE %s ", remaining), RgbModeActiveBg
	}
	x := r.text(0, y, text, r.base.Foreground(RgbStatusText).Background(bg))

	info := fmt.Sprintf(" score %d  targets %d ", e.Score(), len(e.Targets()))
	r.text(x+1, y, info, r.base.Foreground(RgbHUDText))
}

func (r *Renderer) drawHUD(e *engine.Engine, width int) {
	f := e.Metrics()
	h := e.Health()

	lines := []string{
		fmt.Sprintf("fps     %6.1f", f.FPS),
		fmt.Sprintf("mem     %6.0fMB", f.MemoryMB),
		fmt.Sprintf("render  %6.2fms", f.RenderTimeMs),
		fmt.Sprintf("nodes   %6d", f.NodeCount),
		fmt.Sprintf("health  %s", h.Level),
	}
	for _, key := range hudStatKeys {
		if v, ok := e.Status().Lookup(key); ok {
			lines = append(lines, fmt.Sprintf("%-16s %s", key, v))
		}
	}

	x0 := max(0, width-parameter.HUDWidth)
	style := r.base.Foreground(RgbHUDText)
	for i, line := range lines {
		s := style
		if i == 4 {
			s = s.Foreground(healthColor(h.Level))
		}
		for x := x0; x < width; x++ {
			r.screen.SetContent(x, i, ' ', nil, r.base)
		}
		r.text(x0, i, line, s)
	}
}

func healthColor(l perf.Level) tcell.Color {
	switch l {
	case perf.LevelCritical:
		return RgbHealthCritical
	case perf.LevelWarning:
		return RgbHealthWarning
	default:
		return RgbHealthOK
	}
}

// text writes s from (x, y) and returns the column after it
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
