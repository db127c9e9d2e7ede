package parameter

// Terminal Layout
const (
	// CellWidthPx and CellHeightPx map terminal cells onto the pointer coordinate space
	// so distance constants keep their meaning in a character grid
	CellWidthPx  = 10.0
	CellHeightPx = 20.0

	// HUDWidth is the column count reserved for the metrics overlay
	HUDWidth = 26
)

// Glyphs
const (
	CursorIdle   = '+'
	CursorActive = '@'
	TargetGlyph  = '◆'
)
