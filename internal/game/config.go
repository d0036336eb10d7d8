package game

// Window defaults. Portrait to match the default playfield.
const (
	WindowWidth  = 480
	WindowHeight = 720
	WindowTitle  = "Brainrot Flappy"
)

// Fixed simulation step. Rendering runs at the display rate.
const (
	StepSeconds = 1.0 / 60.0
	MaxFrameDT  = 0.1
)

// Render buffer caps.
const (
	MaxParticleRender = 6000
	MaxRectRender     = 4096
)

// Font atlas layout (basicfont 7x13: 16 cols x 6 rows, ASCII 32-127).
const (
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 16
	FontRows   = 6
	FontFirst  = 32
	FontAtlasW = FontCellW * FontCols // 112
	FontAtlasH = FontCellH * FontRows // 78
)
