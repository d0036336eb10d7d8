// Package term runs the game inside a terminal using tcell. One cell
// stands for a CellW x CellH block of logical playfield pixels.
package term

import "time"

// Cell geometry in logical pixels.
const (
	CellW = 10.0
	CellH = 20.0
)

// Timing
const (
	FrameDuration = time.Second / 60
	MaxFrameDT    = 0.1
)

// Event queue depth between the poller and the frame loop.
const eventBuffer = 32

// Buffers
const MaxParticles = 600
