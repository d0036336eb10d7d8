package term

import (
	"testing"

	"github.com/brandonlouis96/brainrot-flappy/internal/effects"
)

func TestCanvasClipsOutOfRange(t *testing.T) {
	var cv canvas
	cv.resize(4, 2)

	cv.put(-1, 0, 'x', effects.Palette.White)
	cv.put(4, 1, 'x', effects.Palette.White)
	cv.fill(-5, -5, 50, 50, effects.Palette.Red)
	cv.text(2, 0, "abcd", effects.Palette.White)

	if got := cv.at(3, 0).ch; got != 'b' {
		t.Errorf("Expected text to clip at the edge, got %q", got)
	}
	if cv.at(4, 0) != nil {
		t.Error("Expected nil outside the canvas")
	}
	if cv.at(0, 1).bg != effects.Palette.Red {
		t.Error("Expected fill clamped to the canvas")
	}
}

func TestCanvasCentered(t *testing.T) {
	var cv canvas
	cv.resize(11, 1)

	cv.centered(5, 0, "6-7", effects.Palette.White)

	if cv.at(4, 0).ch != '6' || cv.at(6, 0).ch != '7' {
		t.Errorf("Expected text centred on column 5")
	}
}

func TestCanvasBlend(t *testing.T) {
	var cv canvas
	cv.resize(1, 1)
	cv.fill(0, 0, 1, 1, effects.Palette.Black)

	cv.blend(effects.Palette.White, 0)
	if cv.at(0, 0).bg != effects.Palette.Black {
		t.Fatal("Expected zero blend to leave the cell alone")
	}

	cv.blend(effects.Palette.White, 0.5)
	if got := cv.at(0, 0).bg; got.R != 128 || got.G != 128 || got.B != 128 {
		t.Errorf("Expected mid grey, got %+v", got)
	}
}

func TestCanvasResizeReusesStorage(t *testing.T) {
	var cv canvas
	cv.resize(10, 10)
	first := &cv.cells[0]

	cv.resize(5, 5)

	if len(cv.cells) != 25 {
		t.Fatalf("Expected 25 cells, got %d", len(cv.cells))
	}
	if &cv.cells[0] != first {
		t.Error("Expected smaller frame to reuse the backing array")
	}
}
