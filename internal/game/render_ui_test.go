package game

import "testing"

func cellCoverage(t *testing.T, ch rune) int {
	t.Helper()
	atlas := buildFontAtlas()
	i := int(ch) - FontFirst
	x0 := (i % FontCols) * FontCellW
	y0 := (i / FontCols) * FontCellH
	n := 0
	for y := y0; y < y0+FontCellH; y++ {
		for x := x0; x < x0+FontCellW; x++ {
			if atlas.NRGBAAt(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}

func TestFontAtlasGlyphs(t *testing.T) {
	if n := cellCoverage(t, ' '); n != 0 {
		t.Errorf("Expected blank space cell, got %d lit pixels", n)
	}
	for _, ch := range "A6-7W" {
		if n := cellCoverage(t, ch); n == 0 {
			t.Errorf("Expected glyph pixels for %q", ch)
		}
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("SIGMA", 2); got != 5*FontCellW*2 {
		t.Errorf("Expected %d, got %d", 5*FontCellW*2, got)
	}
	if got := TextWidth("AB\nCDEF", 1); got != 4*FontCellW {
		t.Errorf("Expected widest line, got %d", got)
	}
}
