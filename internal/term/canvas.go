package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/brandonlouis96/brainrot-flappy/internal/effects"
)

type cell struct {
	ch     rune
	fg, bg effects.RGB
}

// canvas is the frame being composed. Nothing reaches the screen until
// flush, so overlays can blend backgrounds after the world is drawn.
type canvas struct {
	cols, rows int
	cells      []cell
}

func (c *canvas) resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	if cap(c.cells) < cols*rows {
		c.cells = make([]cell, cols*rows)
	}
	c.cells = c.cells[:cols*rows]
}

func (c *canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return nil
	}
	return &c.cells[y*c.cols+x]
}

// fill paints the background of a cell range and blanks its glyphs.
func (c *canvas) fill(x0, y0, x1, y1 int, bg effects.RGB) {
	for y := max(y0, 0); y < min(y1, c.rows); y++ {
		for x := max(x0, 0); x < min(x1, c.cols); x++ {
			c.cells[y*c.cols+x] = cell{ch: ' ', bg: bg}
		}
	}
}

// put sets a glyph and keeps the existing background.
func (c *canvas) put(x, y int, ch rune, fg effects.RGB) {
	if p := c.at(x, y); p != nil {
		p.ch = ch
		p.fg = fg
	}
}

// text writes s starting at column x.
func (c *canvas) text(x, y int, s string, fg effects.RGB) {
	for _, r := range s {
		c.put(x, y, r, fg)
		x++
	}
}

// centered writes s centred on column cx.
func (c *canvas) centered(cx, y int, s string, fg effects.RGB) {
	c.text(cx-len([]rune(s))/2, y, s, fg)
}

// blend pulls every cell toward col by t.
func (c *canvas) blend(col effects.RGB, t float64) {
	if t <= 0 {
		return
	}
	for i := range c.cells {
		c.cells[i].bg = c.cells[i].bg.Lerp(col, t)
		c.cells[i].fg = c.cells[i].fg.Lerp(col, t*0.5)
	}
}

func style(fg, bg effects.RGB) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

func (c *canvas) flush(screen tcell.Screen) {
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			p := c.cells[y*c.cols+x]
			ch := p.ch
			if ch == 0 {
				ch = ' '
			}
			screen.SetContent(x, y, ch, nil, style(p.fg, p.bg))
		}
	}
	screen.Show()
}
