package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Canvas is a fixed-size grid of single-width cells the shelf items are
// composited onto. Coordinates are in cells; drawing outside the canvas
// is clipped, not an error, since placements may legally overhang a
// too-small viewport.
type Canvas struct {
	w, h   int
	runes  [][]rune
	colors [][]string
}

// NewCanvas returns a blank canvas of w by h cells.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{w: w, h: h}
	c.runes = make([][]rune, h)
	c.colors = make([][]string, h)
	for y := 0; y < h; y++ {
		c.runes[y] = make([]rune, w)
		c.colors[y] = make([]string, w)
		for x := 0; x < w; x++ {
			c.runes[y][x] = ' '
		}
	}
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.h }

func (c *Canvas) set(x, y int, r rune, color string) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.colors[y][x] = color
}

// DrawBox draws a single-line border box with a centered, truncated label
// on its middle row, all in the given color.
func (c *Canvas) DrawBox(x, y, w, h int, label, color string) {
	if w < 2 || h < 1 {
		c.FillRect(x, y, w, h, '▒', color)
		return
	}
	for dx := 1; dx < w-1; dx++ {
		c.set(x+dx, y, '─', color)
		c.set(x+dx, y+h-1, '─', color)
	}
	for dy := 1; dy < h-1; dy++ {
		c.set(x, y+dy, '│', color)
		c.set(x+w-1, y+dy, '│', color)
	}
	c.set(x, y, '┌', color)
	c.set(x+w-1, y, '┐', color)
	if h > 1 {
		c.set(x, y+h-1, '└', color)
		c.set(x+w-1, y+h-1, '┘', color)
	}

	if label == "" {
		return
	}
	inner := w - 2
	if inner <= 0 {
		return
	}
	text := runewidth.Truncate(label, inner, "…")
	tw := runewidth.StringWidth(text)
	ty := y + h/2
	tx := x + 1 + (inner-tw)/2
	for _, r := range text {
		c.set(tx, ty, r, color)
		tx += runewidth.RuneWidth(r)
	}
}

// FillRect fills a rectangle with one rune.
func (c *Canvas) FillRect(x, y, w, h int, r rune, color string) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.set(x+dx, y+dy, r, color)
		}
	}
}

// Line returns row y as plain text.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.h {
		return strings.Repeat(" ", c.w)
	}
	return string(c.runes[y])
}

// Render converts rows [top, top+count) to styled terminal lines, merging
// runs of identically colored cells into single style spans.
func (c *Canvas) Render(top, count int) string {
	var b strings.Builder
	for y := top; y < top+count; y++ {
		if y > top {
			b.WriteByte('\n')
		}
		if y < 0 || y >= c.h {
			b.WriteString(strings.Repeat(" ", c.w))
			continue
		}
		x := 0
		for x < c.w {
			color := c.colors[y][x]
			run := x
			for run < c.w && c.colors[y][run] == color {
				run++
			}
			seg := string(c.runes[y][x:run])
			if color == "" {
				b.WriteString(seg)
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(seg))
			}
			x = run
		}
	}
	return b.String()
}
