package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/trajview/internal/trajectory"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	blank = rune(0x2800)

	// NoLayer marks a cell nothing has been drawn into.
	NoLayer = -1
)

// Canvas is a braille grid. Each cell also remembers the last layer drawn
// into it so layers can be coloured when rendered.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Layers        [][]int
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Layers: make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Layers[i] = make([]int, w)
	}
	c.Clear()
	return c
}

// PixelSize is the canvas size in braille dots.
func (c *Canvas) PixelSize() (w, h int) {
	return c.Width * 2, c.Height * 4
}

// Set sets the dot at (x, y) in sub-pixel coordinates on the given layer.
func (c *Canvas) Set(x, y, layer int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Layers[row][col] = layer
}

// IsSet reports whether the dot at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Layers[i][j] = NoLayer
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm. With dash > 0 the line
// alternates dash dots on and dash dots off.
func (c *Canvas) DrawLine(x0, y0, x1, y1, layer, dash int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for n := 0; ; n++ {
		if dash <= 0 || (n/dash)%2 == 0 {
			c.Set(x0, y0, layer)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Viewport maps world coordinates onto a canvas. Y grows upwards.
type Viewport struct {
	Bounds trajectory.Bounds
	W, H   int
}

func (c *Canvas) Viewport(b trajectory.Bounds) Viewport {
	w, h := c.PixelSize()
	return Viewport{Bounds: b, W: w, H: h}
}

// Project converts a world point to dot coordinates. ok is false for
// non-finite input; points outside the bounds map outside the canvas and
// are clipped by Set.
func (v Viewport) Project(x, y float64) (px, py int, ok bool) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, 0, false
	}
	b := v.Bounds
	fx := (x - b.XMin) / span(b.XMin, b.XMax)
	fy := (y - b.YMin) / span(b.YMin, b.YMax)

	// keep far-away points from overflowing Bresenham
	const limit = 1 << 20
	fpx := math.Max(-limit, math.Min(limit, math.Round(fx*float64(v.W-1))))
	fpy := math.Max(-limit, math.Min(limit, math.Round((1-fy)*float64(v.H-1))))
	px, py = int(fpx), int(fpy)
	return px, py, true
}

// Polyline draws the series through vp, joining consecutive points.
func (c *Canvas) Polyline(xs, ys []float64, vp Viewport, layer, dash int) {
	n := min(len(xs), len(ys))
	havePrev := false
	var px, py int
	for i := 0; i < n; i++ {
		x, y, ok := vp.Project(xs[i], ys[i])
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			c.DrawLine(px, py, x, y, layer, dash)
		} else {
			c.Set(x, y, layer)
		}
		px, py, havePrev = x, y, true
	}
}

// Marker lights a 2x2 block around a world point.
func (c *Canvas) Marker(x, y float64, vp Viewport, layer int) {
	px, py, ok := vp.Project(x, y)
	if !ok {
		return
	}
	for _, d := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		c.Set(px+d[0], py+d[1], layer)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render is String with each cell coloured by its layer style.
func (c *Canvas) Render(styles []lipgloss.Style) string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			layer := c.Layers[i][j]
			if layer < 0 || layer >= len(styles) {
				b.WriteRune(r)
				continue
			}
			b.WriteString(styles[layer].Render(string(r)))
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func span(lo, hi float64) float64 {
	if hi > lo {
		return hi - lo
	}
	return 1
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
