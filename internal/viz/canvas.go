package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
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

const blank = 0x2800

// Pen selects the color a cell is rendered with. The last pen to touch a
// cell wins.
type Pen uint8

const (
	PenAxis Pen = iota
	PenPositive
	PenNegative
	PenCircle
	PenVector
	PenNegVector
	numPens
)

type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Ink           [][]Pen
	pen           Pen
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Ink:    make([][]Pen, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Ink[i] = make([]Pen, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) SetPen(p Pen) { c.pen = p }

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Ink[row][col] = c.pen
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Ink[i][j] = PenAxis
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
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

	for {
		c.Set(x0, y0)
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

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colors each cell with the style of its pen. Runs of equal pens are
// styled together.
func (c *Canvas) Render(styles [numPens]lipgloss.Style) string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Ink[i][j] == c.Ink[i][start] {
				continue
			}
			b.WriteString(styles[c.Ink[i][start]].Render(string(row[start:j])))
			start = j
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Plot maps world coordinates onto a canvas.
type Plot struct {
	C                      *Canvas
	XMin, XMax, YMin, YMax float64
}

func NewPlot(c *Canvas, xMin, xMax, yMin, yMax float64) *Plot {
	return &Plot{C: c, XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
}

// Point converts world coordinates to sub-pixels, y pointing up.
func (p *Plot) Point(x, y float64) (int, int) {
	w, h := float64(p.C.Width*2-1), float64(p.C.Height*4-1)
	px := (x - p.XMin) / (p.XMax - p.XMin) * w
	py := (p.YMax - y) / (p.YMax - p.YMin) * h
	return int(math.Round(px)), int(math.Round(py))
}

func (p *Plot) Line(x0, y0, x1, y1 float64) {
	ax, ay := p.Point(x0, y0)
	bx, by := p.Point(x1, y1)
	p.C.DrawLine(ax, ay, bx, by)
}

// Polyline connects consecutive points; dotted skips every other segment.
func (p *Plot) Polyline(xs, ys []float64, dotted bool) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 1 {
		p.C.Set(p.Point(xs[0], ys[0]))
		return
	}
	for i := 1; i < n; i++ {
		if dotted && i%2 == 0 {
			continue
		}
		p.Line(xs[i-1], ys[i-1], xs[i], ys[i])
	}
}

// Circle approximates a circle in world units with a polygon, so unequal
// axis scales still give the right shape.
func (p *Plot) Circle(cx, cy, r float64) {
	const segments = 48
	px, py := cx+r, cy
	for i := 1; i <= segments; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / segments)
		x, y := cx+r*cos, cy+r*sin
		p.Line(px, py, x, y)
		px, py = x, y
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
