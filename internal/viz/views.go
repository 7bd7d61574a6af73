package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fourier/internal/geometry"
)

const (
	defaultPanelRows = 12
	minPanelRows     = 6
)

// Views renders the four panels of a frame: complex plane, imaginary vs
// time, real vs time and the 3D trajectory. Axis limits are fixed for the
// whole run.
type Views struct {
	Bounds geometry.Bounds
	Theme  Theme
	Camera *Camera

	rows, cols int
	plane      *Canvas
	real       *Canvas
	traj       *Canvas
}

func NewViews(b geometry.Bounds, theme Theme) *Views {
	v := &Views{Bounds: b, Theme: theme, Camera: NewCamera()}
	v.Resize(defaultPanelRows, 2*defaultPanelRows)
	return v
}

// Resize sets the inner size of every panel in terminal cells. The complex
// plane keeps a 2:1 cell ratio so both axes share one scale.
func (v *Views) Resize(rows, cols int) {
	if rows < minPanelRows {
		rows = minPanelRows
	}
	if cols < 2*minPanelRows {
		cols = 2 * minPanelRows
	}
	v.rows, v.cols = rows, cols
	planeCols := 2 * rows
	if planeCols > cols {
		planeCols = cols
	}
	v.plane = NewCanvas(planeCols, rows)
	v.real = NewCanvas(cols, rows)
	v.traj = NewCanvas(cols, rows)
}

// FitTerminal sizes the panels to a terminal of the given size, leaving room
// for borders and the status header.
func (v *Views) FitTerminal(width, height int) {
	v.Resize((height-8)/2, width/2-6)
}

func (v *Views) ComplexPlane(f geometry.Frame) string {
	c := v.plane
	c.Clear()
	lim := v.Bounds.Value
	p := NewPlot(c, -lim, lim, -lim, lim)

	c.SetPen(PenAxis)
	p.Line(-lim, 0, lim, 0)
	p.Line(0, -lim, 0, lim)

	for _, l := range f.ComplexPlane {
		c.SetPen(linePen(l.Sign))
		p.Polyline(l.X, l.Y, l.Sign == geometry.Negative)
	}

	c.SetPen(PenCircle)
	for _, circ := range f.Circles {
		p.Circle(real(circ.Center), imag(circ.Center), circ.Radius)
	}
	for _, s := range f.Segments {
		c.SetPen(PenVector)
		if s.Sign == geometry.Negative {
			c.SetPen(PenNegVector)
		}
		p.Line(real(s.From), imag(s.From), real(s.To), imag(s.To))
	}
	return c.Render(v.Theme.pens())
}

// RealTime plots the real part horizontally against time running down from
// now at the top.
func (v *Views) RealTime(f geometry.Frame) string {
	c := v.real
	c.Clear()
	b := v.Bounds
	p := NewPlot(c, -b.Value, b.Value, b.TimeMin, b.TimeMax)

	c.SetPen(PenAxis)
	p.Line(0, b.TimeMin, 0, b.TimeMax)

	for _, l := range f.RealTime {
		start := firstInWindow(l.Y, b.TimeMin)
		c.SetPen(linePen(l.Sign))
		p.Polyline(l.X[start:], l.Y[start:], l.Sign == geometry.Negative)
	}
	return c.Render(v.Theme.pens())
}

// ImagTime charts the imaginary part over the last period with now on the
// left, like an inverted time axis.
func (v *Views) ImagTime(f geometry.Frame) string {
	series := make([][]float64, 0, len(f.ImagTime))
	colors := make([]asciigraph.AnsiColor, 0, len(f.ImagTime))
	for _, l := range f.ImagTime {
		start := firstInWindow(l.X, v.Bounds.TimeMin)
		if len(l.Y)-start < 2 {
			continue
		}
		series = append(series, reversed(l.Y[start:]))
		if l.Sign == geometry.Negative {
			colors = append(colors, asciigraph.Blue)
		} else {
			colors = append(colors, asciigraph.Red)
		}
	}
	if len(series) == 0 {
		return mutedStyle(v.Theme).Render(placeholder(v.rows, v.cols, "waiting for samples"))
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(v.rows-1),
		asciigraph.Width(v.cols-10),
		asciigraph.LowerBound(-v.Bounds.Value),
		asciigraph.UpperBound(v.Bounds.Value),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(timeCaption()),
	)
}

func (v *Views) Trajectory(f geometry.Frame) string {
	c := v.traj
	c.Clear()
	Render3D(c, TrajectoryWireframe(f.Trajectory, v.Bounds), v.Camera)
	return c.Render(v.Theme.pens())
}

// Grid lays the four panels out in a 2x2 figure.
func (v *Views) Grid(f geometry.Frame) string {
	panel := panelStyle(v.Theme)
	title := titleStyle(v.Theme)
	box := func(name, body string) string {
		return panel.Render(title.Render(name) + "\n" + strings.TrimRight(body, "\n"))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		box("complex plane", v.ComplexPlane(f)),
		box("imaginary value", v.ImagTime(f)),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		box("real value / normalized time", v.RealTime(f)),
		box("normalized time · imaginary · real", v.Trajectory(f)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func linePen(s geometry.Sign) Pen {
	if s == geometry.Negative {
		return PenNegative
	}
	return PenPositive
}

func reversed(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}

func timeCaption() string {
	labels := make([]string, len(geometry.TimeTicks))
	for i, t := range geometry.TimeTicks {
		labels[i] = t.Label
	}
	return fmt.Sprintf("time: %s", strings.Join(labels, " → "))
}

func placeholder(rows, cols int, msg string) string {
	var b strings.Builder
	for i := 0; i < rows; i++ {
		if i == rows/2 {
			pad := (cols - len(msg)) / 2
			if pad < 0 {
				pad = 0
			}
			b.WriteString(strings.Repeat(" ", pad) + msg)
		}
		b.WriteString("\n")
	}
	return b.String()
}
