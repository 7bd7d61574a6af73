// Package geometry derives the drawable views of an epicycle frame: the
// complex-plane trace, real-vs-time, imaginary-vs-time, the 3D trajectory and
// the per-frequency circles and radius vectors.
//
// Every artifact is tagged [Positive] or [Negative]. Negative artifacts are
// the mirrored, counter-rotating components and are only emitted when the
// projector is built with negative frequencies enabled.
package geometry

import (
	"math"

	"github.com/san-kum/fourier/internal/epicycle"
)

type Sign int

const (
	Positive Sign = iota
	Negative
)

func (s Sign) String() string {
	if s == Negative {
		return "negative"
	}
	return "positive"
}

// Line is a 2D polyline. X and Y may alias the state's series.
type Line struct {
	Sign Sign
	X, Y []float64
}

// Line3D is a 3D polyline in (time, imaginary, real) order.
type Line3D struct {
	Sign    Sign
	X, Y, Z []float64
}

// Circle is the path of frequency Index around its center pointer.
type Circle struct {
	Index  int
	Sign   Sign
	Center complex128
	Radius float64
}

// Segment is the radius vector of frequency Index.
type Segment struct {
	Index    int
	Sign     Sign
	From, To complex128
}

// Frame is everything a renderer needs for one animation frame. Frequencies
// with a zero radius have no circle and no segment at all; the DC term never
// has a circle.
type Frame struct {
	ComplexPlane []Line
	RealTime     []Line
	ImagTime     []Line
	Trajectory   []Line3D
	Circles      []Circle
	Segments     []Segment
}

// Projector turns a pointer chain and the accumulated series into a Frame.
// It keeps the negated imaginary series and extends it incrementally while
// the series grows in place.
type Projector struct {
	radii        []float64
	showNegative bool
	negY         []float64
	negSrc       *float64 // first element of the series negY was built from
}

func NewProjector(radii []float64, showNegative bool) *Projector {
	r := make([]float64, len(radii))
	copy(r, radii)
	return &Projector{radii: r, showNegative: showNegative}
}

// Project derives the four views plus circles and vectors. The real-vs-time
// view uses (X, phi) for both signs: the real part does not depend on the
// sign of the frequency.
func (p *Projector) Project(chain epicycle.Chain, s epicycle.Series) Frame {
	f := Frame{
		ComplexPlane: []Line{{Sign: Positive, X: s.X, Y: s.Y}},
		RealTime:     []Line{{Sign: Positive, X: s.X, Y: s.Phi}},
		ImagTime:     []Line{{Sign: Positive, X: s.Phi, Y: s.Y}},
		Trajectory:   []Line3D{{Sign: Positive, X: s.Phi, Y: s.Y, Z: s.X}},
	}

	if p.showNegative {
		negY := p.negated(s.Y)
		f.ComplexPlane = append(f.ComplexPlane, Line{Sign: Negative, X: s.X, Y: negY})
		f.RealTime = append(f.RealTime, Line{Sign: Negative, X: s.X, Y: s.Phi})
		f.ImagTime = append(f.ImagTime, Line{Sign: Negative, X: s.Phi, Y: negY})
		f.Trajectory = append(f.Trajectory, Line3D{Sign: Negative, X: s.Phi, Y: negY, Z: s.X})
	}

	p.epicycles(&f, chain)
	return f
}

func (p *Projector) epicycles(f *Frame, chain epicycle.Chain) {
	n := len(p.radii)
	if len(chain) < n+1 {
		n = len(chain) - 1
	}
	for k := 0; k < n; k++ {
		r := p.radii[k]
		if r <= 0 {
			continue
		}
		from, to := chain[k], chain[k+1]
		if k > 0 {
			f.Circles = append(f.Circles, Circle{Index: k, Sign: Positive, Center: from, Radius: r})
		}
		f.Segments = append(f.Segments, Segment{Index: k, Sign: Positive, From: from, To: to})
		if !p.showNegative {
			continue
		}
		if k > 0 {
			f.Circles = append(f.Circles, Circle{Index: k, Sign: Negative, Center: mirror(from), Radius: r})
		}
		f.Segments = append(f.Segments, Segment{Index: k, Sign: Negative, From: mirror(from), To: mirror(to)})
	}
}

// negated returns -y, reusing the values computed for earlier frames. The
// cache only carries over when y still has the same backing array and did
// not shrink; anything else (regrowth, re-initialization) rebuilds it.
func (p *Projector) negated(y []float64) []float64 {
	if len(y) == 0 {
		p.negY, p.negSrc = p.negY[:0], nil
		return p.negY[:0:0]
	}
	if &y[0] != p.negSrc || len(y) < len(p.negY) {
		p.negY, p.negSrc = p.negY[:0], &y[0]
	}
	for i := len(p.negY); i < len(y); i++ {
		p.negY = append(p.negY, -y[i])
	}
	return p.negY[:len(y):len(y)]
}

func mirror(z complex128) complex128 {
	return complex(real(z), -imag(z))
}

// Bounds are the fixed axis limits of a run.
type Bounds struct {
	Value   float64 // symmetric limit of the value axes
	TimeMin float64
	TimeMax float64
}

// Limits sizes the value axes to 1.1 times the sum of all radii, the furthest
// the chain can reach, and the time axes to one period plus a small margin.
func Limits(radii []float64) Bounds {
	v := 1.1 * epicycle.MaxAmplitude(radii)
	if v == 0 {
		v = 1
	}
	return Bounds{Value: v, TimeMin: -2*math.Pi - 0.05, TimeMax: 0.05}
}

type Tick struct {
	Value float64
	Label string
}

// TimeTicks label the time axes from now (0) back one period.
var TimeTicks = []Tick{
	{0, "0"},
	{-math.Pi / 2, "-π/2"},
	{-math.Pi, "-π"},
	{-3 * math.Pi / 2, "-3π/2"},
	{-2 * math.Pi, "-2π"},
}
