package viz

import (
	"math"
	"sort"

	"github.com/charmbracelet/harmonica"

	"github.com/san-kum/fourier/internal/geometry"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// CameraFPS is the rate Settle is expected to be called at.
const CameraFPS = 60

// Camera manages 3D projection to a 2D plane. Zoom eases toward its target
// on a critically damped spring.
type Camera struct {
	Position         Vec3
	Near             float64
	RotX, RotY, RotZ float64
	Zoom             float64

	zoomTarget float64
	zoomVel    float64
	spring     harmonica.Spring
}

// NewCamera looks at the trajectory from slightly above and to the side, so
// the time axis runs diagonally across the view.
func NewCamera() *Camera {
	return &Camera{
		Position:   Vec3{0, 0, 5},
		Near:       0.1,
		Zoom:       1.0,
		RotX:       0.35,
		RotY:       -0.6,
		zoomTarget: 1.0,
		spring:     harmonica.NewSpring(harmonica.FPS(CameraFPS), 8.0, 1.0),
	}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.zoomTarget = math.Min(10, c.zoomTarget*1.2) }
func (c *Camera) ZoomOut()          { c.zoomTarget = math.Max(0.1, c.zoomTarget/1.2) }

// Settle advances the zoom spring by one step and reports whether the zoom
// has reached its target.
func (c *Camera) Settle() bool {
	c.Zoom, c.zoomVel = c.spring.Update(c.Zoom, c.zoomVel, c.zoomTarget)
	if math.Abs(c.Zoom-c.zoomTarget) < 1e-3 && math.Abs(c.zoomVel) < 1e-3 {
		c.Zoom, c.zoomVel = c.zoomTarget, 0
		return true
	}
	return false
}

// ZoomTarget is the zoom level the camera is easing toward.
func (c *Camera) ZoomTarget() float64 { return c.zoomTarget }

// RotatePoint rotates a point around the camera's axes.
func (c *Camera) RotatePoint(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project converts 3D world coordinates to 2D sub-pixel coordinates.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	dist := c.Position.Z
	if rot.Z >= dist-c.Near {
		return 0, 0, 0, false
	}
	scale := dist / (dist - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.0
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End Vec3
	Pen        Pen
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe                { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3, p Pen) { w.Edges = append(w.Edges, Edge{s, e, p}) }

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
	pen            Pen
}

// Render3D draws the wireframe to the canvas using a simple painter's algorithm.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	sw, sh := c.Width*2, c.Height*4
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, v2 := cam.Project(e.End, sw, sh)
		if v1 || v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Pen})
		}
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		c.SetPen(e.pen)
		c.DrawLine(e.x1, e.y1, e.x2, e.y2)
	}
}

// TrajectoryWireframe maps the (time, imaginary, real) curves into a unit
// cube: time along X, real part up, imaginary part into the screen. Only the
// last period is shown; older samples fall outside the time axis.
func TrajectoryWireframe(lines []geometry.Line3D, b geometry.Bounds) *Wireframe {
	w := NewWireframe()
	mid := (b.TimeMin + b.TimeMax) / 2
	half := (b.TimeMax - b.TimeMin) / 2
	point := func(t, im, re float64) Vec3 {
		return Vec3{X: (t - mid) / half, Y: re / b.Value, Z: im / b.Value}
	}

	w.AddEdge(point(-2*math.Pi, 0, 0), point(0, 0, 0), PenAxis)

	for _, l := range lines {
		pen := PenPositive
		if l.Sign == geometry.Negative {
			pen = PenNegative
		}
		start := firstInWindow(l.X, b.TimeMin)
		for i := start + 1; i < len(l.X); i++ {
			w.AddEdge(point(l.X[i-1], l.Y[i-1], l.Z[i-1]), point(l.X[i], l.Y[i], l.Z[i]), pen)
		}
	}
	return w
}

// firstInWindow returns the first index whose time is not older than oldest.
// Times are ascending.
func firstInWindow(t []float64, oldest float64) int {
	return sort.Search(len(t), func(i int) bool { return t[i] >= oldest })
}
