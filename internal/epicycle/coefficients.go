package epicycle

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"strings"
)

// Shape selects a predefined coefficient sequence.
type Shape string

const (
	Cosine      Shape = "cos"
	Sine        Shape = "sin"
	Rectangular Shape = "rect"
	Triangular  Shape = "tri"
)

var shapeAliases = map[string]Shape{
	"cos":         Cosine,
	"cosine":      Cosine,
	"sin":         Sine,
	"sine":        Sine,
	"rect":        Rectangular,
	"rectangular": Rectangular,
	"square":      Rectangular,
	"tri":         Triangular,
	"triangular":  Triangular,
	"triangle":    Triangular,
}

var shapes = map[Shape]func(order int) []complex128{
	Cosine: func(int) []complex128 { return []complex128{0, 1} },
	Sine:   func(int) []complex128 { return []complex128{0, -1i} },
	Rectangular: func(order int) []complex128 {
		return oddHarmonics(order, func(k float64) complex128 { return complex(0, -1/k) })
	},
	Triangular: func(order int) []complex128 {
		return oddHarmonics(order, func(k float64) complex128 { return complex(1/(k*k), 0) })
	},
}

// oddHarmonics fills indices 0..order, leaving even indices (DC included) at
// zero so k=0 is never used as a divisor.
func oddHarmonics(order int, coeff func(k float64) complex128) []complex128 {
	c := make([]complex128, order+1)
	for k := 1; k <= order; k += 2 {
		c[k] = coeff(float64(k))
	}
	return c
}

// ParseShape resolves a shape name or one of its long aliases.
func ParseShape(name string) (Shape, error) {
	s, ok := shapeAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", &ConfigurationError{Field: "shape", Value: name, Reason: fmt.Sprintf("unknown shape (available: %v)", Shapes())}
	}
	return s, nil
}

// Shapes lists the canonical shape names.
func Shapes() []Shape {
	names := make([]Shape, 0, len(shapes))
	for s := range shapes {
		names = append(names, s)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// FromShape builds the coefficient sequence of a predefined shape. The order
// only applies to rect and tri; order 0 yields the DC term alone.
func FromShape(shape Shape, order int) ([]complex128, error) {
	fn, ok := shapes[shape]
	if !ok {
		return nil, &ConfigurationError{Field: "shape", Value: string(shape), Reason: "unknown shape"}
	}
	if order < 0 {
		return nil, &ConfigurationError{Field: "order", Value: order, Reason: "must not be negative"}
	}
	return fn(order), nil
}

// Provider produces the coefficient sequence of a run. A non-empty Explicit
// list takes precedence over Shape and Order.
type Provider struct {
	Explicit []complex128
	Shape    Shape
	Order    int
}

func NewProvider(explicit []complex128, shape Shape, order int) Provider {
	return Provider{Explicit: explicit, Shape: shape, Order: order}
}

// Coefficients returns a fresh copy of the resolved sequence.
func (p Provider) Coefficients() ([]complex128, error) {
	var c []complex128
	if len(p.Explicit) > 0 {
		c = make([]complex128, len(p.Explicit))
		copy(c, p.Explicit)
	} else {
		if p.Shape == "" {
			return nil, &ConfigurationError{Field: "coefficients", Reason: "neither a shape nor an explicit list was given"}
		}
		var err error
		if c, err = FromShape(p.Shape, p.Order); err != nil {
			return nil, err
		}
	}
	if err := CheckFinite(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CheckFinite reports the first non-finite coefficient.
func CheckFinite(coeffs []complex128) error {
	for k, c := range coeffs {
		if cmplx.IsNaN(c) || cmplx.IsInf(c) {
			return &NumericAnomalyError{Frame: -1, Index: k, Value: c}
		}
	}
	return nil
}

// Radii returns r_k = |c_k| for every coefficient.
func Radii(coeffs []complex128) []float64 {
	r := make([]float64, len(coeffs))
	for k, c := range coeffs {
		r[k] = cmplx.Abs(c)
	}
	return r
}

// MaxAmplitude is the sum of all radii, the furthest the chain can reach
// from the origin.
func MaxAmplitude(radii []float64) float64 {
	sum := 0.0
	for _, r := range radii {
		sum += r
	}
	return sum
}

func isFinite(z complex128) bool {
	return !math.IsNaN(real(z)) && !math.IsNaN(imag(z)) && !math.IsInf(real(z), 0) && !math.IsInf(imag(z), 0)
}
