package epicycle

import (
	"math"
)

// Chain holds the partial-sum pointers p_0..p_N of one frame. p_0 is the
// origin and p_N the reconstructed signal value.
type Chain []complex128

// End returns the reconstructed value p_N.
func (c Chain) End() complex128 {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1]
}

// Series is the accumulated time series of reconstructed values. All three
// slices always have the same length. X and Y are in frame order; Phi is the
// matching time axis, ascending to 0 so the most recent sample sits at now
// and the oldest one period per resolution frames further back.
type Series struct {
	X   []float64 // real part of p_N
	Y   []float64 // imaginary part of p_N
	Phi []float64
}

func (s Series) Len() int { return len(s.Phi) }

// State is the epicycle state machine: the fixed coefficients, the current
// angle, the pointer chain of the latest frame and the growing history.
type State struct {
	coeffs []complex128
	radii  []float64
	phi    float64
	chain  Chain
	series Series
	phis   frontBuffer
}

// New initializes a state for the given coefficients.
func New(coeffs []complex128) (*State, error) {
	s := &State{}
	if err := s.Initialize(coeffs); err != nil {
		return nil, err
	}
	return s, nil
}

// Initialize resets the angle to 0, clears the history and moves every
// pointer to the origin.
func (s *State) Initialize(coeffs []complex128) error {
	if len(coeffs) == 0 {
		return &ConfigurationError{Field: "coefficients", Reason: "at least one coefficient is required"}
	}
	if err := CheckFinite(coeffs); err != nil {
		return err
	}
	s.coeffs = make([]complex128, len(coeffs))
	copy(s.coeffs, coeffs)
	s.radii = Radii(s.coeffs)
	s.phi = 0
	s.chain = make(Chain, len(coeffs)+1)
	s.series = Series{}
	s.phis = frontBuffer{}
	return nil
}

// Angle returns phi for a frame index and resolution.
func Angle(frame, resolution int) float64 {
	return float64(-frame) / float64(resolution) * 2 * math.Pi
}

// Step advances the state by one frame. It recomputes the whole pointer chain
// for phi = -(frame/resolution)·2π and appends p_N to the history. The
// returned chain is overwritten by the next call.
//
// On a non-finite result nothing is appended, so the series lengths stay in
// sync with the number of successful steps.
func (s *State) Step(frame, resolution int) (Chain, error) {
	if resolution <= 0 {
		return nil, &ConfigurationError{Field: "resolution", Value: resolution, Reason: "must be positive"}
	}
	if s.chain == nil {
		return nil, &ConfigurationError{Field: "coefficients", Reason: "state is not initialized"}
	}

	phi := Angle(frame, resolution)
	rot := -phi

	s.chain[0] = 0
	for k, c := range s.coeffs {
		sin, cos := math.Sincos(float64(k) * rot)
		s.chain[k+1] = s.chain[k] + c*complex(cos, sin)
	}

	end := s.chain[len(s.coeffs)]
	if !isFinite(end) {
		return nil, &NumericAnomalyError{Frame: frame, Index: len(s.coeffs), Value: end}
	}

	s.phi = phi
	s.series.X = append(s.series.X, real(end))
	s.series.Y = append(s.series.Y, imag(end))
	s.series.Phi = s.phis.prepend(phi)
	return s.chain, nil
}

// Series exposes the accumulated history by reference.
func (s *State) Series() Series { return s.series }

// Len is the number of successful steps since the last Initialize.
func (s *State) Len() int { return len(s.series.Phi) }

// Chain returns the pointer chain of the latest frame, all zeros before the
// first step.
func (s *State) Chain() Chain { return s.chain }

// Phi returns the angle of the latest frame, which is also Series().Phi[0].
func (s *State) Phi() float64 { return s.phi }

func (s *State) Coefficients() []complex128 { return s.coeffs }

func (s *State) Radii() []float64 { return s.radii }

// frontBuffer grows at the front in amortized constant time. Views returned
// by prepend stay valid: later calls only write below their start.
type frontBuffer struct {
	buf   []float64
	start int
}

func (b *frontBuffer) prepend(v float64) []float64 {
	if b.start == 0 {
		n := len(b.buf) - b.start
		size := 2 * n
		if size < 64 {
			size = 64
		}
		grown := make([]float64, size)
		copy(grown[size-n:], b.buf[b.start:])
		b.buf, b.start = grown, size-n
	}
	b.start--
	b.buf[b.start] = v
	return b.buf[b.start:]
}
