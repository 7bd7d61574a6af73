package epicycle

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestStateStepCosine(t *testing.T) {
	st, err := New([]complex128{0, 1})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	n := 4
	for i := 0; i <= n; i++ {
		if _, err := st.Step(i, n); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}

	s := st.Series()
	if s.Len() != 5 || len(s.X) != 5 || len(s.Y) != 5 {
		t.Fatalf("expected 5 samples, got phi=%d x=%d y=%d", len(s.Phi), len(s.X), len(s.Y))
	}

	// X[0] was computed at phi = 0
	if math.Abs(s.X[0]-1) > 1e-12 {
		t.Errorf("expected cos(0) = 1, got %f", s.X[0])
	}

	// a quarter period later the pure cosine coefficient has rotated to i
	if math.Abs(s.X[1]) > 1e-12 || math.Abs(s.Y[1]-1) > 1e-12 {
		t.Errorf("expected (0, 1) at frame 1, got (%f, %f)", s.X[1], s.Y[1])
	}

	// the newest sample is at now, the oldest one period back
	want := []float64{-2 * math.Pi, -3 * math.Pi / 2, -math.Pi, -math.Pi / 2, 0}
	for j := range want {
		if math.Abs(s.Phi[j]-want[j]) > 1e-12 {
			t.Errorf("phi[%d] = %f, want %f", j, s.Phi[j], want[j])
		}
	}
	if st.Phi() != s.Phi[0] {
		t.Errorf("Phi() should be the angle of the latest frame, got %f", st.Phi())
	}
}

func TestStatePhiViewsStable(t *testing.T) {
	st, _ := New([]complex128{0, 1})

	var views [][]float64
	for i := 0; i < 200; i++ {
		st.Step(i, 10)
		views = append(views, st.Series().Phi)
	}

	for m, v := range views {
		if len(v) != m+1 {
			t.Fatalf("view %d has length %d", m, len(v))
		}
		if v[len(v)-1] != 0 {
			t.Errorf("view %d does not end at now: %f", m, v[len(v)-1])
		}
		if math.Abs(v[0]-Angle(m, 10)) > 1e-12 {
			t.Errorf("view %d starts at %f, want %f", m, v[0], Angle(m, 10))
		}
	}
}

func TestStateSeriesLengths(t *testing.T) {
	coeffs, _ := FromShape(Rectangular, 7)
	st, _ := New(coeffs)

	for m := 1; m <= 50; m++ {
		if _, err := st.Step(m-1, 16); err != nil {
			t.Fatalf("step failed: %v", err)
		}
		s := st.Series()
		if len(s.X) != m || len(s.Y) != m || len(s.Phi) != m || st.Len() != m {
			t.Fatalf("after %d steps: x=%d y=%d phi=%d", m, len(s.X), len(s.Y), len(s.Phi))
		}
	}
}

func TestStateChainOrigin(t *testing.T) {
	st, _ := New([]complex128{2 + 1i, 1, 0.5i})

	for i := 0; i < 20; i++ {
		chain, err := st.Step(i, 7)
		if err != nil {
			t.Fatalf("step failed: %v", err)
		}
		if len(chain) != 4 {
			t.Fatalf("expected 4 pointers, got %d", len(chain))
		}
		if chain[0] != 0 {
			t.Errorf("frame %d: p_0 = %v, want origin", i, chain[0])
		}
		// DC term is never rotated
		if chain[1] != 2+1i {
			t.Errorf("frame %d: p_1 = %v, want DC offset", i, chain[1])
		}
	}
}

func TestStateDeterminism(t *testing.T) {
	coeffs, _ := FromShape(Triangular, 9)
	frames := []int{0, 1, 3, 17, 256, 1000}

	for _, i := range frames {
		a, _ := New(coeffs)
		b, _ := New(coeffs)

		// b has history, a does not; the chain depends on the frame only
		for j := 0; j < 5; j++ {
			b.Step(j, 32)
		}

		ca, err := a.Step(i, 32)
		if err != nil {
			t.Fatal(err)
		}
		cb, err := b.Step(i, 32)
		if err != nil {
			t.Fatal(err)
		}
		if ca.End() != cb.End() {
			t.Errorf("frame %d: endpoints differ: %v vs %v", i, ca.End(), cb.End())
		}
	}
}

func TestStateReconstruction(t *testing.T) {
	coeffs := []complex128{0.25, 1 - 0.5i, 0, 0.3i}
	st, _ := New(coeffs)

	n := 12
	for i := 0; i < 3*n; i++ {
		chain, err := st.Step(i, n)
		if err != nil {
			t.Fatal(err)
		}
		theta := float64(i) / float64(n) * 2 * math.Pi
		var want complex128
		for k, c := range coeffs {
			want += c * cmplx.Exp(complex(0, float64(k)*theta))
		}
		if cmplx.Abs(chain.End()-want) > 1e-9 {
			t.Errorf("frame %d: got %v, want %v", i, chain.End(), want)
		}
	}
}

func TestStateInitialize(t *testing.T) {
	st, _ := New([]complex128{0, 1})
	for i := 0; i < 3; i++ {
		st.Step(i, 8)
	}

	if err := st.Initialize([]complex128{0, 0, 1}); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if st.Len() != 0 || st.Phi() != 0 {
		t.Errorf("expected empty history, got len=%d phi=%f", st.Len(), st.Phi())
	}
	for k, p := range st.Chain() {
		if p != 0 {
			t.Errorf("pointer %d not at origin: %v", k, p)
		}
	}
	if len(st.Chain()) != 4 {
		t.Errorf("expected 4 pointers, got %d", len(st.Chain()))
	}
}

func TestStateErrors(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected configuration error for empty coefficients, got %v", err)
	}

	if _, err := New([]complex128{complex(math.NaN(), 0)}); !errors.Is(err, ErrNumericAnomaly) {
		t.Errorf("expected numeric anomaly, got %v", err)
	}

	st, _ := New([]complex128{1})
	for _, n := range []int{0, -4} {
		if _, err := st.Step(0, n); !errors.Is(err, ErrConfiguration) {
			t.Errorf("resolution %d: expected configuration error, got %v", n, err)
		}
	}
	if st.Len() != 0 {
		t.Errorf("failed steps must not grow the series, got %d", st.Len())
	}

	var zero State
	if _, err := zero.Step(0, 4); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected configuration error on uninitialized state, got %v", err)
	}
}

func TestStateOverflow(t *testing.T) {
	st, _ := New([]complex128{math.MaxFloat64, math.MaxFloat64})
	_, err := st.Step(0, 4)

	var na *NumericAnomalyError
	if !errors.As(err, &na) {
		t.Fatalf("expected *NumericAnomalyError, got %v", err)
	}
	if na.Frame != 0 {
		t.Errorf("expected frame 0, got %d", na.Frame)
	}
	if st.Len() != 0 {
		t.Errorf("anomalous frame must not be appended, got %d samples", st.Len())
	}
}
