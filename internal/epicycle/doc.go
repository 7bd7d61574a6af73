// Package epicycle provides the core state of a Fourier-synthesis epicycle
// animation.
//
// The package reconstructs a periodic signal as the vector sum of rotating
// circles, one per complex Fourier coefficient:
//
//   - [Provider]: produces the coefficient sequence for a [Shape] or an explicit list
//   - [State]: current angle plus the growing time series of reconstructed values
//   - [Chain]: the per-frequency partial-sum pointers of the current frame
//
// # Example
//
//	coeffs, _ := epicycle.FromShape(epicycle.Rectangular, 9)
//	st, _ := epicycle.New(coeffs)
//	for i := 0; i <= 256; i++ {
//	    chain, err := st.Step(i, 256)
//	    ...
//	}
//
// # Phase Convention
//
// The stored angle phi is negative elapsed phase, phi(i) = -(i/n)·2π, so the
// most recent sample always sits at phi = 0 and history trails into negative
// time. The rotation itself uses -phi. [Series] keeps X and Y in frame order
// and pairs them with an angle axis that ends at 0: each new angle is
// conceptually prepended, so the newest sample is plotted at now.
//
// # Thread Safety
//
// State instances are NOT thread-safe. Slices returned by [State.Series] and
// [State.Step] are shared with the state and must be treated as read-only.
package epicycle
