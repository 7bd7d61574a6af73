package sequencer

import (
	"github.com/san-kum/fourier/internal/config"
	"github.com/san-kum/fourier/internal/epicycle"
	"github.com/san-kum/fourier/internal/geometry"
)

// Build validates cfg and wires coefficients, state, projector and sequencer
// together. The returned bounds stay fixed for the whole run.
func Build(cfg *config.Config) (*Sequencer, geometry.Bounds, error) {
	if err := cfg.Validate(); err != nil {
		return nil, geometry.Bounds{}, err
	}
	coeffs, err := cfg.Resolve()
	if err != nil {
		return nil, geometry.Bounds{}, err
	}
	state, err := epicycle.New(coeffs)
	if err != nil {
		return nil, geometry.Bounds{}, err
	}
	proj := geometry.NewProjector(state.Radii(), cfg.ShowNegative)
	seq, err := New(state, proj, Options{Resolution: cfg.Resolution, Endless: cfg.Endless})
	if err != nil {
		return nil, geometry.Bounds{}, err
	}
	return seq, geometry.Limits(state.Radii()), nil
}
