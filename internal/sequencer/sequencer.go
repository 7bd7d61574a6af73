// Package sequencer drives an epicycle animation frame by frame.
//
// A Sequencer moves through NotStarted → Running → Complete → StaticReplay.
// Bounded runs complete after resolution+1 frames; endless runs never
// complete and rely on the driver to stop calling Next.
package sequencer

import (
	"context"
	"fmt"

	"github.com/san-kum/fourier/internal/epicycle"
	"github.com/san-kum/fourier/internal/geometry"
)

type Status int

const (
	NotStarted Status = iota
	Running
	Complete
	StaticReplay
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Complete:
		return "complete"
	case StaticReplay:
		return "static replay"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

type Options struct {
	Resolution int
	Endless    bool
}

// Renderer consumes frames. Draw is called once per live frame and once more
// with the StaticReplay frame of a bounded run.
type Renderer interface {
	Draw(f geometry.Frame, status Status) error
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(f geometry.Frame, status Status) error

func (fn RendererFunc) Draw(f geometry.Frame, status Status) error { return fn(f, status) }

type Sequencer struct {
	state  *epicycle.State
	proj   *geometry.Projector
	opts   Options
	status Status
	frame  int
	err    error
}

func New(state *epicycle.State, proj *geometry.Projector, opts Options) (*Sequencer, error) {
	if opts.Resolution <= 0 {
		return nil, &epicycle.ConfigurationError{Field: "resolution", Value: opts.Resolution, Reason: "must be positive"}
	}
	if state == nil || proj == nil {
		return nil, &epicycle.ConfigurationError{Field: "sequencer", Reason: "state and projector are required"}
	}
	return &Sequencer{state: state, proj: proj, opts: opts}, nil
}

// Frames is the terminal frame count resolution+1, or 0 for endless runs.
func (s *Sequencer) Frames() int {
	if s.opts.Endless {
		return 0
	}
	return s.opts.Resolution + 1
}

func (s *Sequencer) Status() Status { return s.status }

// Frame is the index the next call to Next will compute.
func (s *Sequencer) Frame() int { return s.frame }

// Cycle is the position of the next frame within the current period.
func (s *Sequencer) Cycle() int { return s.frame % s.opts.Resolution }

func (s *Sequencer) Complete() bool { return s.status >= Complete }

func (s *Sequencer) Options() Options { return s.opts }

func (s *Sequencer) State() *epicycle.State { return s.state }

// Err is the error that aborted the run, if any.
func (s *Sequencer) Err() error { return s.err }

// Next steps the state by one frame and projects it. It returns
// ErrSequenceComplete once a bounded run has produced all frames. An error
// from the state aborts the run; every later call returns the same error.
func (s *Sequencer) Next() (geometry.Frame, error) {
	if s.err != nil {
		return geometry.Frame{}, s.err
	}
	if s.Complete() {
		return geometry.Frame{}, epicycle.ErrSequenceComplete
	}
	s.status = Running

	chain, err := s.state.Step(s.frame, s.opts.Resolution)
	if err != nil {
		s.err = fmt.Errorf("frame %d: %w", s.frame, err)
		return geometry.Frame{}, s.err
	}
	f := s.proj.Project(chain, s.state.Series())

	if !s.opts.Endless && s.frame+1 == s.Frames() {
		s.status = Complete
		return f, nil
	}
	s.frame++
	return f, nil
}

// Replay re-derives the geometry from the final history without stepping
// the state. It is valid exactly once, after a bounded run completed.
func (s *Sequencer) Replay() (geometry.Frame, error) {
	if s.status != Complete {
		return geometry.Frame{}, fmt.Errorf("replay from %s: %w", s.status, epicycle.ErrInvalidTransition)
	}
	s.status = StaticReplay
	return s.proj.Project(s.state.Chain(), s.state.Series()), nil
}

// Run drives the sequence without pacing until it completes or ctx is done.
// A bounded run ends with the StaticReplay frame. Cancellation is a normal
// stop and returns nil.
func (s *Sequencer) Run(ctx context.Context, r Renderer) error {
	for !s.Complete() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		f, err := s.Next()
		if err != nil {
			return err
		}
		if err := r.Draw(f, s.status); err != nil {
			return err
		}
	}

	if s.status == StaticReplay {
		return nil
	}
	f, err := s.Replay()
	if err != nil {
		return err
	}
	return r.Draw(f, s.status)
}
