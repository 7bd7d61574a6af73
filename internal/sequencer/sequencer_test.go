package sequencer_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fourier/internal/config"
	"github.com/san-kum/fourier/internal/epicycle"
	"github.com/san-kum/fourier/internal/geometry"
	"github.com/san-kum/fourier/internal/sequencer"
)

func build(coeffs []complex128, opts sequencer.Options, negative bool) *sequencer.Sequencer {
	st, err := epicycle.New(coeffs)
	Expect(err).NotTo(HaveOccurred())
	seq, err := sequencer.New(st, geometry.NewProjector(st.Radii(), negative), opts)
	Expect(err).NotTo(HaveOccurred())
	return seq
}

type recorder struct {
	statuses []sequencer.Status
	frames   []geometry.Frame
}

func (r *recorder) Draw(f geometry.Frame, status sequencer.Status) error {
	r.frames = append(r.frames, f)
	r.statuses = append(r.statuses, status)
	return nil
}

var _ = Describe("Sequencer", func() {
	Context("bounded cosine with resolution 4", func() {
		var seq *sequencer.Sequencer

		BeforeEach(func() {
			seq = build([]complex128{0, 1}, sequencer.Options{Resolution: 4}, false)
		})

		It("starts in NotStarted with n_frames = resolution + 1", func() {
			Expect(seq.Status()).To(Equal(sequencer.NotStarted))
			Expect(seq.Frames()).To(Equal(5))
		})

		It("runs exactly five frames and then completes", func() {
			for i := 0; i < 4; i++ {
				_, err := seq.Next()
				Expect(err).NotTo(HaveOccurred())
				Expect(seq.Status()).To(Equal(sequencer.Running))
			}
			_, err := seq.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(seq.Status()).To(Equal(sequencer.Complete))

			_, err = seq.Next()
			Expect(errors.Is(err, epicycle.ErrSequenceComplete)).To(BeTrue())

			s := seq.State().Series()
			Expect(s.X).To(HaveLen(5))
			Expect(s.Y).To(HaveLen(5))
			Expect(s.Phi[4]).To(Equal(0.0))
			Expect(s.Phi[0]).To(BeNumerically("~", -2*math.Pi, 1e-12))
			Expect(s.X[0]).To(BeNumerically("~", math.Cos(0), 1e-12))
		})

		It("replays exactly once without stepping the state", func() {
			for !seq.Complete() {
				_, err := seq.Next()
				Expect(err).NotTo(HaveOccurred())
			}
			f, err := seq.Replay()
			Expect(err).NotTo(HaveOccurred())
			Expect(seq.Status()).To(Equal(sequencer.StaticReplay))
			Expect(seq.State().Len()).To(Equal(5))
			Expect(f.ComplexPlane[0].X).To(HaveLen(5))

			_, err = seq.Replay()
			Expect(errors.Is(err, epicycle.ErrInvalidTransition)).To(BeTrue())
			Expect(seq.State().Len()).To(Equal(5))
		})

		It("refuses to replay before completion", func() {
			_, err := seq.Replay()
			Expect(errors.Is(err, epicycle.ErrInvalidTransition)).To(BeTrue())
			Expect(seq.Status()).To(Equal(sequencer.NotStarted))
		})

		It("draws every frame and the replay through Run", func() {
			r := &recorder{}
			Expect(seq.Run(context.Background(), r)).To(Succeed())

			Expect(r.frames).To(HaveLen(6))
			Expect(r.statuses[0]).To(Equal(sequencer.Running))
			Expect(r.statuses[4]).To(Equal(sequencer.Complete))
			Expect(r.statuses[5]).To(Equal(sequencer.StaticReplay))
			Expect(seq.State().Len()).To(Equal(5))
		})
	})

	Context("endless mode", func() {
		It("never completes and keeps the frame index growing", func() {
			seq := build([]complex128{0, 1}, sequencer.Options{Resolution: 4, Endless: true}, false)
			Expect(seq.Frames()).To(Equal(0))

			for i := 0; i < 23; i++ {
				_, err := seq.Next()
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(seq.Status()).To(Equal(sequencer.Running))
			Expect(seq.Frame()).To(Equal(23))
			Expect(seq.Cycle()).To(Equal(3))

			s := seq.State().Series()
			Expect(s.Phi).To(HaveLen(23))
			// phase periodicity: frame 20 lands where frame 0 did
			Expect(s.X[20]).To(BeNumerically("~", s.X[0], 1e-9))
			Expect(s.Y[20]).To(BeNumerically("~", s.Y[0], 1e-9))
			Expect(s.Phi[22]).To(Equal(0.0))
			Expect(s.Phi[0]).To(BeNumerically("~", -11*math.Pi, 1e-9))
		})

		It("stops without error when the driver cancels", func() {
			seq := build([]complex128{0, 1}, sequencer.Options{Resolution: 8, Endless: true}, false)
			ctx, cancel := context.WithCancel(context.Background())

			drawn := 0
			r := sequencer.RendererFunc(func(geometry.Frame, sequencer.Status) error {
				drawn++
				if drawn == 12 {
					cancel()
				}
				return nil
			})
			Expect(seq.Run(ctx, r)).To(Succeed())
			Expect(drawn).To(Equal(12))
			Expect(seq.Status()).To(Equal(sequencer.Running))
		})
	})

	Context("negative frequencies", func() {
		It("emits one mirrored artifact per positive one", func() {
			coeffs, err := epicycle.FromShape(epicycle.Rectangular, 5)
			Expect(err).NotTo(HaveOccurred())

			on := build(coeffs, sequencer.Options{Resolution: 16}, true)
			f, err := on.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Circles).To(HaveLen(6))
			Expect(f.Segments).To(HaveLen(6))

			off := build(coeffs, sequencer.Options{Resolution: 16}, false)
			f, err = off.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Circles).To(HaveLen(3))
			for _, c := range f.Circles {
				Expect(c.Sign).To(Equal(geometry.Positive))
			}
		})
	})

	Context("errors", func() {
		It("rejects a non-positive resolution", func() {
			st, _ := epicycle.New([]complex128{1})
			_, err := sequencer.New(st, geometry.NewProjector(st.Radii(), false), sequencer.Options{Resolution: 0})
			Expect(errors.Is(err, epicycle.ErrConfiguration)).To(BeTrue())
		})

		It("aborts the run on a numeric anomaly", func() {
			seq := build([]complex128{math.MaxFloat64, math.MaxFloat64}, sequencer.Options{Resolution: 4}, false)
			r := &recorder{}
			err := seq.Run(context.Background(), r)
			Expect(errors.Is(err, epicycle.ErrNumericAnomaly)).To(BeTrue())
			Expect(r.frames).To(BeEmpty())
			Expect(seq.Err()).To(MatchError(err))

			_, err = seq.Next()
			Expect(errors.Is(err, epicycle.ErrNumericAnomaly)).To(BeTrue())
			Expect(seq.State().Len()).To(Equal(0))
		})

		It("surfaces renderer errors", func() {
			seq := build([]complex128{0, 1}, sequencer.Options{Resolution: 4}, false)
			boom := errors.New("renderer gone")
			err := seq.Run(context.Background(), sequencer.RendererFunc(func(geometry.Frame, sequencer.Status) error {
				return boom
			}))
			Expect(err).To(MatchError(boom))
		})
	})

	Context("built from a config", func() {
		It("wires shape, resolution and mirroring", func() {
			cfg := config.GetPreset("square")
			cfg.Resolution = 16
			cfg.ShowNegative = true

			seq, bounds, err := sequencer.Build(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(seq.Frames()).To(Equal(17))
			Expect(bounds.Value).To(BeNumerically(">", 1))

			f, err := seq.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(f.ComplexPlane).To(HaveLen(2))
		})

		It("rejects an invalid config", func() {
			cfg := config.DefaultConfig()
			cfg.Resolution = -1
			_, _, err := sequencer.Build(cfg)
			Expect(errors.Is(err, epicycle.ErrConfiguration)).To(BeTrue())
		})

		It("honors endless mode", func() {
			cfg := config.GetPreset("spiral")
			seq, _, err := sequencer.Build(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(seq.Frames()).To(Equal(0))
			Expect(seq.Options().Endless).To(BeTrue())
		})
	})
})
