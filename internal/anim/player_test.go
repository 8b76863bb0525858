package anim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajview/internal/anim"
	"github.com/san-kum/trajview/internal/trajectory"
)

func ramp(name string, n int) trajectory.Series {
	s := trajectory.Series{Name: name, X: make([]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		s.X[i] = float64(i)
		s.Y[i] = float64(-i)
	}
	return s
}

func drain(p *anim.Player) int {
	ticks := 0
	for p.Tick() {
		ticks++
	}
	return ticks
}

var _ = Describe("Player", func() {
	Context("with no tracks", func() {
		It("is finished before any tick", func() {
			p := anim.New()
			Expect(p.State()).To(Equal(anim.Finished))
			Expect(p.Tick()).To(BeFalse())
			Expect(p.Ticks()).To(Equal(0))
			Expect(p.Progress()).To(Equal(1.0))
		})
	})

	Context("with a single track", func() {
		var p *anim.Player

		BeforeEach(func() {
			p = anim.New(ramp("sim", 5))
		})

		It("starts idle with nothing visible", func() {
			Expect(p.State()).To(Equal(anim.Idle))
			Expect(p.Frame()).To(Equal(-1))
			x, y := p.Visible(0)
			Expect(x).To(BeEmpty())
			Expect(y).To(BeEmpty())
			Expect(p.Index(0)).To(Equal(-1))
		})

		It("reveals one point per tick", func() {
			for k := 1; k <= 5; k++ {
				Expect(p.Tick()).To(BeTrue())
				x, _ := p.Visible(0)
				Expect(x).To(HaveLen(k))
				Expect(p.Index(0)).To(Equal(k - 1))
			}
		})

		It("advances then finishes after exactly frame-count ticks", func() {
			p.Tick()
			Expect(p.State()).To(Equal(anim.Advancing))
			Expect(drain(p)).To(Equal(4))
			Expect(p.State()).To(Equal(anim.Finished))
			Expect(p.Ticks()).To(Equal(5))
			Expect(p.TrackDone(0)).To(BeTrue())
		})

		It("does not replay on its own but can be reset", func() {
			drain(p)
			Expect(p.Tick()).To(BeFalse())
			x, _ := p.Visible(0)
			Expect(x).To(HaveLen(5))

			p.Reset()
			Expect(p.State()).To(Equal(anim.Idle))
			Expect(drain(p)).To(Equal(5))
		})
	})

	Context("with tracks of 100 and 500 frames", func() {
		var p *anim.Player

		BeforeEach(func() {
			p = anim.New(ramp("short", 100), ramp("long", 500))
		})

		It("issues exactly max(frame counts) ticks", func() {
			Expect(p.MaxFrames()).To(Equal(500))
			Expect(drain(p)).To(Equal(500))
		})

		It("freezes the short track at its last sample while the long one continues", func() {
			for tick := 1; tick <= 500; tick++ {
				Expect(p.Tick()).To(BeTrue())

				sx, _ := p.Visible(0)
				lx, _ := p.Visible(1)
				Expect(len(sx)).To(BeNumerically("<=", 100))
				Expect(lx).To(HaveLen(tick))

				if tick >= 100 {
					Expect(sx).To(HaveLen(100))
					Expect(sx[len(sx)-1]).To(Equal(99.0))
					Expect(p.Index(0)).To(Equal(99))
					Expect(p.TrackDone(0)).To(BeTrue())
				}
			}
			Expect(p.Index(1)).To(Equal(499))
			Expect(p.Finished()).To(BeTrue())
		})
	})

	Context("with an empty track next to a populated one", func() {
		It("treats the empty track as already finished", func() {
			p := anim.New(trajectory.Series{Name: "empty"}, ramp("sim", 3))
			Expect(p.TrackDone(0)).To(BeTrue())
			Expect(drain(p)).To(Equal(3))

			x, y := p.Visible(0)
			Expect(x).To(BeEmpty())
			Expect(y).To(BeEmpty())
			Expect(p.Index(0)).To(Equal(-1))
		})
	})
})

var _ = DescribeTable("State strings",
	func(s anim.State, want string) {
		Expect(s.String()).To(Equal(want))
	},
	Entry("idle", anim.Idle, "idle"),
	Entry("advancing", anim.Advancing, "advancing"),
	Entry("finished", anim.Finished, "finished"),
)
