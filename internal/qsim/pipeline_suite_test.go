package qsim_test

import (
	"bytes"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Alper-bit/QTunelling-API/internal/analysis"
	"github.com/Alper-bit/QTunelling-API/internal/encode"
	"github.com/Alper-bit/QTunelling-API/internal/qsim"
)

func TestPipeline(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pipeline Suite")
}

// The reference scenario: N=200 keeps the 199x199 diagonalization fast while
// exercising every stage end to end.
func scenarioParams() qsim.SimulationParameters {
	p := qsim.DefaultParameters()
	p.N = 200
	p.TMax = 0.01
	return p
}

var _ = Describe("Engine.Run", func() {
	engine := qsim.NewEngine(qsim.DefaultBarrierHeight)

	It("produces the documented shapes for the reference scenario", func() {
		res, err := engine.Run(scenarioParams())
		Expect(err).NotTo(HaveOccurred())

		Expect(res.X).To(HaveLen(201))
		Expect(res.Interior).To(HaveLen(199))
		Expect(res.Potential).To(HaveLen(201))
		Expect(res.Eigenvalues).To(HaveLen(199))
		Expect(res.BarrierHeight).To(Equal(800.0))
		Expect(len(res.Frames)).To(BeNumerically("<=", 11))
		Expect(res.Frames[0].Time).To(Equal(0.0))
	})

	It("keeps every frame normalized", func() {
		res, err := engine.Run(scenarioParams())
		Expect(err).NotTo(HaveOccurred())

		for _, f := range res.Frames {
			Expect(qsim.Norm(f.Psi, res.Step)).To(BeNumerically("~", 1.0, 1e-3))
		}
	})

	It("returns the initial packet as the first frame", func() {
		res, err := engine.Run(scenarioParams())
		Expect(err).NotTo(HaveOccurred())

		psi0 := qsim.InitialWavePacket(res.Interior, res.Params.Momentum, res.Params.Sigma, res.Params.X0, res.Step)
		for i, c := range res.Frames[0].Psi {
			Expect(real(c)).To(BeNumerically("~", real(psi0[i]), 1e-8))
			Expect(imag(c)).To(BeNumerically("~", imag(psi0[i]), 1e-8))
		}
	})

	It("is byte-deterministic across identical requests", func() {
		a, err := engine.Run(scenarioParams())
		Expect(err).NotTo(HaveOccurred())
		b, err := engine.Run(scenarioParams())
		Expect(err).NotTo(HaveOccurred())

		bufA, err := encode.Binary{}.Encode(a)
		Expect(err).NotTo(HaveOccurred())
		bufB, err := encode.Binary{}.Encode(b)
		Expect(err).NotTo(HaveOccurred())
		Expect(bytes.Equal(bufA, bufB)).To(BeTrue())
	})

	It("honors the binary size invariant", func() {
		res, err := engine.Run(scenarioParams())
		Expect(err).NotTo(HaveOccurred())

		buf, err := encode.Binary{}.Encode(res)
		Expect(err).NotTo(HaveOccurred())

		gs, fc := len(res.Interior), len(res.Frames)
		Expect(buf).To(HaveLen(8 + 4*gs + fc*8*gs))
	})

	It("bounds the frame count by max_frames, keeping both endpoints", func() {
		p := scenarioParams()
		p.TMax = 0.1
		p.MaxFrames = 7

		res, err := engine.Run(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Frames).To(HaveLen(7))
		Expect(res.Frames[0].Time).To(Equal(0.0))

		full := p.TimeSamples()
		Expect(res.Frames[6].Time).To(Equal(full[len(full)-1]))
	})

	It("drifts with the sign of the initial momentum when the barrier is flat", func() {
		free := qsim.NewEngine(0)
		p := scenarioParams()

		res, err := free.Run(p)
		Expect(err).NotTo(HaveOccurred())

		first := analysis.CenterOfMass(res, res.Frames[0])
		last := analysis.CenterOfMass(res, res.Frames[len(res.Frames)-1])
		Expect(last).To(BeNumerically(">", first))

		p.Momentum = -p.Momentum
		p.X0 = 3.0
		res, err = free.Run(p)
		Expect(err).NotTo(HaveOccurred())

		first = analysis.CenterOfMass(res, res.Frames[0])
		last = analysis.CenterOfMass(res, res.Frames[len(res.Frames)-1])
		Expect(last).To(BeNumerically("<", first))
	})

	It("rejects invalid domains before any computation", func() {
		p := scenarioParams()
		p.N = 2
		_, err := engine.Run(p)
		Expect(err).To(MatchError(qsim.ErrInvalidDomain))
	})

	It("yields exactly one frame for num_time_steps=1", func() {
		p := scenarioParams()
		p.NumTimeSteps = 1

		res, err := engine.Run(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Frames).To(HaveLen(1))
		Expect(res.Frames[0].Time).To(Equal(0.0))
	})
})
