package mgcep

import (
	"math"

	gosptk "github.com/neurlang/gosptk"
	"github.com/neurlang/gosptk/gcep"
)

// Output-type codes for MGCep, composing gain de-normalization, conversion
// to MLSA-style coefficients, gain re-normalization and gamma scaling.
const (
	OTypeCepstrum         = 0 // mel-generalized cepstrum c
	OTypeB                = 1 // gain K and MLSA-style coefficients b'
	OTypeNormCepstrum     = 2 // gain K and normalized cepstrum c'
	OTypeNormB            = 3 // same shaping as 1
	OTypeNormCepstrumGain = 4 // as 2, higher coefficients scaled by gamma
	OTypeBGamma           = 5 // as 1, higher coefficients scaled by gamma
)

// Analyzer holds the configuration of the spectral analysis engine. One
// Analyzer may be shared by concurrent frames: every method is a pure
// function of its inputs.
type Analyzer struct {
	Order  int     // order of the estimated coefficient vector
	Alpha  float64 // frequency-warping constant
	Gamma  float64 // power-law compression exponent, in [-1, 0]
	FFTLen int     // spectral grid size, power of two

	// Recursions is the order of the unwarping recursions inside the
	// engine; 0 selects FFTLen/2 - 1.
	Recursions int

	MinIter   int     // minimum refinement passes before convergence may stop
	MaxIter   int     // hard bound on refinement passes
	Threshold float64 // relative criterion change considered converged

	EType int     // flooring policy, see EType constants
	Eps   float64 // periodogram floor, meaningful for EType 1 and 2

	MinDet float64 // determinant floor of the solve, at unit mean power

	IType int // frame interpretation, see IType constants
}

// New returns an Analyzer with the customary defaults: order 25, alpha 0.35,
// gamma 0, 256-point grid, 2..30 iterations with threshold 0.001.
func New() *Analyzer {
	return &Analyzer{
		Order:     25,
		Alpha:     0.35,
		Gamma:     0,
		FFTLen:    256,
		MinIter:   2,
		MaxIter:   30,
		Threshold: 0.001,
		EType:     ETypeNone,
		Eps:       0,
		MinDet:    1e-6,
		IType:     ITypeWaveform,
	}
}

func (an *Analyzer) validate() (recursions int, err error) {
	if err := gosptk.CheckOrder(an.Order); err != nil {
		return 0, err
	}
	if err := gosptk.CheckFFTLen(an.FFTLen); err != nil {
		return 0, err
	}
	if err := gosptk.CheckGamma(an.Gamma); err != nil {
		return 0, err
	}
	if an.Alpha <= -1 || an.Alpha >= 1 {
		return 0, &gosptk.ValidationError{Param: "alpha", Msg: "must be in (-1, 1)"}
	}
	if an.MinIter < 0 || an.MaxIter < 1 || an.MinIter > an.MaxIter {
		return 0, &gosptk.ValidationError{Param: "iteration budget", Msg: "need 0 <= miniter <= maxiter, maxiter >= 1"}
	}
	if an.Threshold < 0 {
		return 0, &gosptk.ValidationError{Param: "threshold", Msg: "must be >= 0"}
	}
	if an.MinDet < 0 {
		return 0, &gosptk.ValidationError{Param: "min_det", Msg: "must be >= 0"}
	}
	recursions = an.Recursions
	if recursions == 0 {
		recursions = an.FFTLen/2 - 1
	}
	if recursions < 2*an.Order || recursions >= an.FFTLen {
		return 0, &gosptk.ValidationError{Param: "recursions", Msg: "need 2*order <= recursions < fftlen"}
	}
	return recursions, nil
}

// MGCep fits a mel-generalized cepstrum of the configured order to a frame
// and shapes the result according to otype. The frame must hold at least
// order+1 samples.
func (an *Analyzer) MGCep(frame []float64, otype int) ([]float64, error) {
	if otype < OTypeCepstrum || otype > OTypeBGamma {
		return nil, &gosptk.ValidationError{Param: "otype", Msg: "must be 0..5"}
	}
	n, err := an.validate()
	if err != nil {
		return nil, err
	}
	if len(frame) < an.Order+1 {
		return nil, &gosptk.ValidationError{Param: "frame", Msg: "length must be >= order+1"}
	}
	x, err := periodogram(frame, an.IType, an.FFTLen, an.EType, an.Eps)
	if err != nil {
		return nil, err
	}

	// The fit runs on a unit-mean periodogram, keeping the determinant
	// floor independent of the frame level; the level re-enters through
	// the gain.
	xscale := 0.0
	for _, v := range x {
		xscale += v
	}
	xscale /= float64(an.FFTLen)
	for i := range x {
		x[i] /= xscale
	}

	m := an.Order
	c := make([]float64, m+1)

	// Linear-prediction style first pass (gamma = -1) seeds the iteration.
	ep, err := newtonStep(x, c, m, an.Alpha, -1, n, an.FFTLen, an.MinDet)
	if err != nil {
		return nil, err
	}
	if an.Gamma != -1 {
		c, err = gcep.GC2GC(c, -1, m, an.Gamma)
		if err != nil {
			return nil, err
		}
		ep = 0
	}

	for j := 1; j <= an.MaxIter; j++ {
		epo := ep
		ep, err = newtonStep(x, c, m, an.Alpha, an.Gamma, n, an.FFTLen, an.MinDet)
		if err != nil {
			return nil, err
		}
		if j >= an.MinIter && ep > 0 && math.Abs((epo-ep)/ep) < an.Threshold {
			break
		}
	}
	c[0] = math.Sqrt(ep * xscale)

	return an.shape(c, otype)
}

// shape applies the output-type table to the gain-normalized cepstrum
// produced by the engine.
func (an *Analyzer) shape(cn []float64, otype int) ([]float64, error) {
	g := an.Gamma
	switch otype {
	case OTypeCepstrum:
		return gcep.Ignorm(cn, g)
	case OTypeB, OTypeNormB, OTypeBGamma:
		c, err := gcep.Ignorm(cn, g)
		if err != nil {
			return nil, err
		}
		b, err := MC2B(c, an.Alpha)
		if err != nil {
			return nil, err
		}
		// Re-normalizing in the b domain makes the stored gain the exact
		// multiplier of the realized transfer function.
		out, err := gcep.Gnorm(b, g)
		if err != nil {
			return nil, err
		}
		if otype == OTypeBGamma {
			scaleTail(out, g)
		}
		return out, nil
	case OTypeNormCepstrum, OTypeNormCepstrumGain:
		out := make([]float64, len(cn))
		copy(out, cn)
		if otype == OTypeNormCepstrumGain {
			scaleTail(out, g)
		}
		return out, nil
	}
	return nil, &gosptk.ValidationError{Param: "otype", Msg: "must be 0..5"}
}

func scaleTail(c []float64, gamma float64) {
	for i := 1; i < len(c); i++ {
		c[i] *= gamma
	}
}

// MCep is mel-cepstral analysis: the gamma=0 specialization, returning the
// de-normalized mel-cepstrum.
func (an *Analyzer) MCep(frame []float64) ([]float64, error) {
	sub := *an
	sub.Gamma = 0
	return sub.MGCep(frame, OTypeCepstrum)
}

// GCep is generalized cepstral analysis on the linear frequency axis: the
// alpha=0 specialization, returning the de-normalized generalized cepstrum.
func (an *Analyzer) GCep(frame []float64) ([]float64, error) {
	sub := *an
	sub.Alpha = 0
	return sub.MGCep(frame, OTypeCepstrum)
}

// UELS is the unbiased estimate of the log spectrum: plain cepstral analysis,
// the alpha=0, gamma=0 specialization.
func (an *Analyzer) UELS(frame []float64) ([]float64, error) {
	sub := *an
	sub.Alpha = 0
	sub.Gamma = 0
	return sub.MGCep(frame, OTypeCepstrum)
}
