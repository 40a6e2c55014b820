package lpc

import (
	"math"

	gosptk "github.com/neurlang/gosptk"
)

// LSP frequency units accepted by LSP2LPC and produced by LPC2LSP.
const (
	UnitRadian     = 0 // normalized angular frequency, (0, pi)
	UnitNormalized = 1 // normalized frequency, (0, 0.5)
	UnitKHz        = 2 // kilohertz, requires SampleRate
	UnitHz         = 3 // hertz, requires SampleRate
)

// LSPOptions controls root finding and the shape of the LSP vector.
// The zero value selects a 128-point sweep, 8 bisection refinements per
// bracket, eps 1e-6, raw gain and radian output.
type LSPOptions struct {
	NumSP      int     // unit-circle sample points for the sweep
	MaxIter    int     // bisection refinements per sign-change bracket
	EPS        float64 // bracket-width convergence bound
	LogGain    bool    // store log gain instead of raw gain at index 0
	Unit       int     // one of the Unit constants
	SampleRate float64 // Hz, only used by UnitKHz and UnitHz
}

func (o *LSPOptions) fill() (LSPOptions, error) {
	opt := LSPOptions{}
	if o != nil {
		opt = *o
	}
	if opt.NumSP == 0 {
		opt.NumSP = 128
	}
	if opt.MaxIter == 0 {
		opt.MaxIter = 8
	}
	if opt.EPS == 0 {
		opt.EPS = 1e-6
	}
	if opt.Unit < UnitRadian || opt.Unit > UnitHz {
		return opt, &gosptk.ValidationError{Param: "unit", Msg: "must be 0..3"}
	}
	if (opt.Unit == UnitKHz || opt.Unit == UnitHz) && opt.SampleRate <= 0 {
		return opt, &gosptk.ValidationError{Param: "sample rate", Msg: "required for kHz/Hz output"}
	}
	return opt, nil
}

func (o LSPOptions) fromRadian(w float64) float64 {
	switch o.Unit {
	case UnitNormalized:
		return w / (2 * math.Pi)
	case UnitKHz:
		return w / (2 * math.Pi) * o.SampleRate / 1000
	case UnitHz:
		return w / (2 * math.Pi) * o.SampleRate
	}
	return w
}

func (o LSPOptions) toRadian(v float64) float64 {
	switch o.Unit {
	case UnitNormalized:
		return v * 2 * math.Pi
	case UnitKHz:
		return v * 1000 / o.SampleRate * 2 * math.Pi
	case UnitHz:
		return v / o.SampleRate * 2 * math.Pi
	}
	return v
}

// LPC2LSP converts LPC coefficients to line spectral pairs. The deflated sum
// and difference polynomials are evaluated in Chebyshev form at NumSP points
// of the upper unit circle; each sign-change bracket is refined by bisection
// bounded by MaxIter and EPS. Index 0 of the result carries the (log) gain.
func LPC2LSP(a []float64, o *LSPOptions) ([]float64, error) {
	m := len(a) - 1
	if err := gosptk.CheckOrder(m); err != nil {
		return nil, err
	}
	opt, err := o.fill()
	if err != nil {
		return nil, err
	}

	p, q := sumDiffChebyshev(a)

	lsp := make([]float64, m+1)
	xl := 1.0
	dx := 2.0 / float64(opt.NumSP)
	for j := 1; j <= m; j++ {
		poly := p
		if j%2 == 0 {
			poly = q
		}
		pl := chebEval(poly, xl)
		found := false
		for xr := xl - dx; xr >= -1.0-1e-12; xr -= dx {
			if xr < -1 {
				xr = -1
			}
			pr := chebEval(poly, xr)
			if pl*pr <= 0 {
				lsp[j] = math.Acos(clamp(bisect(poly, xl, xr, pl, opt), -1, 1))
				xl = math.Cos(lsp[j])
				found = true
				break
			}
			pl, xl = pr, xr
		}
		if !found {
			return nil, &gosptk.NumericalError{Op: "lpc2lsp", Msg: "failed to locate all line-spectral roots"}
		}
	}

	for i := 1; i <= m; i++ {
		lsp[i] = opt.fromRadian(lsp[i])
	}
	if opt.LogGain {
		lsp[0] = math.Log(a[0])
	} else {
		lsp[0] = a[0]
	}
	return lsp, nil
}

// sumDiffChebyshev builds the Chebyshev coefficient form of the sum and
// difference polynomials, deflated by their trivial roots at z = -1/+1
// (even order) or z^2 = 1 (odd order).
func sumDiffChebyshev(a []float64) (p, q []float64) {
	m := len(a) - 1
	if m%2 == 0 {
		mh := m / 2
		p = make([]float64, mh+1)
		q = make([]float64, mh+1)
		p[0], q[0] = 1, 1
		for i := 1; i <= mh; i++ {
			p[i] = a[i] + a[m+1-i] - p[i-1]
			q[i] = a[i] - a[m+1-i] + q[i-1]
		}
		for i := 0; i < mh; i++ {
			p[i] *= 2
			q[i] *= 2
		}
		return p, q
	}
	mp := (m + 1) / 2
	mq := (m - 1) / 2
	p = make([]float64, mp+1)
	q = make([]float64, mq+1)
	p[0], q[0] = 1, 1
	for i := 1; i <= mp; i++ {
		p[i] = a[i] + a[m+1-i]
	}
	for i := 1; i <= mq; i++ {
		q[i] = a[i] - a[m+1-i]
		if i >= 2 {
			q[i] += q[i-2]
		}
	}
	for i := 0; i < mp; i++ {
		p[i] *= 2
	}
	for i := 0; i < mq; i++ {
		q[i] *= 2
	}
	return p, q
}

func bisect(poly []float64, xl, xr, pl float64, opt LSPOptions) float64 {
	for it := 0; it < opt.MaxIter && xl-xr > opt.EPS; it++ {
		xm := 0.5 * (xl + xr)
		pm := chebEval(poly, xm)
		if pm*pl > 0 {
			xl, pl = xm, pm
		} else {
			xr = xm
		}
	}
	return 0.5 * (xl + xr)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// chebEval evaluates sum coef[len-1-i]*T_i(x) by the Chebyshev recurrence.
func chebEval(coef []float64, x float64) float64 {
	n := len(coef)
	t0, t1 := 1.0, x
	sum := coef[n-1] * t0
	if n > 1 {
		sum += coef[n-2] * t1
	}
	for i := 2; i < n; i++ {
		t2 := 2*x*t1 - t0
		sum += coef[n-1-i] * t2
		t0, t1 = t1, t2
	}
	return sum
}

// LSP2LPC reconstructs LPC coefficients from line spectral pairs, the
// inverse of LPC2LSP for the same options.
func LSP2LPC(lsp []float64, o *LSPOptions) ([]float64, error) {
	m := len(lsp) - 1
	if err := gosptk.CheckOrder(m); err != nil {
		return nil, err
	}
	opt, err := o.fill()
	if err != nil {
		return nil, err
	}
	w := make([]float64, m+1)
	for i := 1; i <= m; i++ {
		w[i] = opt.toRadian(lsp[i])
	}

	// P collects the odd-indexed frequencies, Q the even-indexed ones.
	p := []float64{1}
	q := []float64{1}
	for i := 1; i <= m; i += 2 {
		p = polyMulQuad(p, w[i])
	}
	for i := 2; i <= m; i += 2 {
		q = polyMulQuad(q, w[i])
	}
	if m%2 == 0 {
		p = polyMul(p, []float64{1, 1})
		q = polyMul(q, []float64{1, -1})
	} else {
		q = polyMul(q, []float64{1, 0, -1})
	}

	a := make([]float64, m+1)
	for i := 1; i <= m; i++ {
		a[i] = (p[i] + q[i]) / 2
	}
	if opt.LogGain {
		a[0] = math.Exp(lsp[0])
	} else {
		a[0] = lsp[0]
	}
	return a, nil
}

// polyMulQuad multiplies a polynomial by (1 - 2cos(w) z^-1 + z^-2).
func polyMulQuad(p []float64, w float64) []float64 {
	return polyMul(p, []float64{1, -2 * math.Cos(w), 1})
}

func polyMul(p, q []float64) []float64 {
	out := make([]float64, len(p)+len(q)-1)
	for i, pv := range p {
		for j, qv := range q {
			out[i+j] += pv * qv
		}
	}
	return out
}
