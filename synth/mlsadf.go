package synth

import (
	gosptk "github.com/neurlang/gosptk"
)

// MLSA is the mel log-spectral approximation synthesis filter driven by
// b-form coefficients (MC2B of a mel-cepstrum). Two cascaded Pade blocks
// realize the exponential transfer function on the warped frequency axis:
// the first covers the b[1] term, the second the warped FIR over b[2..m].
type MLSA struct {
	Alpha float64
	Pade  int
}

func (f MLSA) StateLen(order int) int { return 3*(f.Pade+1) + f.Pade*(order+2) }

func (f MLSA) Apply(x float64, b, d []float64) (float64, error) {
	m := len(b) - 1
	if err := gosptk.CheckOrder(m); err != nil {
		return 0, err
	}
	if err := gosptk.CheckPade(f.Pade); err != nil {
		return 0, err
	}
	if err := gosptk.CheckStateLen("mlsadf", len(d), f.StateLen(m)); err != nil {
		return 0, err
	}
	pd := f.Pade
	pp := padeTable(pd)
	n1 := 2 * (pd + 1)
	x = mlsadf1(x, b, f.Alpha, pd, d[:n1], pp)
	x = mlsadf2(x, b, f.Alpha, pd, d[n1:], pp)
	return x, nil
}

func mlsadf1(x float64, b []float64, a float64, pd int, d, pp []float64) float64 {
	aa := 1 - a*a
	pt := d[pd+1:]
	out := 0.0
	for i := pd; i >= 1; i-- {
		d[i] = aa*pt[i-1] + a*d[i]
		pt[i] = d[i] * b[1]
		v := pt[i] * pp[i]
		if i%2 == 1 {
			x += v
		} else {
			x -= v
		}
		out += v
	}
	pt[0] = x
	return out + x
}

func mlsadf2(x float64, b []float64, a float64, pd int, d, pp []float64) float64 {
	m := len(b) - 1
	n := m + 2
	pt := d[pd*n:]
	out := 0.0
	for i := pd; i >= 1; i-- {
		pt[i] = mlsafir(pt[i-1], b, a, d[(i-1)*n:i*n])
		v := pt[i] * pp[i]
		if i%2 == 1 {
			x += v
		} else {
			x -= v
		}
		out += v
	}
	pt[0] = x
	return out + x
}

// mlsafir is the warped FIR over b[2..m]; its delay line has m+2 slots.
func mlsafir(x float64, b []float64, a float64, d []float64) float64 {
	m := len(b) - 1
	d[0] = x
	d[1] = (1-a*a)*d[0] + a*d[1]
	for i := 2; i <= m; i++ {
		d[i] += a * (d[i+1] - d[i-1])
	}
	y := 0.0
	for i := 2; i <= m; i++ {
		y += d[i] * b[i]
	}
	for i := m + 1; i > 1; i-- {
		d[i] = d[i-1]
	}
	return y
}
