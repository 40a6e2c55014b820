package synth

import (
	gosptk "github.com/neurlang/gosptk"
)

// LMA is the log-magnitude approximation synthesis filter: exp(C(z)) for a
// plain cepstrum c[1..m], realized as two cascaded Pade approximant blocks,
// one for the first quefrency and one for the rest.
type LMA struct {
	Pade int
}

func (f LMA) StateLen(order int) int { return 2 * f.Pade * (order + 1) }

func (f LMA) Apply(x float64, c, d []float64) (float64, error) {
	m := len(c) - 1
	if err := gosptk.CheckOrder(m); err != nil {
		return 0, err
	}
	if err := gosptk.CheckPade(f.Pade); err != nil {
		return 0, err
	}
	if err := gosptk.CheckStateLen("lmadf", len(d), f.StateLen(m)); err != nil {
		return 0, err
	}
	pd := f.Pade
	pp := padeTable(pd)
	n1 := 2*pd + 1
	x = lmadff(x, c, 1, 1, pd, d[:n1], pp)
	if m >= 2 {
		n2 := pd*m + pd + 1
		x = lmadff(x, c, 2, m, pd, d[n1:n1+n2], pp)
	}
	return x, nil
}

// lmadff runs one Pade block approximating exp of the FIR built from
// c[m1..m2]. Its region of d holds pd FIR delay lines of length m2 followed
// by the pd+1 chain taps.
func lmadff(x float64, c []float64, m1, m2, pd int, d, pp []float64) float64 {
	pt := d[pd*m2:]
	out := 0.0
	for i := pd; i >= 1; i-- {
		pt[i] = lmafir(pt[i-1], c, m1, m2, d[(i-1)*m2:i*m2])
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

// lmafir pushes before tapping: one delay per tap comes from the Pade
// chain itself, so tap j reads its line at depth j-1.
func lmafir(x float64, c []float64, m1, m2 int, d []float64) float64 {
	for j := m2 - 1; j > 0; j-- {
		d[j] = d[j-1]
	}
	d[0] = x
	y := 0.0
	for j := m1; j <= m2; j++ {
		y += c[j] * d[j-1]
	}
	return y
}
