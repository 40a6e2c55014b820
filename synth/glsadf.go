package synth

import (
	gosptk "github.com/neurlang/gosptk"
)

// GLSA is the generalized log-spectral approximation synthesis filter. It
// consumes a normalized generalized cepstrum c'[1..m] and realizes
// 1/(1+gamma*C'(z))^(1/gamma) as a cascade of Stage identical all-pole
// sections, with gamma = -1/Stage. The trailing order+1 slots of the delay
// buffer hold the per-section scaled coefficients.
type GLSA struct {
	Stage int
}

func (f GLSA) StateLen(order int) int { return order*(f.Stage+1) + 1 }

func (f GLSA) Apply(x float64, c, d []float64) (float64, error) {
	m := len(c) - 1
	if err := gosptk.CheckOrder(m); err != nil {
		return 0, err
	}
	if err := gosptk.CheckStage(f.Stage); err != nil {
		return 0, err
	}
	if err := gosptk.CheckStateLen("glsadf", len(d), f.StateLen(m)); err != nil {
		return 0, err
	}
	g := d[f.Stage*m:]
	gamma := -1 / float64(f.Stage)
	for k := 1; k <= m; k++ {
		g[k] = gamma * c[k]
	}
	for i := 0; i < f.Stage; i++ {
		x = glsadff(x, g, m, d[i*m:(i+1)*m])
	}
	return x, nil
}

func glsadff(x float64, g []float64, m int, d []float64) float64 {
	for i := 0; i < m; i++ {
		x -= g[i+1] * d[i]
	}
	for i := m - 1; i > 0; i-- {
		d[i] = d[i-1]
	}
	d[0] = x
	return x
}
