package cep

import gosptk "github.com/neurlang/gosptk"

// Freqt rewarps a cepstrum to order m2 and warping constant a through the
// all-pass substitution recursion. With unchanged order and a=0 the transform
// is the identity.
func Freqt(c1 []float64, m2 int, a float64) ([]float64, error) {
	if err := gosptk.CheckOrder(m2); err != nil {
		return nil, err
	}
	m1 := len(c1) - 1
	b := 1 - a*a
	d := make([]float64, m2+1)
	g := make([]float64, m2+1)
	for i := -m1; i <= 0; i++ {
		d[0] = g[0]
		g[0] = c1[-i] + a*d[0]
		if m2 >= 1 {
			d[1] = g[1]
			g[1] = b*d[0] + a*d[1]
		}
		for j := 2; j <= m2; j++ {
			d[j] = g[j]
			g[j] = d[j-1] + a*(d[j]-g[j-1])
		}
	}
	return g, nil
}

// Frqtr is the frequency transform without the minimum-phase weighting
// factor. It is the transform appropriate for autocorrelation-like lag
// sequences and is used by the mel-generalized analysis engine.
func Frqtr(c1 []float64, m2 int, a float64) ([]float64, error) {
	if err := gosptk.CheckOrder(m2); err != nil {
		return nil, err
	}
	m1 := len(c1) - 1
	d := make([]float64, m2+1)
	g := make([]float64, m2+1)
	for i := -m1; i <= 0; i++ {
		d[0] = g[0]
		g[0] = c1[-i]
		for j := 1; j <= m2; j++ {
			d[j] = g[j]
			g[j] = d[j-1] + a*(d[j]-g[j-1])
		}
	}
	return g, nil
}
