package gcep

import gosptk "github.com/neurlang/gosptk"

// GC2GC rescales the compression exponent of a gain-normalized generalized
// cepstrum from gamma1 to gamma2, producing a vector of order m2. With equal
// source and destination exponents (and unchanged order) the transform is the
// identity.
func GC2GC(c1 []float64, gamma1 float64, m2 int, gamma2 float64) ([]float64, error) {
	if err := gosptk.CheckGamma(gamma1); err != nil {
		return nil, err
	}
	if err := gosptk.CheckGamma(gamma2); err != nil {
		return nil, err
	}
	if err := gosptk.CheckOrder(m2); err != nil {
		return nil, err
	}
	m1 := len(c1) - 1
	c2 := make([]float64, m2+1)
	c2[0] = c1[0]
	for i := 1; i <= m2; i++ {
		ss1, ss2 := 0.0, 0.0
		min := m1
		if i <= m1 {
			min = i - 1
		}
		for k := 1; k <= min; k++ {
			mk := i - k
			cc := c1[k] * c2[mk]
			ss2 += float64(k) * cc
			ss1 += float64(mk) * cc
		}
		if i <= m1 {
			c2[i] = c1[i] + (gamma2*ss2-gamma1*ss1)/float64(i)
		} else {
			c2[i] = (gamma2*ss2 - gamma1*ss1) / float64(i)
		}
	}
	return c2, nil
}
