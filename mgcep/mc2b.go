package mgcep

import gosptk "github.com/neurlang/gosptk"

// MC2B converts a mel-cepstrum to MLSA filter coefficients through the
// linear recursion parameterized by alpha.
func MC2B(mc []float64, alpha float64) ([]float64, error) {
	m := len(mc) - 1
	if err := gosptk.CheckOrder(m); err != nil {
		return nil, err
	}
	b := make([]float64, m+1)
	b[m] = mc[m]
	for i := m - 1; i >= 0; i-- {
		b[i] = mc[i] - alpha*b[i+1]
	}
	return b, nil
}

// B2MC converts MLSA filter coefficients back to a mel-cepstrum, the exact
// inverse of MC2B for the same alpha.
func B2MC(b []float64, alpha float64) ([]float64, error) {
	m := len(b) - 1
	if err := gosptk.CheckOrder(m); err != nil {
		return nil, err
	}
	mc := make([]float64, m+1)
	mc[m] = b[m]
	for i := m - 1; i >= 0; i-- {
		mc[i] = b[i] + alpha*b[i+1]
	}
	return mc, nil
}
