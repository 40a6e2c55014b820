package lpc

import gosptk "github.com/neurlang/gosptk"

// LPC2PAR converts LPC coefficients to PARCOR (reflection) coefficients via
// the backward lattice recursion. Index 0 (gain) is copied through.
func LPC2PAR(a []float64) ([]float64, error) {
	m := len(a) - 1
	if err := gosptk.CheckOrder(m); err != nil {
		return nil, err
	}
	k := make([]float64, m+1)
	copy(k, a)
	work := make([]float64, m+1)
	for i := m; i >= 1; i-- {
		den := 1 - k[i]*k[i]
		if den == 0 {
			return nil, &gosptk.NumericalError{Op: "lpc2par", Msg: "reflection coefficient of magnitude one"}
		}
		for j := 1; j < i; j++ {
			work[j] = (k[j] - k[i]*k[i-j]) / den
		}
		copy(k[1:i], work[1:i])
	}
	return k, nil
}

// PAR2LPC converts PARCOR coefficients back to LPC coefficients via the
// forward lattice recursion, the exact inverse of LPC2PAR.
func PAR2LPC(k []float64) ([]float64, error) {
	m := len(k) - 1
	if err := gosptk.CheckOrder(m); err != nil {
		return nil, err
	}
	a := make([]float64, m+1)
	a[0] = k[0]
	work := make([]float64, m+1)
	for i := 1; i <= m; i++ {
		for j := 1; j < i; j++ {
			work[j] = a[j] + k[i]*a[i-j]
		}
		copy(a[1:i], work[1:i])
		a[i] = k[i]
	}
	return a, nil
}
