package gcep

import (
	"math"

	gosptk "github.com/neurlang/gosptk"
)

// Gnorm gain-normalizes a generalized cepstrum: the generalized gain
// K = gexp(gamma, c[0]) replaces index 0 and every higher coefficient
// is divided by K^gamma = 1 + gamma*c[0]. At gamma=0 this degenerates to
// storing exp(c[0]) with no rescaling. The input is not modified.
func Gnorm(c []float64, gamma float64) ([]float64, error) {
	if err := gosptk.CheckGamma(gamma); err != nil {
		return nil, err
	}
	out := make([]float64, len(c))
	if gamma == 0 {
		copy(out, c)
		out[0] = Gexp(0, c[0])
		return out, nil
	}
	k := 1 + gamma*c[0]
	for i := 1; i < len(c); i++ {
		out[i] = c[i] / k
	}
	out[0] = Gexp(gamma, c[0])
	return out, nil
}

// Ignorm is the exact inverse of Gnorm: the gain K at index 0 is folded back
// into c[0] = glog(gamma, K)/gamma and the higher coefficients are multiplied
// by K^gamma. The input is not modified.
func Ignorm(c []float64, gamma float64) ([]float64, error) {
	if err := gosptk.CheckGamma(gamma); err != nil {
		return nil, err
	}
	out := make([]float64, len(c))
	if gamma == 0 {
		copy(out, c)
		out[0] = Glog(0, c[0])
		return out, nil
	}
	k := math.Pow(c[0], gamma)
	for i := 1; i < len(c); i++ {
		out[i] = c[i] * k
	}
	out[0] = (k - 1) / gamma
	return out, nil
}
