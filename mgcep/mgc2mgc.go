package mgcep

import (
	gosptk "github.com/neurlang/gosptk"
	"github.com/neurlang/gosptk/cep"
	"github.com/neurlang/gosptk/gcep"
)

// MGC2MGC rescales both the warping constant and the compression exponent of
// a (de-normalized) mel-generalized cepstrum in one combined recursion:
// re-warping by the residual all-pass constant followed by the gamma change
// in the gain-normalized domain. With identical source and destination
// parameters the transform is the identity.
func MGC2MGC(c1 []float64, alpha1, gamma1 float64, m2 int, alpha2, gamma2 float64) ([]float64, error) {
	if err := gosptk.CheckGamma(gamma1); err != nil {
		return nil, err
	}
	if err := gosptk.CheckGamma(gamma2); err != nil {
		return nil, err
	}
	if err := gosptk.CheckOrder(m2); err != nil {
		return nil, err
	}

	alpha := (alpha2 - alpha1) / (1 - alpha1*alpha2)
	work := c1
	var err error
	if alpha != 0 {
		work, err = cep.Freqt(c1, m2, alpha)
		if err != nil {
			return nil, err
		}
	}
	work, err = gcep.Gnorm(work, gamma1)
	if err != nil {
		return nil, err
	}
	work, err = gcep.GC2GC(work, gamma1, m2, gamma2)
	if err != nil {
		return nil, err
	}
	return gcep.Ignorm(work, gamma2)
}
