package cep

import (
	"math"

	gosptk "github.com/neurlang/gosptk"
)

// C2IR expands a cepstrum into the first leng samples of the minimum-phase
// impulse response it parameterizes.
func C2IR(c []float64, leng int) ([]float64, error) {
	if leng < 1 {
		return nil, &gosptk.ValidationError{Param: "length", Msg: "must be >= 1"}
	}
	nc := len(c)
	h := make([]float64, leng)
	h[0] = math.Exp(c[0])
	for n := 1; n < leng; n++ {
		d := 0.0
		upl := n
		if n >= nc {
			upl = nc - 1
		}
		for k := 1; k <= upl; k++ {
			d += float64(k) * c[k] * h[n-k]
		}
		h[n] = d / float64(n)
	}
	return h, nil
}

// IC2IR recovers a cepstrum of order m from a minimum-phase impulse
// response, the exact inverse of C2IR when enough samples are supplied.
func IC2IR(h []float64, m int) ([]float64, error) {
	if err := gosptk.CheckOrder(m); err != nil {
		return nil, err
	}
	if len(h) == 0 || h[0] <= 0 {
		return nil, &gosptk.ValidationError{Param: "impulse response", Msg: "first sample must be positive"}
	}
	leng := len(h)
	c := make([]float64, m+1)
	c[0] = math.Log(h[0])
	for n := 1; n <= m; n++ {
		d := 0.0
		if n < leng {
			d = float64(n) * h[n]
		}
		for k := 1; k < n; k++ {
			if n-k < leng {
				d -= float64(k) * c[k] * h[n-k]
			}
		}
		c[n] = d / (float64(n) * h[0])
	}
	return c, nil
}
