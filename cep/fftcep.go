package cep

import (
	"github.com/mjibson/go-dsp/fft"

	gosptk "github.com/neurlang/gosptk"
)

// FFTCep estimates a cepstrum of order m from a log spectrum sampled at
// fftlen points. After the initial inverse transform, itr correction passes
// fold the truncation error back into the retained coefficients; accel
// scales the correction (0 keeps the plain update).
func FFTCep(logsp []float64, m, itr int, accel float64) ([]float64, error) {
	fftlen := len(logsp)
	if err := gosptk.CheckFFTLen(fftlen); err != nil {
		return nil, err
	}
	if err := gosptk.CheckOrder(m); err != nil {
		return nil, err
	}
	if 2*m >= fftlen {
		return nil, &gosptk.ValidationError{Param: "order", Msg: "cepstrum order too high for fftlen"}
	}
	spec := make([]complex128, fftlen)
	for i, v := range logsp {
		spec[i] = complex(v, 0)
	}
	cep := fft.IFFT(spec)
	c := make([]float64, m+1)
	for k := 0; k <= m; k++ {
		c[k] = real(cep[k])
	}

	buf := make([]float64, fftlen)
	for ; itr > 0; itr-- {
		for i := range buf {
			buf[i] = 0
		}
		buf[0] = c[0]
		for k := 1; k <= m; k++ {
			buf[k] = c[k]
			buf[fftlen-k] = c[k]
		}
		approx := fft.FFTReal(buf)
		err := make([]complex128, fftlen)
		for i := range err {
			err[i] = complex(logsp[i]-real(approx[i]), 0)
		}
		ecep := fft.IFFT(err)
		c[0] += real(ecep[0])
		for k := 1; k <= m; k++ {
			c[k] += (1 + accel) * real(ecep[k])
		}
	}
	return c, nil
}
