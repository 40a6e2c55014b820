package cep

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	gosptk "github.com/neurlang/gosptk"
)

// C2Acr converts a cepstrum to the first m2+1 autocorrelation lags through a
// spectral transform of length fftlen (power of two).
func C2Acr(c []float64, m2, fftlen int) ([]float64, error) {
	if err := gosptk.CheckFFTLen(fftlen); err != nil {
		return nil, err
	}
	if m2 < 0 || m2 >= fftlen {
		return nil, &gosptk.ValidationError{Param: "order", Msg: "must satisfy 0 <= order < fftlen"}
	}
	buf := make([]float64, fftlen)
	copy(buf, c)
	spec := fft.FFTReal(buf)
	power := make([]complex128, fftlen)
	for i, v := range spec {
		power[i] = complex(math.Exp(2*real(v)), 0)
	}
	ac := fft.IFFT(power)
	r := make([]float64, m2+1)
	for k := 0; k <= m2; k++ {
		r[k] = real(ac[k])
	}
	return r, nil
}

// C2NDPS converts a cepstrum to the negative derivative of the phase
// spectrum, sampled at fftlen/2+1 points.
func C2NDPS(c []float64, fftlen int) ([]float64, error) {
	if err := gosptk.CheckFFTLen(fftlen); err != nil {
		return nil, err
	}
	m := len(c) - 1
	if 2*m >= fftlen {
		return nil, &gosptk.ValidationError{Param: "order", Msg: "cepstrum order too high for fftlen"}
	}
	buf := make([]float64, fftlen)
	for k := 1; k <= m; k++ {
		v := 0.5 * float64(k) * c[k]
		buf[k] = v
		buf[fftlen-k] = v
	}
	spec := fft.FFTReal(buf)
	n := make([]float64, fftlen/2+1)
	for i := range n {
		n[i] = real(spec[i])
	}
	return n, nil
}

// NDPS2C recovers a cepstrum of order m from a negative-derivative-of-phase
// spectrum of fftlen/2+1 points. Index 0 of the result is zero: the phase
// derivative carries no gain information.
func NDPS2C(n []float64, m, fftlen int) ([]float64, error) {
	if err := gosptk.CheckFFTLen(fftlen); err != nil {
		return nil, err
	}
	if len(n) != fftlen/2+1 {
		return nil, &gosptk.ValidationError{Param: "spectrum", Msg: "length must be fftlen/2+1"}
	}
	if err := gosptk.CheckOrder(m); err != nil {
		return nil, err
	}
	full := make([]complex128, fftlen)
	for i := 0; i <= fftlen/2; i++ {
		full[i] = complex(n[i], 0)
		if i > 0 && i < fftlen/2 {
			full[fftlen-i] = complex(n[i], 0)
		}
	}
	v := fft.IFFT(full)
	c := make([]float64, m+1)
	for k := 1; k <= m; k++ {
		c[k] = 2 * real(v[k]) / float64(k)
	}
	return c, nil
}
