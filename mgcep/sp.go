package mgcep

import (
	"github.com/mjibson/go-dsp/fft"

	gosptk "github.com/neurlang/gosptk"
)

// MGC2SP evaluates the complex log spectrum of a (de-normalized)
// mel-generalized cepstrum at fftlen/2+1 points: the real part is the log
// amplitude, the imaginary part the phase.
func MGC2SP(mgc []float64, alpha, gamma float64, fftlen int) ([]complex128, error) {
	if err := gosptk.CheckFFTLen(fftlen); err != nil {
		return nil, err
	}
	order := fftlen/2 - 1
	if order < 1 {
		return nil, &gosptk.ValidationError{Param: "fftlen", Msg: "too short for spectrum evaluation"}
	}
	c, err := MGC2MGC(mgc, alpha, gamma, order, 0, 0)
	if err != nil {
		return nil, err
	}
	buf := make([]float64, fftlen)
	copy(buf, c)
	spec := fft.FFTReal(buf)
	out := make([]complex128, fftlen/2+1)
	copy(out, spec[:fftlen/2+1])
	return out, nil
}

// MGC2LogAmplitude is MGC2SP reduced to the log-amplitude spectrum.
func MGC2LogAmplitude(mgc []float64, alpha, gamma float64, fftlen int) ([]float64, error) {
	sp, err := MGC2SP(mgc, alpha, gamma, fftlen)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(sp))
	for i, v := range sp {
		out[i] = real(v)
	}
	return out, nil
}
