package lpc

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	gosptk "github.com/neurlang/gosptk"
)

// LSP2SP evaluates the log-magnitude spectrum of the all-pole model described
// by a line-spectral-pair vector, at fftlen/2+1 points.
func LSP2SP(lsp []float64, fftlen int, o *LSPOptions) ([]float64, error) {
	if err := gosptk.CheckFFTLen(fftlen); err != nil {
		return nil, err
	}
	a, err := LSP2LPC(lsp, o)
	if err != nil {
		return nil, err
	}
	return LPC2SP(a, fftlen)
}

// LPC2SP evaluates the log-magnitude spectrum log|K/A(e^jw)| of an LPC model
// at fftlen/2+1 points.
func LPC2SP(a []float64, fftlen int) ([]float64, error) {
	if err := gosptk.CheckFFTLen(fftlen); err != nil {
		return nil, err
	}
	m := len(a) - 1
	if m >= fftlen {
		return nil, &gosptk.ValidationError{Param: "order", Msg: "must be < fftlen"}
	}
	buf := make([]float64, fftlen)
	buf[0] = 1
	copy(buf[1:], a[1:])
	spec := fft.FFTReal(buf)
	lnK := math.Log(a[0])
	sp := make([]float64, fftlen/2+1)
	for i := range sp {
		sp[i] = lnK - math.Log(cmplxAbs(spec[i]))
	}
	return sp, nil
}

func cmplxAbs(v complex128) float64 {
	return math.Hypot(real(v), imag(v))
}
