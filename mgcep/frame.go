package mgcep

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	gosptk "github.com/neurlang/gosptk"
)

// Frame input-type codes: how an analysis frame is interpreted.
const (
	ITypeWaveform    = 0 // time-domain windowed signal
	ITypeLogAmpDB    = 1 // log amplitude spectrum, dB, fftlen/2+1 bins
	ITypeLogAmp      = 2 // log amplitude spectrum, natural log, fftlen/2+1 bins
	ITypeAmplitude   = 3 // amplitude spectrum, fftlen/2+1 bins
	ITypePeriodogram = 4 // power spectrum, fftlen/2+1 bins
)

// Flooring policies applied to the periodogram before fitting.
const (
	ETypeNone     = 0 // no flooring; exact zeros are a hard failure
	ETypeAdd      = 1 // eps added to every periodogram bin
	ETypeAbsFloor = 2 // bins below eps are raised to eps
)

// periodogram converts a frame into a full-length power spectrum according
// to the input-type code, then applies the flooring policy. The input frame
// is never mutated.
func periodogram(frame []float64, itype, fftlen, etype int, eps float64) ([]float64, error) {
	if itype < ITypeWaveform || itype > ITypePeriodogram {
		return nil, &gosptk.ValidationError{Param: "itype", Msg: "must be 0..4"}
	}
	if etype < ETypeNone || etype > ETypeAbsFloor {
		return nil, &gosptk.ValidationError{Param: "etype", Msg: "must be 0..2"}
	}
	if eps < 0 {
		return nil, &gosptk.ValidationError{Param: "eps", Msg: "must be >= 0"}
	}
	if etype == ETypeNone && eps != 0 {
		return nil, &gosptk.ValidationError{Param: "eps", Msg: "only meaningful for etype 1 or 2"}
	}

	x := make([]float64, fftlen)
	half := fftlen/2 + 1
	if itype == ITypeWaveform {
		if len(frame) > fftlen {
			return nil, &gosptk.ValidationError{Param: "frame", Msg: "longer than fftlen"}
		}
		buf := make([]float64, fftlen)
		copy(buf, frame)
		spec := fft.FFTReal(buf)
		for i := 0; i < fftlen; i++ {
			re, im := real(spec[i]), imag(spec[i])
			x[i] = re*re + im*im
		}
	} else {
		if len(frame) != half {
			return nil, &gosptk.ValidationError{Param: "frame", Msg: "spectral input must have fftlen/2+1 bins"}
		}
		for i := 0; i < half; i++ {
			var p float64
			switch itype {
			case ITypeLogAmpDB:
				a := math.Pow(10, frame[i]/20)
				p = a * a
			case ITypeLogAmp:
				p = math.Exp(2 * frame[i])
			case ITypeAmplitude:
				p = frame[i] * frame[i]
			case ITypePeriodogram:
				p = frame[i]
			}
			x[i] = p
			if i > 0 && i < fftlen/2 {
				x[fftlen-i] = p
			}
		}
	}

	switch etype {
	case ETypeAdd:
		for i := range x {
			x[i] += eps
		}
	case ETypeAbsFloor:
		for i := range x {
			if x[i] < eps {
				x[i] = eps
			}
		}
	}
	for i := range x {
		if x[i] <= 0 {
			return nil, &gosptk.NumericalError{Op: "periodogram", Msg: "unfloored periodogram contains zero (use etype 1 or 2 with eps > 0)"}
		}
	}
	return x, nil
}
