package lpc

import (
	"math"

	gosptk "github.com/neurlang/gosptk"
)

// Analyze estimates order+1 LPC coefficients from a windowed frame using the
// autocorrelation method and the Levinson-Durbin recursion. Index 0 of the
// result carries the gain (square root of the residual energy).
//
// A genuinely singular recursion (prediction error falling below minDet)
// fails with a NumericalError. An unstable result is weaker: the best-effort
// coefficients are returned together with ErrUnstable.
func Analyze(frame []float64, order int, minDet float64) ([]float64, error) {
	if err := gosptk.CheckOrder(order); err != nil {
		return nil, err
	}
	if len(frame) < order+1 {
		return nil, &gosptk.ValidationError{Param: "frame", Msg: "length must be >= order+1"}
	}
	if minDet < 0 {
		return nil, &gosptk.ValidationError{Param: "min_det", Msg: "must be >= 0"}
	}
	r := Autocorrelation(frame, order)
	return Levinson(r, minDet)
}

// Autocorrelation computes the first order+1 autocorrelation lags of a frame.
func Autocorrelation(frame []float64, order int) []float64 {
	r := make([]float64, order+1)
	for k := 0; k <= order; k++ {
		s := 0.0
		for n := 0; n+k < len(frame); n++ {
			s += frame[n] * frame[n+k]
		}
		r[k] = s
	}
	return r
}

// Levinson runs the Levinson-Durbin recursion on an autocorrelation sequence.
// See Analyze for the meaning of the result and of ErrUnstable.
func Levinson(r []float64, minDet float64) ([]float64, error) {
	m := len(r) - 1
	if r[0] == 0 {
		return nil, &gosptk.NumericalError{Op: "lpc", Msg: "zero-energy frame"}
	}
	a := make([]float64, m+1)
	tmp := make([]float64, m+1)
	e := r[0]
	unstable := false
	for i := 1; i <= m; i++ {
		acc := r[i]
		for j := 1; j < i; j++ {
			acc += a[j] * r[i-j]
		}
		k := -acc / e
		if math.Abs(k) >= 1 {
			unstable = true
		}
		a[i] = k
		for j := 1; j < i; j++ {
			tmp[j] = a[j] + k*a[i-j]
		}
		copy(a[1:i], tmp[1:i])
		e *= 1 - k*k
		if !unstable && e <= minDet {
			return nil, &gosptk.NumericalError{Op: "lpc", Msg: "singular normal equations (prediction error below min_det)"}
		}
	}
	a[0] = math.Sqrt(math.Abs(e))
	if unstable {
		return a, gosptk.ErrUnstable
	}
	return a, nil
}
