// check.go hosts the numeric precondition checks applied before any core
// computation begins. Every check is side-effect-free and fails fast.

package gosptk

import "fmt"

// CheckGamma validates the power-law compression exponent gamma, which must
// lie in [-1, 0].
func CheckGamma(gamma float64) error {
	if gamma < -1.0 || gamma > 0.0 {
		return &ValidationError{
			Param: "gamma",
			Msg:   fmt.Sprintf("must be in [-1, 0], got %g", gamma),
		}
	}
	return nil
}

// CheckFFTLen validates a spectral-domain transform length, which must be a
// positive power of two.
func CheckFFTLen(fftlen int) error {
	if fftlen <= 0 || fftlen&(fftlen-1) != 0 {
		return &ValidationError{
			Param: "fftlen",
			Msg:   fmt.Sprintf("must be a power of two, got %d", fftlen),
		}
	}
	return nil
}

// CheckPade validates a Pade order. Only the classical degree-4 and degree-5
// approximations of the exponential are supported.
func CheckPade(pd int) error {
	if pd != 4 && pd != 5 {
		return &ValidationError{
			Param: "pade order",
			Msg:   fmt.Sprintf("must be 4 or 5, got %d", pd),
		}
	}
	return nil
}

// CheckStage validates the cascade stage count of the generalized filters.
// It must be a positive integer equal to -1/gamma.
func CheckStage(stage int) error {
	if stage < 1 {
		return &ValidationError{
			Param: "stage",
			Msg:   fmt.Sprintf("must be a positive integer, got %d", stage),
		}
	}
	return nil
}

// CheckOrder validates a coefficient-vector order.
func CheckOrder(order int) error {
	if order < 1 {
		return &ValidationError{
			Param: "order",
			Msg:   fmt.Sprintf("must be >= 1, got %d", order),
		}
	}
	return nil
}

// CheckStateLen validates a filter delay buffer against its exact required
// length. A mismatch is rejected before any computation touches the buffer.
func CheckStateLen(name string, got, want int) error {
	if got != want {
		return &ValidationError{
			Param: "state",
			Msg:   fmt.Sprintf("%s requires a delay buffer of exactly %d samples, got %d", name, want, got),
		}
	}
	return nil
}
