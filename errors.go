// errors.go defines the public error taxonomy shared by the leaf packages.

package gosptk

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed parameter detected before any
// computation. It is always raised immediately: no output buffer or filter
// state has been touched when one is returned.
type ValidationError struct {
	Param string // offending parameter name
	Msg   string // human-readable constraint
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("gosptk: invalid %s: %s", e.Param, e.Msg)
}

// NumericalError reports a failure inside a numeric routine: an
// ill-conditioned normal-equation solve or an unfloored periodogram
// containing exact zeros. It propagates to the immediate caller with no
// internal retry.
type NumericalError struct {
	Op  string // routine that failed
	Msg string
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("gosptk: %s: %s", e.Op, e.Msg)
}

// ErrUnstable marks a degraded LPC result: the returned coefficient vector is
// a best-effort estimate whose poles are not all inside the unit circle.
// Callers that can tolerate a non-stable filter may use the coefficients
// anyway; callers that cannot should treat it like any other error.
var ErrUnstable = errors.New("gosptk: unstable filter (reflection coefficient outside unit circle)")

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNumerical reports whether err is (or wraps) a NumericalError.
func IsNumerical(err error) bool {
	var ne *NumericalError
	return errors.As(err, &ne)
}
