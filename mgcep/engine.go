package mgcep

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	gosptk "github.com/neurlang/gosptk"
	"github.com/neurlang/gosptk/cep"
)

// newtonStep performs one Newton refinement of the gain-normalized warped
// cepstrum c (indices 1..m; index 0 is left alone) against the periodogram x,
// and returns the value of the spectral-fit criterion before the update.
//
// The step evaluates the model on the linear-frequency grid, builds the
// residual lag sequences there, carries them back to the alpha domain with
// the plain substitution transform, and solves the Toeplitz-plus-Hankel
// normal equations. A determinant below minDet is a hard failure.
func newtonStep(x []float64, c []float64, m int, alpha, gamma float64, n, fftlen int, minDet float64) (float64, error) {
	// Unwarp the coefficients to a linear-frequency cepstrum of order n.
	// The model is a cepstrum, so the unwarp is the minimum-phase Freqt;
	// the lag sequences below take the plain Frqtr, its transpose.
	work := make([]float64, m+1)
	copy(work[1:], c[1:])
	var cLin []float64
	if alpha != 0 {
		var err error
		cLin, err = cep.Freqt(work, n, -alpha)
		if err != nil {
			return 0, err
		}
	} else {
		cLin = work
	}

	buf := make([]float64, fftlen)
	copy(buf, cLin)
	spec := fft.FFTReal(buf)

	p := make([]complex128, fftlen)
	q := make([]complex128, fftlen)
	v := make([]complex128, fftlen)
	crit := 0.0
	for i := 0; i < fftlen; i++ {
		cr, ci := real(spec[i]), imag(spec[i])
		if gamma == 0 {
			// R = log I - 2 Re C; the residual power spectrum is e^R.
			er := x[i] * math.Exp(-2*cr)
			p[i] = complex(er, 0)
			q[i] = p[i]
			v[i] = p[i]
			crit += er
		} else {
			ar := 1 + gamma*cr
			ai := gamma * ci
			aa := ar*ar + ai*ai
			if aa <= 0 {
				return 0, &gosptk.NumericalError{Op: "mgcep", Msg: "spectral model collapsed to zero"}
			}
			pi := x[i] * math.Pow(aa, -1/gamma-1)
			p[i] = complex(pi, 0)
			q[i] = complex(pi*ar, pi*ai)
			v[i] = complex(pi*(ar*ar-ai*ai)/aa, pi*2*ar*ai/aa)
			crit += x[i] * math.Pow(aa, -1/gamma)
		}
	}
	crit /= float64(fftlen)

	t := lags(fft.IFFT(p), n)
	r := lags(fft.IFFT(q), n)
	u := lags(fft.IFFT(v), n)
	if alpha != 0 {
		var err error
		if t, err = cep.Frqtr(t, 2*m, alpha); err != nil {
			return 0, err
		}
		if r, err = cep.Frqtr(r, m, alpha); err != nil {
			return 0, err
		}
		if u, err = cep.Frqtr(u, 2*m, alpha); err != nil {
			return 0, err
		}
	}

	// Normal equations: (T + (1+gamma) H) dc = r, T Toeplitz from t, H Hankel
	// from u.
	mat := make([][]float64, m)
	rhs := make([]float64, m)
	for k := 1; k <= m; k++ {
		row := make([]float64, m)
		for l := 1; l <= m; l++ {
			d := k - l
			if d < 0 {
				d = -d
			}
			row[l-1] = t[d] + (1+gamma)*u[k+l]
		}
		mat[k-1] = row
		rhs[k-1] = r[k]
	}
	dc, err := solve(mat, rhs, minDet)
	if err != nil {
		return 0, err
	}
	for k := 1; k <= m; k++ {
		c[k] += dc[k-1]
	}
	return crit, nil
}

// lags extracts the real parts of the first n+1 inverse-transform lags.
func lags(ac []complex128, n int) []float64 {
	out := make([]float64, n+1)
	for k := 0; k <= n && k < len(ac); k++ {
		out[k] = real(ac[k])
	}
	return out
}

// solve performs Gaussian elimination with partial pivoting, rejecting the
// system when the determinant magnitude falls below minDet.
func solve(mat [][]float64, rhs []float64, minDet float64) ([]float64, error) {
	n := len(rhs)
	det := 1.0
	for i := 0; i < n; i++ {
		piv := i
		for j := i + 1; j < n; j++ {
			if math.Abs(mat[j][i]) > math.Abs(mat[piv][i]) {
				piv = j
			}
		}
		if piv != i {
			mat[i], mat[piv] = mat[piv], mat[i]
			rhs[i], rhs[piv] = rhs[piv], rhs[i]
			det = -det
		}
		det *= mat[i][i]
		if mat[i][i] == 0 {
			return nil, &gosptk.NumericalError{Op: "mgcep", Msg: "singular normal equations"}
		}
		for j := i + 1; j < n; j++ {
			f := mat[j][i] / mat[i][i]
			if f == 0 {
				continue
			}
			for k := i; k < n; k++ {
				mat[j][k] -= f * mat[i][k]
			}
			rhs[j] -= f * rhs[i]
		}
	}
	if math.Abs(det) < minDet {
		return nil, &gosptk.NumericalError{Op: "mgcep", Msg: "ill-conditioned normal equations (determinant below min_det)"}
	}
	out := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		s := rhs[i]
		for k := i + 1; k < n; k++ {
			s -= mat[i][k] * out[k]
		}
		out[i] = s / mat[i][i]
	}
	return out, nil
}
