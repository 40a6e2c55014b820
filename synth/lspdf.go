package synth

import (
	"math"

	gosptk "github.com/neurlang/gosptk"
)

// LSP is the all-pole synthesis filter driven directly by line spectral
// pairs w[1..m] in radians, without conversion back to prediction
// coefficients. The denominator is rebuilt per sample as the mean of the
// sum and difference polynomials, each realized as a cascade of
// second-order sections rooted on the unit circle at the pair frequencies.
type LSP struct{}

func (LSP) StateLen(order int) int { return 2*order + 1 }

func (l LSP) Apply(x float64, w, d []float64) (float64, error) {
	m := len(w) - 1
	if err := gosptk.CheckOrder(m); err != nil {
		return 0, err
	}
	if err := gosptk.CheckStateLen("lspdf", len(d), l.StateLen(m)); err != nil {
		return 0, err
	}

	cw := make([]float64, m+1)
	for i := 1; i <= m; i++ {
		cw[i] = -2 * math.Cos(w[i])
	}

	// Both cascades consume the same output history in their first
	// section, so those two registers are shared. d[2m] is padding to
	// the documented buffer length.
	h := d[:2]
	p := d[2 : m+1]
	q := d[m+1 : 2*m]

	if m == 1 {
		// Sum side is a single section at w[1]; the difference side
		// collapses to 1 - z^-2 and its -h[1] cancels the sum side's.
		s := cw[1] * h[0]
		y := x - s/2
		h[1] = h[0]
		h[0] = y
		return y, nil
	}

	// The feedback sum only needs the register part of each section:
	// section constants are 1, so the unknown output passes through the
	// cascades with unit weight and the contributions add.
	s := cw[1]*h[0] + h[1]
	s += cw[2]*h[0] + h[1]
	even := m%2 == 0
	j := 0
	if even {
		for fi := 3; fi <= m-1; fi += 2 {
			s += cw[fi]*p[j] + p[j+1]
			j += 2
		}
		s += p[j]
		j = 0
		for fi := 4; fi <= m; fi += 2 {
			s += cw[fi]*q[j] + q[j+1]
			j += 2
		}
		s -= q[j]
	} else {
		for fi := 3; fi <= m; fi += 2 {
			s += cw[fi]*p[j] + p[j+1]
			j += 2
		}
		j = 0
		for fi := 4; fi <= m-1; fi += 2 {
			s += cw[fi]*q[j] + q[j+1]
			j += 2
		}
		s -= q[j+1]
	}
	y := x - s/2

	// Propagate the resolved output through both cascades to refresh
	// the section registers.
	out := y + cw[1]*h[0] + h[1]
	j = 0
	if even {
		for fi := 3; fi <= m-1; fi += 2 {
			nxt := out + cw[fi]*p[j] + p[j+1]
			p[j+1] = p[j]
			p[j] = out
			out = nxt
			j += 2
		}
		p[j] = out
	} else {
		for fi := 3; fi <= m; fi += 2 {
			nxt := out + cw[fi]*p[j] + p[j+1]
			p[j+1] = p[j]
			p[j] = out
			out = nxt
			j += 2
		}
	}
	out = y + cw[2]*h[0] + h[1]
	j = 0
	if even {
		for fi := 4; fi <= m; fi += 2 {
			nxt := out + cw[fi]*q[j] + q[j+1]
			q[j+1] = q[j]
			q[j] = out
			out = nxt
			j += 2
		}
		q[j] = out
	} else {
		for fi := 4; fi <= m-1; fi += 2 {
			nxt := out + cw[fi]*q[j] + q[j+1]
			q[j+1] = q[j]
			q[j] = out
			out = nxt
			j += 2
		}
		q[j+1] = q[j]
		q[j] = out
	}
	h[1] = h[0]
	h[0] = y

	return y, nil
}
