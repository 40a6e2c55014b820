package synth

import (
	gosptk "github.com/neurlang/gosptk"
)

// Pole is the all-pole synthesis filter driven by linear prediction
// coefficients a[1..m]. Its delay buffer holds m past output samples.
type Pole struct{}

func (Pole) StateLen(order int) int { return order }

func (p Pole) Apply(x float64, a, d []float64) (float64, error) {
	m := len(a) - 1
	if err := gosptk.CheckOrder(m); err != nil {
		return 0, err
	}
	if err := gosptk.CheckStateLen("poledf", len(d), p.StateLen(m)); err != nil {
		return 0, err
	}
	for i := m; i >= 2; i-- {
		x -= a[i] * d[i-1]
		d[i-1] = d[i-2]
	}
	x -= a[1] * d[0]
	d[0] = x
	return x, nil
}
