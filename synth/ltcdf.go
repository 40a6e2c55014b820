package synth

import (
	gosptk "github.com/neurlang/gosptk"
)

// Lattice is the all-pole lattice synthesis filter driven by reflection
// coefficients k[1..m], the inverse of the analysis lattice behind LPC2PAR.
type Lattice struct{}

func (Lattice) StateLen(order int) int { return order + 1 }

func (l Lattice) Apply(x float64, k, d []float64) (float64, error) {
	m := len(k) - 1
	if err := gosptk.CheckOrder(m); err != nil {
		return 0, err
	}
	if err := gosptk.CheckStateLen("ltcdf", len(d), l.StateLen(m)); err != nil {
		return 0, err
	}
	x -= k[m] * d[m-1]
	for i := m - 1; i >= 1; i-- {
		x -= k[i] * d[i-1]
		d[i] = d[i-1] + k[i]*x
	}
	d[0] = x
	return x, nil
}
