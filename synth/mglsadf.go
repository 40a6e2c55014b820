package synth

import (
	gosptk "github.com/neurlang/gosptk"
)

// MGLSA is the mel-generalized log-spectral approximation synthesis filter:
// Stage cascaded frequency-warped all-pole sections driven by
// gamma-multiplied b-form coefficients (MGCep output type 5), with
// gamma = -1/Stage. Alpha must match the analysis warping.
type MGLSA struct {
	Alpha float64
	Stage int
}

func (f MGLSA) StateLen(order int) int { return (order + 1) * f.Stage }

func (f MGLSA) Apply(x float64, b, d []float64) (float64, error) {
	m := len(b) - 1
	if err := gosptk.CheckOrder(m); err != nil {
		return 0, err
	}
	if err := gosptk.CheckStage(f.Stage); err != nil {
		return 0, err
	}
	if err := gosptk.CheckStateLen("mglsadf", len(d), f.StateLen(m)); err != nil {
		return 0, err
	}
	for i := 0; i < f.Stage; i++ {
		x = mglsadff(x, b, f.Alpha, d[i*(m+1):(i+1)*(m+1)])
	}
	return x, nil
}

func mglsadff(x float64, b []float64, a float64, d []float64) float64 {
	m := len(b) - 1
	y := d[0] * b[1]
	for i := 1; i < m; i++ {
		d[i] += a * (d[i+1] - d[i-1])
		y += d[i] * b[i+1]
	}
	x -= y
	for i := m; i > 0; i-- {
		d[i] = d[i-1]
	}
	d[0] = a*d[0] + (1-a*a)*x
	return x
}
