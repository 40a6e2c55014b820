package synth

// Coefficients of the classical Pade approximations of exp(x) used by the
// log-magnitude-approximation filters. Only degrees 4 and 5 are supported.
var (
	pade4 = [...]float64{1.0, 4.999273e-1, 1.067005e-1, 1.170221e-2, 5.656279e-4}
	pade5 = [...]float64{1.0, 4.999391e-1, 1.107098e-1, 1.369984e-2, 9.564853e-4, 3.041721e-5}
)

func padeTable(pd int) []float64 {
	if pd == 4 {
		return pade4[:]
	}
	return pade5[:]
}
