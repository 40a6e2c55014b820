package gcep

import "math"

// Gexp evaluates the generalized exponential (1+gamma*x)^(1/gamma). At
// gamma=0 it degenerates to exp(x). Outside the valid domain (1+gamma*x <= 0
// with gamma != 0) the result is defined as zero rather than an error, so the
// function is total.
func Gexp(gamma, x float64) float64 {
	if gamma == 0 {
		return math.Exp(x)
	}
	t := 1 + gamma*x
	if t <= 0 {
		return 0
	}
	return math.Pow(t, 1/gamma)
}

// Glog evaluates the generalized logarithm (y^gamma - 1)/gamma, the inverse
// of Gexp. At gamma=0 it degenerates to ln(y).
func Glog(gamma, y float64) float64 {
	if gamma == 0 {
		return math.Log(y)
	}
	return (math.Pow(y, gamma) - 1) / gamma
}
