// Package gcep implements the generalized log/exp algebra shared by every
// analyzer and converter in the toolkit.
//
// The algebra is a one-parameter family indexed by the compression exponent
// gamma, interpolating between the ordinary logarithm/exponential (gamma -> 0)
// and power-law compression (gamma != 0). It supports:
//   - Gexp/Glog, exact mutual inverses over the valid domain for every gamma
//   - Gnorm/Ignorm, moving the generalized gain in and out of index 0
//   - GC2GC, rescaling a generalized cepstrum from one gamma to another
package gcep
