// Package lpc implements linear-prediction analysis and the LPC side of the
// representation conversion graph.
//
// It supports:
//   - Autocorrelation-method LPC via the Levinson-Durbin recursion, with a
//     degraded-result flag when the estimated filter is unstable
//   - LPC2PAR/PAR2LPC lattice recursions, exact mutual inverses
//   - LPC2LSP root finding on the unit circle (Chebyshev grid sweep plus
//     bisection refinement) and the inverse LSP2LPC reconstruction
//   - LSP2SP log-spectrum evaluation
//
// Coefficient vectors follow the toolkit convention: index 0 carries the
// gain, indices 1..order the predictor coefficients of A(z) = 1 + sum a_i z^-i.
package lpc
