// Package mgcep implements the iterative spectral analysis engine and the
// mel-generalized side of the representation conversion graph.
//
// One Newton-type fitting engine over the two-parameter algebra (warping
// constant alpha, compression exponent gamma) backs all analyzers:
//   - MGCep, mel-generalized cepstral analysis with a 6-way output selector
//   - MCep (gamma=0), GCep (alpha=0) and UELS (alpha=0, gamma=0) specializations
//
// Conversions:
//   - MC2B/B2MC between mel-cepstrum and MLSA filter coefficients
//   - MGC2MGC rescaling both alpha and gamma in one combined recursion
//   - MGC2SP evaluating the complex log spectrum of a model
//
// Every analysis call interprets its frame through an input-type code and a
// flooring policy, and bounds its refinement loop by a deterministic
// iteration budget. Analysis is a pure function of its inputs and safe to
// run concurrently across independent frames.
package mgcep
