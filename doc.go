// Package gosptk provides speech-parameter analysis and synthesis primitives.
//
// The toolkit converts windowed audio frames into compact spectral
// parameterizations (cepstra, generalized cepstra, mel-generalized cepstra,
// linear-prediction coefficients, line-spectral pairs), converts among these
// representations, and inverts them back to a waveform through a family of
// sample-by-sample recursive filters. It supports:
//   - Iterative spectral fitting of (mel-)generalized cepstra, plain cepstra and LPC
//   - An exact pairwise conversion graph between the supported representations
//   - Seven stateful synthesis filters driven one sample at a time
//   - A shared two-parameter algebra (warping constant alpha, compression exponent gamma)
//
// This root package carries the error taxonomy and the numeric precondition
// checks shared by the leaf packages gcep, cep, lpc, mgcep and synth.
package gosptk
