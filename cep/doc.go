// Package cep implements plain-cepstrum conversions and FFT-based cepstral
// analysis.
//
// It covers the cepstrum side of the representation conversion graph:
//   - Freqt/Frqtr, all-pass frequency warping of a cepstrum to a new order and alpha
//   - C2Acr, cepstrum to autocorrelation through a fixed-size spectral transform
//   - C2IR/IC2IR, cepstrum to minimum-phase impulse response and back
//   - C2NDPS/NDPS2C, cepstrum to negative-derivative-of-phase spectrum and back
//   - FFTCep, iterative FFT-based cepstral analysis from a log spectrum
//
// Spectral-domain routines take an explicit transform length which must be a
// power of two; violation is rejected before any computation.
package cep
