// Command mgcsp renders a parameter file as a log-spectrogram image.
//
// Each mel-generalized cepstral frame is evaluated on a spectral grid and
// the resulting log-amplitude matrix is written as a PNG heat map, frames
// along the x axis and frequency bins along the y axis (low frequencies at
// the bottom).
//
// Usage:
//
//	mgcsp <param_file> <png_file> [alpha] [gamma]
package main
