// Command synth renders a parameter file back into speech.
//
// Each mel-cepstral frame drives an MLSA synthesis filter over one frame
// shift of excitation: a pulse train at the given pitch period, or white
// noise when the period is 0. The result is written as a 16-bit mono WAV
// file.
//
// Usage:
//
//	synth <param_file> <wav_file> [pitch_period] [alpha]
package main
