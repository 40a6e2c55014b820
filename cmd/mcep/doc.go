// Command mcep extracts mel-cepstral parameter frames from an audio file.
//
// The input WAV or FLAC file is cut into overlapping windowed frames, each
// frame's amplitude spectrum is fitted by mel-cepstral analysis, and the
// resulting coefficient vectors are written as a compact parameter file
// consumable by the synth and mgcsp commands.
//
// Usage:
//
//	mcep <audio_file> <param_file> [order] [alpha]
//
// Supported input formats: .wav, .flac
package main
