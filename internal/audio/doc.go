// Package audio handles the file I/O around the command-line front ends:
// WAV and FLAC decoding into mono sample vectors, WAV encoding, and a
// compact half-precision codec for parameter frame files.
package audio
