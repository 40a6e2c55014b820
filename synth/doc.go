// Package synth implements the stateful synthesis filter family: seven
// recursive filters, each the structural inverse of one spectral
// representation, driven one input sample at a time.
//
// Every filter satisfies the Filter interface: Apply consumes one excitation
// sample, the current coefficient vector and a caller-owned delay buffer,
// and produces one output sample while updating the buffer in place. The
// required buffer length is an exact per-filter formula of the order and the
// Pade order or stage count; it is validated before every Apply and a
// mismatch is rejected before any computation.
//
// A delay buffer belongs to exactly one synthesis stream. Calls on one
// stream must be totally ordered; distinct streams with distinct buffers may
// run fully in parallel. Index 0 of a coefficient vector (the gain term) is
// never consumed by the filters: gain is applied to the excitation by the
// caller. Numerical stability of the recursions is the caller's
// responsibility.
package synth
