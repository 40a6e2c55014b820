package synth

// Filter is a stateful single-sample synthesis filter. Implementations are
// small value types carrying their structural parameters (warping constant,
// Pade order, stage count); all per-stream state lives in the caller-owned
// delay buffer.
type Filter interface {
	// StateLen returns the exact delay-buffer length required for a
	// coefficient vector of the given order.
	StateLen(order int) int

	// Apply filters one sample. The coefficient vector has order+1
	// entries; the state buffer must have exactly StateLen(order)
	// entries and is mutated in place.
	Apply(x float64, coeffs, state []float64) (float64, error)
}

// NewState allocates a zero-filled delay buffer for one synthesis stream of
// the given filter and order.
func NewState(f Filter, order int) []float64 {
	return make([]float64, f.StateLen(order))
}
