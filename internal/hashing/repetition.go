package hashing

// RepetitionTracker counts how often each position key has occurred.
type RepetitionTracker struct {
	counts map[uint64]int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{counts: make(map[uint64]int)}
}

// Record notes one occurrence of key and returns its new count.
func (r *RepetitionTracker) Record(key uint64) int {
	r.counts[key]++
	return r.counts[key]
}

// Count returns how often key has occurred.
func (r *RepetitionTracker) Count(key uint64) int {
	return r.counts[key]
}

