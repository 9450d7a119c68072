package hashing

import "sync"

// ThreadSafeDuplicateDetector wraps DuplicateDetector with mutex protection for concurrent access.
type ThreadSafeDuplicateDetector struct {
	detector *DuplicateDetector
	mu       sync.RWMutex
}

// NewThreadSafeDuplicateDetector creates a new thread-safe detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(exactMatch bool, maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(exactMatch, maxCapacity),
	}
}

// CheckAndAdd atomically checks if a game is a duplicate and records it.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAdd(sig)
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of unique games.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.IsFull()
}
