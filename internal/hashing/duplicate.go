package hashing

import "github.com/lgbarn/chess-core-go/internal/chess"

// DuplicateDetector tracks final positions for duplicate game detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by position key
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal game length
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	stored      int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the position key of the final position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint64
	// Plies is the number of half-moves in the game
	Plies int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature builds the signature of a game's final position.
func Signature(b chess.Reader, toMove chess.Colour, plies int) GameSignature {
	return GameSignature{
		Hash:     PositionKey(b, toMove),
		WeakHash: WeakHash(b),
		Plies:    plies,
	}
}

// CheckAndAdd reports whether a game with this signature was seen before and
// records it otherwise. Once the detector is full new signatures are still
// checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}
	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.stored++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}
