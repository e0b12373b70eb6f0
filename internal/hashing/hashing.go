// Package hashing provides duplicate detection for replayed games.
package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// DuplicateDetector tracks the final positions of replayed games. It is
// safe for concurrent use.
type DuplicateDetector struct {
	mu sync.RWMutex
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same number of plies
	useExactMatch  bool
	maxCapacity    int
	duplicateCount int
	size           int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// PlyCount is the number of half-moves played
	PlyCount int
	// WeakHash is a fast secondary hash
	WeakHash uint32
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

// CheckAndAdd reports whether the position (board, toMove) reached after
// plies half-moves was seen before, and records it if not.
func (d *DuplicateDetector) CheckAndAdd(board chess.BoardView, toMove chess.Colour, plies int) bool {
	if board == nil {
		return false
	}

	sig := GameSignature{
		Hash:     GenerateZobristHash(board, toMove),
		PlyCount: plies,
		WeakHash: WeakHash(board),
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.maxCapacity > 0 && d.size >= d.maxCapacity {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.size
}

// IsFull reports whether the detector has reached its capacity limit.
// Always false for unlimited capacity.
func (d *DuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.size = 0
}
