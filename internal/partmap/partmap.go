// Package partmap provide a partitioned map of the lowest energy per burrow layout.
package partmap

import (
	"hash/maphash"

	"github.com/go-ricrob/amphisolver/internal/packed"
	"github.com/go-ricrob/amphisolver/internal/spinlock"
)

type part struct {
	mu spinlock.Mutex
	m  map[packed.Key]int // layout/energy map
}

// Map is safe for concurrent use; every key is guarded by the lock of its partition.
type Map struct {
	numPart uint64
	seed    maphash.Seed
	parts   []*part
}

// New returns a map with numPart partitions.
func New(numPart uint64) *Map {
	if numPart == 0 {
		numPart = 1
	}
	pm := &Map{
		numPart: numPart,
		seed:    maphash.MakeSeed(),
		parts:   make([]*part, numPart),
	}
	for i := range pm.parts {
		pm.parts[i] = &part{m: make(map[packed.Key]int, 1000)}
	}
	return pm
}

func (pm *Map) part(k packed.Key) *part { return pm.parts[k.Hash(pm.seed)%pm.numPart] }

// Improve stores energy for k if no value or a higher value is stored and reports whether it
// did so. Check and store are atomic.
func (pm *Map) Improve(k packed.Key, energy int) bool {
	part := pm.part(k)
	part.mu.Lock()
	if v, ok := part.m[k]; ok && v <= energy {
		part.mu.Unlock()
		return false
	}
	part.m[k] = energy
	part.mu.Unlock()
	return true
}

// Size returns the number of stored keys.
func (pm *Map) Size() int {
	size := 0
	for _, part := range pm.parts {
		part.mu.Lock()
		size += len(part.m)
		part.mu.Unlock()
	}
	return size
}

// NumPart returns the number of partitions.
func (pm *Map) NumPart() int { return int(pm.numPart) }
