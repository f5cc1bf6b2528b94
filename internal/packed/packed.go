// Package packed provides memory efficient representations of burrow layouts.
package packed

import (
	"hash/maphash"
	"unsafe"
)

// Key is a compressed representation of a cell array: two cells per byte.
// Keys are comparable and therefore usable as map keys.
type Key string

// Hash returns a hash value of k.
func (k Key) Hash(seed maphash.Seed) uint64 { return maphash.String(seed, string(k)) }

// Len returns the number of cells packed into k when n cells were packed.
func Len(n int) int { return (n + 1) / 2 }

// Pack returns the packed representation of cells. Cell values must fit into 4 bits.
func Pack[C ~uint8](cells []C) Key {
	b := make([]byte, Len(len(cells)))
	for i, c := range cells {
		if c > 0x0f {
			panic("packed: cell value out of range")
		}
		b[i>>1] |= byte(c) << ((i & 1) << 2)
	}
	return Key(unsafe.String(unsafe.SliceData(b), len(b)))
}
