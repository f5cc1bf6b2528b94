package packed

import (
	"hash/maphash"
	"testing"
)

func TestPack(t *testing.T) {
	cells := []uint8{0, 1, 2, 3, 4, 5, 6, 15, 0}
	k := Pack(cells)
	if len(k) != Len(len(cells)) {
		t.Fatalf("key length %d, expected %d", len(k), Len(len(cells)))
	}

	// two cells per byte, low nibble first
	if k[0] != 0x10 || k[3] != 0xf6 || k[4] != 0x00 {
		t.Fatalf("unexpected key % x", string(k))
	}
	if Pack(cells[:8]) == k {
		t.Fatal("trailing empty cell does not change the key")
	}

	other := append([]uint8(nil), cells...)
	other[3] = 4
	if Pack(other) == k {
		t.Fatal("different cells share a key")
	}

	seed := maphash.MakeSeed()
	if Pack(cells).Hash(seed) != k.Hash(seed) {
		t.Fatal("equal keys hash differently")
	}
}

func TestPackRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for cell value out of range")
		}
	}()
	Pack([]uint8{16})
}
