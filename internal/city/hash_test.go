package city

import (
	"encoding/binary"
	"testing"
)

func TestHasherKnownVectors(t *testing.T) {
	tests := []struct {
		input    string
		expected uint32
	}{
		{"", 0},
		{"a", 0xca2e9442},
		{"The quick brown fox jumps over the lazy dog", 0x519e91f5},
	}

	for _, tc := range tests {
		got := NewHasher().AbsorbBytes([]byte(tc.input)).Finish()
		if got != tc.expected {
			t.Errorf("hash(%q) = %#08x, expected %#08x", tc.input, got, tc.expected)
		}
	}
}

func TestHasherAbsorbIsLittleEndianBytes(t *testing.T) {
	for _, v := range []uint32{0, 1, 0xdeadbeef, 0xffffffff, windowSalt} {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], v)

		word := NewHasher().Absorb(v).Finish()
		bytes := NewHasher().AbsorbBytes(buf[:]).Finish()
		if word != bytes {
			t.Errorf("Absorb(%#x) = %#08x, expected %#08x", v, word, bytes)
		}
	}
}

func TestHasherIsValueType(t *testing.T) {
	base := NewHasher().Absorb(7)
	a := base.Absorb(1).Finish()
	b := base.Absorb(1).Finish()
	if a != b {
		t.Errorf("absorbing into a copy changed the base accumulator: %#x != %#x", a, b)
	}
}

func TestHasherSpreadsNeighbouringCells(t *testing.T) {
	// Adjacent cells should not collide
	seen := make(map[uint32][2]int)
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			h := NewHasher().Absorb(windowSalt).Absorb(uint32(x)).Absorb(uint32(y)).Finish()
			if prev, dup := seen[h]; dup {
				t.Fatalf("hash collision between %v and (%d, %d)", prev, x, y)
			}
			seen[h] = [2]int{x, y}
		}
	}
}
