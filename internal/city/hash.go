package city

// Hasher is a Jenkins one-at-a-time accumulator.
// It is a value type: Absorb returns the updated accumulator.
type Hasher struct {
	h uint32
}

// NewHasher returns an empty accumulator.
func NewHasher() Hasher {
	return Hasher{}
}

// AbsorbByte mixes a single byte into the accumulator.
func (s Hasher) AbsorbByte(b byte) Hasher {
	s.h += uint32(b)
	s.h += s.h << 10
	s.h ^= s.h >> 6
	return s
}

// Absorb mixes a 32-bit word into the accumulator, least significant byte first.
func (s Hasher) Absorb(v uint32) Hasher {
	for i := 0; i < 4; i++ {
		s = s.AbsorbByte(byte(v))
		v >>= 8
	}
	return s
}

// AbsorbBytes mixes every byte of p into the accumulator.
func (s Hasher) AbsorbBytes(p []byte) Hasher {
	for _, b := range p {
		s = s.AbsorbByte(b)
	}
	return s
}

// Finish applies the final avalanche and returns the hash.
func (s Hasher) Finish() uint32 {
	h := s.h
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}
