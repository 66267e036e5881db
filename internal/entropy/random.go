// Package entropy provides the seeded pseudo-random streams behind every
// generated field. Each field owns its own Stream; there is no shared
// package-level generator.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"log/slog"
)

// increment is the Weyl sequence constant added to the state on every draw.
const increment uint32 = 0x6D2B79F5

// Stream is a Mulberry32 generator. The N-th draw for a given seed is the
// same on every platform because all arithmetic is uint32 with wraparound.
type Stream struct {
	seed  uint32
	state uint32
}

// NewStream creates a stream positioned before its first draw.
func NewStream(seed uint32) *Stream {
	return &Stream{seed: seed, state: seed}
}

// Seed returns the seed the stream was created (or last reset) with.
func (s *Stream) Seed() uint32 {
	return s.seed
}

// Next advances the state and returns the raw 32-bit output.
func (s *Stream) Next() uint32 {
	s.state += increment
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Float returns the next value in [0, 1).
func (s *Stream) Float() float64 {
	return float64(s.Next()) / 4294967296.0
}

// Range returns the next value scaled into [min, max).
func (s *Stream) Range(min, max float64) float64 {
	return min + s.Float()*(max-min)
}

// Reset rewinds the stream to its seed.
func (s *Stream) Reset() {
	s.state = s.seed
}

// SeedFromInt64 folds a configuration seed into the 32 bits a Stream uses.
// Seeds that already fit in 32 bits (signed or unsigned) map to themselves.
func SeedFromInt64(seed int64) uint32 {
	if seed >= -1<<31 && seed < 1<<32 {
		return uint32(seed)
	}
	u := uint64(seed)
	return uint32(u) ^ uint32(u>>32)
}

// RandomSeed returns a seed from crypto/rand. Only the host process calls
// this, and only when the operator did not configure a seed.
func RandomSeed() uint32 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// This should never happen; fall back to the default scene seed.
		slog.Warn("crypto/rand unavailable, using fixed seed", "error", err)
		return 54321
	}
	return binary.LittleEndian.Uint32(buf[:])
}
