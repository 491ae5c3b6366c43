// Package prng provides the deterministic random source used by every
// generation stage.
//
// A Generator is a xoshiro128** bit generator over four 32-bit words. Only
// fixed-width unsigned arithmetic is used, so a seed yields the same sequence
// on every platform. Streams are split with Fork, which derives a child state
// from the parent's current state and a label without advancing the parent.
package prng

import "math/bits"

// State is the full internal state of a Generator.
type State [4]uint32

func (s State) nonZero() State {
	if s == (State{}) {
		s[0] = 0x9e3779b9
	}
	return s
}

type Generator struct {
	s State
}

// New seeds a generator from a user seed.
func New(seed Seed) *Generator {
	return FromState(HashSeed(seed.String()))
}

// FromState builds a generator that continues from s. The all-zero state is
// not a valid xoshiro state and is replaced by a fixed non-zero one.
func FromState(s State) *Generator {
	return &Generator{s: s.nonZero()}
}

// State returns a copy of the current state.
func (g *Generator) State() State {
	return g.s
}

// Uint32 advances the generator and returns the next 32 bits.
func (g *Generator) Uint32() uint32 {
	s := &g.s
	result := bits.RotateLeft32(s[1]*5, 7) * 9
	t := s[1] << 9

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = bits.RotateLeft32(s[3], 11)

	return result
}

// Float64 returns a value in [0, 1) with 53 bits of precision. Two words are
// consumed per call.
func (g *Generator) Float64() float64 {
	a := g.Uint32() >> 5
	b := g.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}

// Int returns a value in [min, max], both inclusive. Swapped bounds are
// reordered.
func (g *Generator) Int(min, max int) int {
	if max < min {
		min, max = max, min
	}
	span := float64(int64(max) - int64(min) + 1)
	offset := int64(span * g.Float64())
	if float64(offset) >= span {
		offset = int64(span) - 1
	}
	return min + int(offset)
}

// Range returns a value in [min, max).
func (g *Generator) Range(min, max float64) float64 {
	return min + (max-min)*g.Float64()
}

// Fork derives an independent child stream. The child depends only on the
// parent's current state and the label; the parent is not advanced, so
// forking the same label twice from the same point yields the same stream.
func (g *Generator) Fork(label string) *Generator {
	h := hashBytes(label)
	lo := (uint64(g.s[0]) | uint64(g.s[1])<<32) ^ h
	hi := (uint64(g.s[2]) | uint64(g.s[3])<<32) ^ bits.RotateLeft64(h, 29)*golden64

	a := splitMix64(&lo)
	b := splitMix64(&hi)
	a ^= splitMix64(&hi)
	b ^= splitMix64(&lo)

	return FromState(State{uint32(a), uint32(a >> 32), uint32(b), uint32(b >> 32)})
}
