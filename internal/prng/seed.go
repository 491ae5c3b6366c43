package prng

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	fnvOffset64 = 0xcbf29ce484222325
	fnvPrime64  = 0x100000001b3
	golden64    = 0x9e3779b97f4a7c15
)

// Seed is a user supplied seed value. Numeric seeds are normalised to their
// decimal text so that 42 and "42" produce the same stream.
type Seed struct {
	text string
}

func TextSeed(text string) Seed {
	return Seed{text: text}
}

func NumberSeed(n int64) Seed {
	return Seed{text: strconv.FormatInt(n, 10)}
}

func (s Seed) String() string {
	return s.text
}

// IsZero reports whether no seed was supplied.
func (s Seed) IsZero() bool {
	return s.text == ""
}

func (s Seed) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.text)
}

// UnmarshalJSON accepts either a JSON string or a JSON integer.
func (s *Seed) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		s.text = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("invalid seed: %w", err)
		}
		s.text = text
		return nil
	}
	if !isIntegerLiteral(data) {
		return fmt.Errorf("seed must be a string or an integer, got %s", data)
	}
	if n, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*s = NumberSeed(n)
		return nil
	}
	// Integers beyond int64 keep their literal digits.
	s.text = string(data)
	return nil
}

// isIntegerLiteral accepts an optional minus sign followed by digits only.
func isIntegerLiteral(data []byte) bool {
	if len(data) > 0 && data[0] == '-' {
		data = data[1:]
	}
	if len(data) == 0 {
		return false
	}
	for _, c := range data {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// HashSeed turns seed text into a generator state. The bytes are folded with
// FNV-1a and the result is expanded through SplitMix64 into four words.
func HashSeed(text string) State {
	mix := hashBytes(text)
	a := splitMix64(&mix)
	b := splitMix64(&mix)
	return State{uint32(a), uint32(a >> 32), uint32(b), uint32(b >> 32)}.nonZero()
}

// Hash64 exposes the folded seed hash. It is used to namespace identifiers.
func Hash64(text string) uint64 {
	mix := hashBytes(text)
	return splitMix64(&mix)
}

func hashBytes(text string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(text); i++ {
		h ^= uint64(text[i])
		h *= fnvPrime64
	}
	return h
}

func splitMix64(state *uint64) uint64 {
	*state += golden64
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
