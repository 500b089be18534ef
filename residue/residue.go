// Package residue implements a quadratic-residue filter for fast
// perfect-square testing. A bit-vector records every residue that a
// square can have modulo a small power of two; any integer whose
// residue is absent from the table cannot be a perfect square, which
// rules out most candidates without touching floating point.
package residue

import (
	"fmt"
	"math"
	"math/bits"
)

// Set is the immutable table of quadratic residues modulo a fixed
// power-of-two modulus. Bit (k² mod M) is set for every k in [0, M).
// Built once by New; read-only thereafter.
type Set struct {
	mod   uint64
	mask  uint64
	words []uint64
}

// New builds the residue table for the given modulus. Only M
// squarings are needed because a² mod M depends only on a mod M.
// The modulus must be a non-zero power of two so that residue
// extraction reduces to a bit mask. Powers of two also keep the
// table sparse: M=64 sets only 12 of 64 bits.
func New(mod uint64) (*Set, error) {
	if mod == 0 {
		return nil, fmt.Errorf("residue: modulus must be non-zero")
	}
	if mod&(mod-1) != 0 {
		return nil, fmt.Errorf("residue: modulus %d is not a power of two", mod)
	}
	s := &Set{
		mod:   mod,
		mask:  mod - 1,
		words: make([]uint64, (mod+63)/64),
	}
	for k := uint64(0); k < mod; k++ {
		r := (k * k) & s.mask
		s.words[r>>6] |= 1 << (r & 63)
	}
	return s, nil
}

// Mod returns the modulus the table was built for.
func (s *Set) Mod() uint64 { return s.mod }

// Contains reports whether v mod M is a quadratic residue.
func (s *Set) Contains(v uint64) bool {
	r := v & s.mask
	return s.words[r>>6]>>(r&63)&1 == 1
}

// Count returns the number of distinct quadratic residues mod M.
func (s *Set) Count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsPerfectSquare reports whether n is a perfect square. The residue
// table rejects most non-squares in O(1); survivors are confirmed
// exactly via Isqrt, so there are no false positives and no false
// negatives.
func (s *Set) IsPerfectSquare(n uint64) bool {
	if !s.Contains(n) {
		return false
	}
	r := Isqrt(n)
	return r*r == n
}

// maxRoot is the largest r with r*r representable in a uint64.
const maxRoot = 1<<32 - 1

// Isqrt returns the integer square root floor(√n). A float64 estimate
// seeds the value and integer bracketing corrects the off-by-one
// rounding that float sqrt can produce near large squares.
func Isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(n)))
	if r > maxRoot {
		r = maxRoot
	}
	for r*r > n {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
