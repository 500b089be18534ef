package progressive

import (
	"sort"

	"progressive-squares/residue"
)

// Defaults for the full-scale run: all progressive perfect squares
// below one trillion, filtered through the mod-64 residue table.
const (
	DefaultBound   uint64 = 1_000_000_000_000
	DefaultModulus uint64 = 64
)

// Searcher enumerates progressive perfect squares below Bound.
// The zero value of a field falls back to the matching default; the
// residue table is built on demand when none is supplied.
type Searcher struct {
	Bound    uint64
	Residues *residue.Set

	// SkipNonCoprime skips (a, b) pairs with gcd(a, b) > 1. The
	// derivation assumes the ratio a/b is in lowest terms; pairs with
	// a common factor regenerate triples already covered by the
	// reduced pair scaled through c, so skipping them only avoids
	// redundant work. The solution set absorbs the duplicates either
	// way.
	SkipNonCoprime bool
}

// Result holds the deduplicated solution set of one search together
// with enumeration counters.
type Result struct {
	Bound uint64

	// Pairs is the number of (a, b) coordinates visited and
	// Candidates the number of n values generated under the bound.
	Pairs      uint64
	Candidates uint64

	sols map[uint64]struct{}
}

// Run performs the full enumeration.
//
// The outer loop stops at the cube root of the bound: with b = c = 1
// the smallest candidate for a given a is already a³ + 1, so larger a
// cannot produce anything under the bound. The middle loop enforces
// b < a (the ordering r < d <= q requires ratio a/b > 1). The inner
// loop is unbounded in c but n grows monotonically with c for fixed
// (a, b), so the first candidate reaching the bound ends it exactly.
func (s *Searcher) Run() (*Result, error) {
	bound := s.Bound
	if bound == 0 {
		bound = DefaultBound
	}
	set := s.Residues
	if set == nil {
		var err error
		set, err = residue.New(DefaultModulus)
		if err != nil {
			return nil, err
		}
	}

	res := &Result{
		Bound: bound,
		sols:  make(map[uint64]struct{}),
	}
	for a := uint64(1); a*a*a < bound; a++ {
		for b := uint64(1); b < a; b++ {
			if s.SkipNonCoprime && gcd(a, b) != 1 {
				continue
			}
			res.Pairs++
			for c := uint64(1); ; c++ {
				n := Candidate(a, b, c)
				if n >= bound {
					break
				}
				res.Candidates++
				if set.IsPerfectSquare(n) {
					res.sols[n] = struct{}{}
				}
			}
		}
	}
	return res, nil
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Len returns the number of distinct solutions.
func (r *Result) Len() int { return len(r.sols) }

// Contains reports whether n is in the solution set.
func (r *Result) Contains(n uint64) bool {
	_, ok := r.sols[n]
	return ok
}

// Values returns the solutions in ascending order.
func (r *Result) Values() []uint64 {
	out := make([]uint64, 0, len(r.sols))
	for n := range r.sols {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Roots returns the integer square roots of the solutions in
// ascending order.
func (r *Result) Roots() []uint64 {
	vals := r.Values()
	for i, n := range vals {
		vals[i] = residue.Isqrt(n)
	}
	return vals
}

// Sum returns the sum of all solutions. For the trillion bound the
// total stays far below 2^63, so 64-bit accumulation is exact.
func (r *Result) Sum() uint64 {
	var sum uint64
	for n := range r.sols {
		sum += n
	}
	return sum
}
