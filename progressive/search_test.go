package progressive

import (
	"testing"

	"progressive-squares/residue"
)

func TestSearchSmallBound(t *testing.T) {
	s := &Searcher{Bound: 100_000}
	res, err := s.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Documented: the sum of all progressive perfect squares below
	// one hundred thousand is 124657, and 9 = 3² and 10404 = 102²
	// are among them.
	if got := res.Sum(); got != 124_657 {
		t.Fatalf("sum below 100000: got %d want 124657", got)
	}
	if !res.Contains(9) || !res.Contains(10_404) {
		t.Fatalf("solution set %v missing 9 or 10404", res.Values())
	}
	roots := res.Roots()
	found3, found102 := false, false
	for _, r := range roots {
		if r == 3 {
			found3 = true
		}
		if r == 102 {
			found102 = true
		}
	}
	if !found3 || !found102 {
		t.Fatalf("roots %v missing 3 or 102", roots)
	}
}

func TestSearchSolutionsAreProgressiveSquares(t *testing.T) {
	set, err := residue.New(64)
	if err != nil {
		t.Fatalf("residue.New: %v", err)
	}
	s := &Searcher{Bound: 100_000, Residues: set}
	res, err := s.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	prev := uint64(0)
	for i, n := range res.Values() {
		if n >= s.Bound {
			t.Fatalf("solution %d not below bound", n)
		}
		if i > 0 && n <= prev {
			t.Fatalf("Values not strictly ascending at %d", n)
		}
		prev = n
		r := residue.Isqrt(n)
		if r*r != n {
			t.Fatalf("solution %d is not a perfect square", n)
		}
	}
}

func TestCoprimeSkipPreservesResult(t *testing.T) {
	full, err := (&Searcher{Bound: 100_000}).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	skip, err := (&Searcher{Bound: 100_000, SkipNonCoprime: true}).Run()
	if err != nil {
		t.Fatalf("Run (coprime): %v", err)
	}
	a, b := full.Values(), skip.Values()
	if len(a) != len(b) {
		t.Fatalf("solution counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("solution sets differ at index %d: %d vs %d", i, a[i], b[i])
		}
	}
	if skip.Pairs >= full.Pairs {
		t.Fatalf("coprime skip visited %d pairs, full search %d", skip.Pairs, full.Pairs)
	}
}

func TestDuplicateCoordinatesCollapse(t *testing.T) {
	// (2,1,4) and (4,2,1) generate the same n; the non-coprime pair
	// (4,2) is the (2,1) ratio scaled by 2.
	n1 := Candidate(2, 1, 4)
	n2 := Candidate(4, 2, 1)
	if n1 != n2 {
		t.Fatalf("expected colliding candidates, got %d and %d", n1, n2)
	}

	res := &Result{sols: make(map[uint64]struct{})}
	res.sols[n1] = struct{}{}
	res.sols[n2] = struct{}{}
	if res.Len() != 1 {
		t.Fatalf("set kept %d entries for one value", res.Len())
	}
}

func TestSearchIdempotent(t *testing.T) {
	first, err := (&Searcher{Bound: 100_000}).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := (&Searcher{Bound: 100_000}).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	d1 := NewReport(first, DefaultModulus).Digest()
	d2 := NewReport(second, DefaultModulus).Digest()
	if d1 != d2 {
		t.Fatalf("digests differ across identical runs: %x vs %x", d1, d2)
	}
}

func TestSearchFullBound(t *testing.T) {
	if testing.Short() {
		t.Skip("full trillion-bound search skipped in short mode")
	}
	res, err := (&Searcher{}).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Pinned from the first verified full-scale run.
	if got := res.Sum(); got != 878_454_337_159 {
		t.Fatalf("sum below 10^12: got %d want 878454337159", got)
	}
}
