package progressive

// The change of variables: write n = d*q + r and require (r, d, q) to
// be consecutive terms of a geometric sequence with ratio a/b. The
// ordering r < d <= q forces a/b > 1, i.e. b < a. Then d = r*(a/b) and
// q = r*(a/b)²; for d and q to be integers, r must be divisible by b².
// Substituting r = c*b² for integral c >= 1:
//
//	r = c*b²,  d = c*a*b,  q = c*a²
//	n = d*q + r = c²*a³*b + c*b²
//
// so every (a, b, c) generates a harmonically related (r, d, q) and
// its progressive number n, and no other n can arise.

// Candidate returns n = c²*a³*b + c*b² for search coordinates (a, b, c).
func Candidate(a, b, c uint64) uint64 {
	return c*c*a*a*a*b + c*b*b
}

// Triple is the remainder, divisor and quotient generated by one
// (a, b, c) coordinate.
type Triple struct {
	R, D, Q uint64
}

// Decompose expands search coordinates into the (r, d, q) triple they
// generate.
func Decompose(a, b, c uint64) Triple {
	return Triple{R: c * b * b, D: c * a * b, Q: c * a * a}
}

// N returns the progressive number d*q + r of the triple.
func (t Triple) N() uint64 {
	return t.D*t.Q + t.R
}

// IsGeometric reports whether d/r == q/d, compared by
// cross-multiplication to stay in exact integer arithmetic.
func (t Triple) IsGeometric() bool {
	return t.D*t.D == t.R*t.Q
}
