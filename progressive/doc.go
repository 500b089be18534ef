package progressive

// Package progressive enumerates progressive perfect squares: integers
// n = d*q + r whose remainder, divisor and quotient form three
// consecutive terms of a geometric sequence, and which are themselves
// perfect squares.
//
// Instead of searching over (n, d, q, r) directly, the search runs
// over a change of variables (a, b, c) that generates exactly the
// harmonically related triples, so every candidate is valid by
// construction and only the perfect-square property remains to test.
