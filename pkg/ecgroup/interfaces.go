package ecgroup

import "math/big"

// Group defines the interface a curve family exposes for group arithmetic.
// Implementations are immutable after construction, so a single Group value
// may be shared freely between goroutines.
//
// Operations do not validate their operands: feeding a point that is not on
// the curve produces a well-typed but mathematically meaningless result.
// Callers that accept untrusted coordinates should check IsOnCurve first.
type Group interface {
	// Name returns a human-readable name for the curve.
	Name() string

	// IsOnCurve reports whether p satisfies the curve equation.
	// The identity element is on every curve by convention.
	IsOnCurve(p Point) bool

	// Negate returns the additive inverse of p.
	Negate(p Point) Point

	// Add returns the group-law sum of p1 and p2.
	Add(p1, p2 Point) (Point, error)

	// Double returns 2*p.
	Double(p Point) (Point, error)

	// ScalarMult returns k*p. The scalar may be negative, zero, or larger
	// than the group order; it is reduced modulo the order first.
	ScalarMult(p Point, k *big.Int) (Point, error)

	// ScalarBaseMult returns k*G, where G is the base point.
	ScalarBaseMult(k *big.Int) (Point, error)

	// BasePoint returns the generator G.
	BasePoint() Point

	// Order returns the order of the subgroup generated by G.
	Order() *big.Int
}
