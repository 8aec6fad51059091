package ecgroup

import (
	"fmt"
	"math/big"
)

// Point is an affine point on an elliptic curve, or the identity element
// (the point at infinity). The identity is a tagged variant rather than a
// sentinel coordinate pair, so curves passing through (0, 0) remain
// unambiguous.
//
// Points are immutable values: constructors and accessors copy their
// big.Int operands, and two points are equal iff they are both the identity
// or share both coordinates.
type Point struct {
	x, y     *big.Int
	infinity bool
}

// NewPoint constructs the affine point (x, y). The coordinates are copied;
// callers remain free to mutate their own big.Ints afterwards.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x: new(big.Int).Set(x),
		y: new(big.Int).Set(y),
	}
}

// Identity returns the neutral element of the curve group.
func Identity() Point {
	return Point{infinity: true}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.infinity
}

// X returns a copy of the x coordinate. For the identity it returns zero.
func (p Point) X() *big.Int {
	if p.infinity {
		return new(big.Int)
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate. For the identity it returns zero.
func (p Point) Y() *big.Int {
	if p.infinity {
		return new(big.Int)
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if p.infinity {
		return "Identity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
