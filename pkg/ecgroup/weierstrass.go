package ecgroup

import (
	"math/big"

	"github.com/ecclab/ecgroup/internal/crypto/arith"
)

var three = big.NewInt(3)

// Params holds the defining constants of a short-Weierstrass curve
// y² = x³ + ax + b over the prime field GF(p).
type Params struct {
	A  *big.Int // linear coefficient
	B  *big.Int // constant coefficient
	P  *big.Int // prime modulus of the field
	Gx *big.Int // base point x
	Gy *big.Int // base point y
	N  *big.Int // order of the subgroup generated by the base point
}

// Weierstrass implements Group for the short-Weierstrass curve family.
// The value is immutable once constructed.
//
// The constructor trusts its inputs: P must be prime and N must be the
// exact order of the base point. Neither is verified here; use
// ValidateParams for an explicit (and much more expensive) check.
type Weierstrass struct {
	name string
	a, b *big.Int
	p    *big.Int
	g    Point
	n    *big.Int
}

// NewWeierstrass constructs the curve y² = x³ + ax + b (mod p) with base
// point (gx, gy) of order n. All big.Int parameters are copied, and the
// coefficients are reduced into [0, p).
func NewWeierstrass(a, b, p, gx, gy, n *big.Int) *Weierstrass {
	return &Weierstrass{
		name: "short-weierstrass",
		a:    new(big.Int).Mod(a, p),
		b:    new(big.Int).Mod(b, p),
		p:    new(big.Int).Set(p),
		g:    NewPoint(gx, gy),
		n:    new(big.Int).Set(n),
	}
}

func (c *Weierstrass) Name() string {
	return c.name
}

// Params returns a copy of the curve's defining constants.
func (c *Weierstrass) Params() *Params {
	return &Params{
		A:  new(big.Int).Set(c.a),
		B:  new(big.Int).Set(c.b),
		P:  new(big.Int).Set(c.p),
		Gx: c.g.X(),
		Gy: c.g.Y(),
		N:  new(big.Int).Set(c.n),
	}
}

// BasePoint returns the generator G.
func (c *Weierstrass) BasePoint() Point {
	return c.g
}

// Order returns a copy of the order of the subgroup generated by G.
func (c *Weierstrass) Order() *big.Int {
	return new(big.Int).Set(c.n)
}

// polynomial evaluates x³ + ax + b mod p.
func (c *Weierstrass) polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Add(x3, c.a) // x² + a
	x3.Mul(x3, x)   // x³ + ax
	x3.Add(x3, c.b) // x³ + ax + b
	return x3.Mod(x3, c.p)
}

// IsOnCurve reports whether p satisfies y² ≡ x³ + ax + b (mod P).
// The identity element is on-curve by convention.
func (c *Weierstrass) IsOnCurve(p Point) bool {
	if p.IsIdentity() {
		return true
	}

	y2 := new(big.Int).Mul(p.y, p.y)
	y2.Mod(y2, c.p)

	return c.polynomial(p.x).Cmp(y2) == 0
}

// Negate returns the point with the same x and y replaced by (P−y) mod P.
// The identity negates to itself.
func (c *Weierstrass) Negate(p Point) Point {
	if p.IsIdentity() {
		return p
	}

	y := new(big.Int).Sub(c.p, p.y)
	y.Mod(y, c.p)
	return Point{x: new(big.Int).Set(p.x), y: y}
}

// Add computes the group-law sum of p1 and p2.
func (c *Weierstrass) Add(p1, p2 Point) (Point, error) {
	// Identity law.
	if p1.IsIdentity() {
		return p2, nil
	}
	if p2.IsIdentity() {
		return p1, nil
	}

	var lambda *big.Int
	if p1.x.Cmp(p2.x) == 0 {
		// Same x: either inverse points (vertical chord) or doubling.
		if p1.y.Cmp(p2.y) != 0 {
			return Identity(), nil
		}
		if p1.y.Sign() == 0 {
			// Vertical tangent.
			return Identity(), nil
		}

		// λ = (3x² + a) / 2y
		num := new(big.Int).Mul(p1.x, p1.x)
		num.Mul(num, three)
		num.Add(num, c.a)
		num.Mod(num, c.p)

		den := new(big.Int).Lsh(p1.y, 1)

		inv, err := arith.ModInverse(den, c.p)
		if err != nil {
			return Point{}, err
		}
		lambda = num.Mul(num, inv)
	} else {
		// λ = (y2 − y1) / (x2 − x1)
		num := new(big.Int).Sub(p2.y, p1.y)
		den := new(big.Int).Sub(p2.x, p1.x)

		inv, err := arith.ModInverse(den, c.p)
		if err != nil {
			return Point{}, err
		}
		lambda = num.Mul(num, inv)
	}
	lambda.Mod(lambda, c.p)

	// x3 = λ² − x1 − x2
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p1.x)
	x3.Sub(x3, p2.x)
	x3.Mod(x3, c.p)

	// y3 = λ(x1 − x3) − y1
	y3 := new(big.Int).Sub(p1.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p1.y)
	y3.Mod(y3, c.p)

	return Point{x: x3, y: y3}, nil
}

// Double returns 2*p.
func (c *Weierstrass) Double(p Point) (Point, error) {
	return c.Add(p, p)
}

// ScalarMult computes k*p by binary double-and-add. The scalar is reduced
// modulo the group order first, so k may be negative, zero, or arbitrarily
// large; a negative residue is folded through k*P = (-k)*(-P).
func (c *Weierstrass) ScalarMult(p Point, k *big.Int) (Point, error) {
	k = new(big.Int).Rem(k, c.n)
	if k.Sign() < 0 {
		k.Neg(k)
		p = c.Negate(p)
	}

	acc := Identity()
	q := p
	var err error

	for k.Sign() != 0 {
		if k.Bit(0) == 1 {
			acc, err = c.Add(acc, q)
			if err != nil {
				return Point{}, err
			}
		}
		q, err = c.Add(q, q)
		if err != nil {
			return Point{}, err
		}
		k.Rsh(k, 1)
	}

	return acc, nil
}

// ScalarBaseMult computes k*G for the curve's base point G.
func (c *Weierstrass) ScalarBaseMult(k *big.Int) (Point, error) {
	return c.ScalarMult(c.g, k)
}
