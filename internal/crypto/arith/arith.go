package arith

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNoInverse is returned when a modular inverse is requested for a value
// that shares a nontrivial common factor with the modulus. It signals a
// parameter-correctness bug (the modulus is not prime, or the value is zero
// in the field), not a transient condition.
var ErrNoInverse = errors.New("arith: modular inverse does not exist")

// InverseError records the operands of a failed inverse computation.
// It wraps ErrNoInverse so callers can test with errors.Is.
type InverseError struct {
	Value   *big.Int
	Modulus *big.Int
}

func (e *InverseError) Error() string {
	return fmt.Sprintf("arith: no inverse for %s mod %s", e.Value, e.Modulus)
}

func (e *InverseError) Unwrap() error {
	return ErrNoInverse
}

// ExtendedGCD runs the iterative extended Euclidean algorithm on (a, b),
// both assumed non-negative, and returns g = gcd(a, b) together with the
// Bézout coefficients x, y satisfying a*x + b*y = g.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	r0, r1 := new(big.Int).Set(a), new(big.Int).Set(b)
	x0, x1 := big.NewInt(1), big.NewInt(0)
	y0, y1 := big.NewInt(0), big.NewInt(1)

	for r1.Sign() != 0 {
		q, r := new(big.Int).QuoRem(r0, r1, new(big.Int))
		r0, r1 = r1, r

		t := new(big.Int).Mul(q, x1)
		x0, x1 = x1, t.Sub(x0, t)

		t = new(big.Int).Mul(q, y1)
		y0, y1 = y1, t.Sub(y0, t)
	}

	return r0, x0, y0
}

// ModInverse returns the unique integer in [0, m) that is the multiplicative
// inverse of a modulo m. The modulus m must be positive. If gcd(a, m) != 1
// the inverse does not exist and an InverseError is returned.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	// Reduce into [0, m) so the Euclidean loop sees non-negative operands.
	red := new(big.Int).Mod(a, m)

	g, x, _ := ExtendedGCD(red, m)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, &InverseError{
			Value:   new(big.Int).Set(a),
			Modulus: new(big.Int).Set(m),
		}
	}

	// The Bézout coefficient may emerge negative.
	return x.Mod(x, m), nil
}
