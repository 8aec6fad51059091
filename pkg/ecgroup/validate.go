package ecgroup

import (
	"fmt"
	"math/big"
)

// millerRabinRounds is the number of Miller-Rabin rounds used by the
// primality checks. big.Int.ProbablyPrime also runs a Baillie-PSW test,
// so the false-positive probability is negligible.
const millerRabinRounds = 64

// ValidateParams checks the preconditions the arithmetic itself trusts
// silently: P is prime, the curve is non-singular, the base point lies on
// the curve, and the claimed order annihilates the base point. It is an
// explicit, separately-invoked routine; no group-law operation calls it.
//
// The returned error wraps ErrInvalidParams.
func (c *Weierstrass) ValidateParams() error {
	if c.p.Sign() <= 0 || !c.p.ProbablyPrime(millerRabinRounds) {
		return fmt.Errorf("%w: modulus %s is not prime", ErrInvalidParams, c.p)
	}

	// Non-singularity: 4a³ + 27b² ≠ 0 (mod p).
	disc := new(big.Int).Exp(c.a, three, c.p)
	disc.Lsh(disc, 2)
	b2 := new(big.Int).Mul(c.b, c.b)
	b2.Mul(b2, big.NewInt(27))
	disc.Add(disc, b2)
	disc.Mod(disc, c.p)
	if disc.Sign() == 0 {
		return fmt.Errorf("%w: curve is singular (4a³ + 27b² ≡ 0)", ErrInvalidParams)
	}

	if !c.IsOnCurve(c.g) {
		return fmt.Errorf("%w: base point %s is not on the curve", ErrInvalidParams, c.g)
	}

	if c.n.Sign() <= 0 {
		return fmt.Errorf("%w: order %s is not positive", ErrInvalidParams, c.n)
	}

	// n*G must be the identity if n is the base point's order. ScalarMult
	// reduces modulo n, so check (n-1)*G + G instead.
	last, err := c.ScalarMult(c.g, new(big.Int).Sub(c.n, big.NewInt(1)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	nG, err := c.Add(last, c.g)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if !nG.IsIdentity() {
		return fmt.Errorf("%w: order %s does not annihilate the base point", ErrInvalidParams, c.n)
	}

	return nil
}
