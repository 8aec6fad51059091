package ecgroup

import (
	"crypto/elliptic"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 returns the secp256k1 curve (y² = x³ + 7) as a generic
// Weierstrass group. Parameters are taken from the decred implementation,
// which also serves as the differential oracle in the test suite.
func Secp256k1() *Weierstrass {
	params := secp256k1.S256().Params()
	c := NewWeierstrass(new(big.Int), params.B, params.P, params.Gx, params.Gy, params.N)
	c.name = "secp256k1"
	return c
}

// P256 returns the NIST P-256 curve (a = −3 mod p) as a generic
// Weierstrass group.
func P256() *Weierstrass {
	params := elliptic.P256().Params()
	a := new(big.Int).Sub(params.P, three)
	c := NewWeierstrass(a, params.B, params.P, params.Gx, params.Gy, params.N)
	c.name = "P-256"
	return c
}
