package arith

import (
	"errors"
	"math/big"
	"testing"
)

func TestExtendedGCD(t *testing.T) {
	cases := []struct {
		a, b, g int64
	}{
		{240, 46, 2},
		{46, 240, 2},
		{17, 5, 1},
		{0, 7, 7},
		{7, 0, 7},
		{12, 18, 6},
	}

	for _, c := range cases {
		a, b := big.NewInt(c.a), big.NewInt(c.b)
		g, x, y := ExtendedGCD(a, b)
		if g.Int64() != c.g {
			t.Errorf("ExtendedGCD(%d, %d): gcd = %s, want %d", c.a, c.b, g, c.g)
		}

		// Bézout identity: a*x + b*y = g
		lhs := new(big.Int).Mul(a, x)
		lhs.Add(lhs, new(big.Int).Mul(b, y))
		if lhs.Cmp(g) != 0 {
			t.Errorf("ExtendedGCD(%d, %d): %s*%s + %s*%s = %s, want %s",
				c.a, c.b, a, x, b, y, lhs, g)
		}
	}
}

func TestModInverse(t *testing.T) {
	m := big.NewInt(17)

	for a := int64(1); a < 17; a++ {
		inv, err := ModInverse(big.NewInt(a), m)
		if err != nil {
			t.Fatalf("ModInverse(%d, 17) failed: %v", a, err)
		}
		if inv.Sign() < 0 || inv.Cmp(m) >= 0 {
			t.Errorf("ModInverse(%d, 17) = %s, outside [0, 17)", a, inv)
		}

		prod := new(big.Int).Mul(big.NewInt(a), inv)
		prod.Mod(prod, m)
		if prod.Int64() != 1 {
			t.Errorf("ModInverse(%d, 17) = %s, but %d*%s mod 17 = %s", a, inv, a, inv, prod)
		}
	}
}

func TestModInverseNegativeValue(t *testing.T) {
	// -3 mod 17 = 14; the inverse of 14 is 11
	inv, err := ModInverse(big.NewInt(-3), big.NewInt(17))
	if err != nil {
		t.Fatalf("ModInverse(-3, 17) failed: %v", err)
	}
	if inv.Int64() != 11 {
		t.Errorf("ModInverse(-3, 17) = %s, want 11", inv)
	}
}

func TestModInverseLarge(t *testing.T) {
	// secp256k1 field prime
	p, _ := new(big.Int).SetString(
		"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	a, _ := new(big.Int).SetString(
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", 16)

	inv, err := ModInverse(a, p)
	if err != nil {
		t.Fatalf("ModInverse failed: %v", err)
	}

	prod := new(big.Int).Mul(a, inv)
	prod.Mod(prod, p)
	if prod.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("a * a^-1 mod p = %s, want 1", prod)
	}
}

func TestModInverseNotExists(t *testing.T) {
	// gcd(6, 15) = 3, no inverse
	_, err := ModInverse(big.NewInt(6), big.NewInt(15))
	if err == nil {
		t.Fatal("expected error for ModInverse(6, 15)")
	}
	if !errors.Is(err, ErrNoInverse) {
		t.Errorf("error %v does not wrap ErrNoInverse", err)
	}

	var invErr *InverseError
	if !errors.As(err, &invErr) {
		t.Fatalf("error %v is not an *InverseError", err)
	}
	if invErr.Value.Int64() != 6 || invErr.Modulus.Int64() != 15 {
		t.Errorf("InverseError records (%s, %s), want (6, 15)", invErr.Value, invErr.Modulus)
	}
}

func TestModInverseZero(t *testing.T) {
	_, err := ModInverse(big.NewInt(0), big.NewInt(17))
	if !errors.Is(err, ErrNoInverse) {
		t.Errorf("ModInverse(0, 17): got %v, want ErrNoInverse", err)
	}
}
