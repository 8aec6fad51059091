package ecgroup

import (
	"errors"

	"github.com/ecclab/ecgroup/internal/crypto/arith"
)

// Common errors returned by the library.
var (
	// ErrNoInverse is the arithmetic-domain error: a modular inverse was
	// requested for a value sharing a common factor with the modulus.
	// It indicates broken curve parameters (a composite prime field) or
	// non-field-conformant inputs, never a transient failure.
	ErrNoInverse = arith.ErrNoInverse

	// ErrInvalidParams is returned by ValidateParams when a curve's
	// parameter set fails one of its checks.
	ErrInvalidParams = errors.New("ecgroup: invalid curve parameters")
)
