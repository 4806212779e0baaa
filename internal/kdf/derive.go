package kdf

import (
	"fmt"

	cerrors "github.com/jakejohns/chargon/internal/errors"
	"golang.org/x/crypto/argon2"
)

// Derive produces n bytes of raw key material from a passphrase and salt
// using the Argon2 parameters in params.
//
// Returns ErrKeyDerivationFailed if the passphrase or salt is empty, or if
// the parameters are ones the Argon2 primitive rejects (zero iterations,
// too little memory, an unsupported variant or version).
func Derive(passphrase, salt []byte, params Params, n int) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, fmt.Errorf("empty passphrase: %w", cerrors.ErrKeyDerivationFailed)
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("empty salt: %w", cerrors.ErrKeyDerivationFailed)
	}
	if n <= 0 {
		return nil, fmt.Errorf("requested output length %d: %w", n, cerrors.ErrKeyDerivationFailed)
	}
	if err := checkParams(params); err != nil {
		return nil, err
	}

	switch params.Variant {
	case VariantArgon2i:
		return argon2.Key(passphrase, salt, params.Iterations, params.MemoryKiB, params.Parallelism, uint32(n)), nil
	case VariantArgon2id:
		return argon2.IDKey(passphrase, salt, params.Iterations, params.MemoryKiB, params.Parallelism, uint32(n)), nil
	}
	// argon2d is a valid wire variant but x/crypto/argon2 does not
	// implement it, so a container using it cannot be processed here.
	return nil, fmt.Errorf("variant %q is not supported by this build: %w", params.Variant, cerrors.ErrKeyDerivationFailed)
}

// checkParams rejects parameter tuples before they reach the primitive,
// which panics rather than returning errors on invalid costs.
func checkParams(params Params) error {
	if params.Iterations < 1 {
		return fmt.Errorf("iteration count must be at least 1: %w", cerrors.ErrKeyDerivationFailed)
	}
	if params.Parallelism < 1 {
		return fmt.Errorf("parallelism must be at least 1: %w", cerrors.ErrKeyDerivationFailed)
	}
	if params.MemoryKiB < 8*uint32(params.Parallelism) {
		return fmt.Errorf("memory cost %d KiB is below the Argon2 minimum of 8 KiB per thread: %w",
			params.MemoryKiB, cerrors.ErrKeyDerivationFailed)
	}
	if params.Version != argon2.Version {
		return fmt.Errorf("unsupported Argon2 version %d (this build implements %d): %w",
			params.Version, argon2.Version, cerrors.ErrKeyDerivationFailed)
	}
	return nil
}
