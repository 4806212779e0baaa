package kdf

import (
	"bytes"
	"errors"
	"testing"

	cerrors "github.com/jakejohns/chargon/internal/errors"
	"golang.org/x/crypto/argon2"
)

// fastParams keeps the KDF cheap enough for tests.
func fastParams() Params {
	return Params{
		Variant:     VariantArgon2id,
		Iterations:  1,
		MemoryKiB:   64,
		Parallelism: 1,
		Version:     argon2.Version,
	}
}

func TestDeriveDeterministic(t *testing.T) {
	passphrase := []byte("correct horse")
	salt := []byte("0123456789abcdef")

	first, err := Derive(passphrase, salt, fastParams(), 48)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	second, err := Derive(passphrase, salt, fastParams(), 48)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	if len(first) != 48 {
		t.Errorf("Expected 48 bytes, got %d", len(first))
	}
	if !bytes.Equal(first, second) {
		t.Error("Same inputs should derive the same secret")
	}
}

func TestDeriveSaltChangesOutput(t *testing.T) {
	passphrase := []byte("correct horse")

	first, err := Derive(passphrase, []byte("salt-one........"), fastParams(), 32)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	second, err := Derive(passphrase, []byte("salt-two........"), fastParams(), 32)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	if bytes.Equal(first, second) {
		t.Error("Different salts should derive different secrets")
	}
}

func TestDeriveVariants(t *testing.T) {
	salt := []byte("0123456789abcdef")

	params := fastParams()
	params.Variant = VariantArgon2i
	i, err := Derive([]byte("pw"), salt, params, 32)
	if err != nil {
		t.Fatalf("argon2i should be supported: %v", err)
	}

	params.Variant = VariantArgon2id
	id, err := Derive([]byte("pw"), salt, params, 32)
	if err != nil {
		t.Fatalf("argon2id should be supported: %v", err)
	}

	if bytes.Equal(i, id) {
		t.Error("argon2i and argon2id should derive different secrets")
	}
}

func TestDeriveRejectsArgon2d(t *testing.T) {
	params := fastParams()
	params.Variant = VariantArgon2d

	_, err := Derive([]byte("pw"), []byte("0123456789abcdef"), params, 32)
	if !errors.Is(err, cerrors.ErrKeyDerivationFailed) {
		t.Errorf("Expected ErrKeyDerivationFailed for argon2d, got: %v", err)
	}
}

func TestDeriveRejectsBadInputs(t *testing.T) {
	salt := []byte("0123456789abcdef")

	tests := []struct {
		name       string
		passphrase []byte
		salt       []byte
		mutate     func(*Params)
		length     int
	}{
		{"empty passphrase", nil, salt, nil, 32},
		{"empty salt", []byte("pw"), nil, nil, 32},
		{"zero length", []byte("pw"), salt, nil, 0},
		{"zero iterations", []byte("pw"), salt, func(p *Params) { p.Iterations = 0 }, 32},
		{"zero parallelism", []byte("pw"), salt, func(p *Params) { p.Parallelism = 0 }, 32},
		{"memory below minimum", []byte("pw"), salt, func(p *Params) { p.MemoryKiB = 4 }, 32},
		{"wrong version", []byte("pw"), salt, func(p *Params) { p.Version = 16 }, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := fastParams()
			if tt.mutate != nil {
				tt.mutate(&params)
			}
			_, err := Derive(tt.passphrase, tt.salt, params, tt.length)
			if !errors.Is(err, cerrors.ErrKeyDerivationFailed) {
				t.Errorf("Expected ErrKeyDerivationFailed, got: %v", err)
			}
		})
	}
}
