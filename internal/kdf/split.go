package kdf

import (
	"fmt"

	cerrors "github.com/jakejohns/chargon/internal/errors"
)

// Lengths fixes the sizes of the three secrets split from one derived
// secret. Keeping them in one value prevents the encrypt and decrypt sites
// from drifting apart.
type Lengths struct {
	Key    int
	IV     int
	MACKey int
}

// DefaultLengths are the natural sizes of the container's primitives:
// a ChaCha20 key, a ChaCha20 nonce, and an HMAC-SHA512 key.
var DefaultLengths = Lengths{Key: 32, IV: 12, MACKey: 64}

// Total is the KDF output length needed to satisfy all three secrets.
func (l Lengths) Total() int {
	return l.Key + l.IV + l.MACKey
}

// Material is the key triple consumed by one encrypt or decrypt invocation.
// It must never outlive the invocation that derived it.
type Material struct {
	Key    []byte
	IV     []byte
	MACKey []byte
}

// Zero overwrites the material in place. Best effort only.
func (m *Material) Zero() {
	for _, b := range [][]byte{m.Key, m.IV, m.MACKey} {
		for i := range b {
			b[i] = 0
		}
	}
}

// Split partitions secret into (key, iv, macKey) in that fixed order,
// contiguous and non-overlapping. No byte of secret is shared between the
// outputs. Returns ErrInsufficientMaterial if secret is shorter than
// lens.Total().
func Split(secret []byte, lens Lengths) (Material, error) {
	if len(secret) < lens.Total() {
		return Material{}, fmt.Errorf("have %d bytes, need %d: %w",
			len(secret), lens.Total(), cerrors.ErrInsufficientMaterial)
	}
	return Material{
		Key:    secret[:lens.Key],
		IV:     secret[lens.Key : lens.Key+lens.IV],
		MACKey: secret[lens.Key+lens.IV : lens.Total()],
	}, nil
}
