package container

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"

	cerrors "github.com/jakejohns/chargon/internal/errors"
	"github.com/jakejohns/chargon/internal/kdf"
	"golang.org/x/crypto/chacha20"
)

// applyStream runs the ChaCha20 keystream over src. Encryption and
// decryption are the same operation for a stream cipher.
func applyStream(material kdf.Material, src []byte) ([]byte, error) {
	cipher, err := chacha20.NewUnauthenticatedCipher(material.Key, material.IV)
	if err != nil {
		return nil, fmt.Errorf("initializing cipher: %w", err)
	}
	out := make([]byte, len(src))
	cipher.XORKeyStream(out, src)
	return out, nil
}

// computeMAC returns HMAC-SHA512 over the ciphertext.
func computeMAC(macKey, ciphertext []byte) []byte {
	mac := hmac.New(sha512.New, macKey)
	mac.Write(ciphertext)
	return mac.Sum(nil)
}

// verifyMAC recomputes the ciphertext MAC and compares it against the
// received tag. The comparison is exact-match (and constant-time, which
// costs nothing). An empty received tag always fails.
func verifyMAC(macKey, ciphertext, received []byte) error {
	if len(received) == 0 {
		return fmt.Errorf("missing MAC: %w", cerrors.ErrAuthenticationFailed)
	}
	if !hmac.Equal(computeMAC(macKey, ciphertext), received) {
		return cerrors.ErrAuthenticationFailed
	}
	return nil
}
