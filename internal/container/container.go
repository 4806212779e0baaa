package container

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	cerrors "github.com/jakejohns/chargon/internal/errors"
	"github.com/jakejohns/chargon/internal/kdf"
)

const (
	// Magic is the fixed first record of every container.
	Magic = "chargon"

	// SaltLen is the length of the random salt generated per encryption.
	// A fresh salt every time means derived keys are never reused.
	SaltLen = 64
)

// PassphraseFunc supplies the passphrase on demand. Decrypt calls it only
// after the container has parsed cleanly, so a corrupt input never
// triggers a prompt.
type PassphraseFunc func() ([]byte, error)

// Encrypt seals plaintext into a container using keys derived from
// passphrase with the given Argon2 parameters.
//
// Returns ErrMissingPassphrase for an empty passphrase and
// ErrKeyDerivationFailed or ErrInsufficientMaterial from the KDF stage.
func Encrypt(plaintext, passphrase []byte, params kdf.Params) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, cerrors.ErrMissingPassphrase
	}

	salt := make([]byte, SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	material, err := deriveMaterial(passphrase, salt, params)
	if err != nil {
		return nil, err
	}
	defer material.Zero()

	ciphertext, err := applyStream(material, plaintext)
	if err != nil {
		return nil, err
	}
	tag := computeMAC(material.MACKey, ciphertext)

	var buf bytes.Buffer
	buf.WriteString(Magic + "\n")
	buf.WriteString(EncodeModeline(params, salt) + "\n")
	buf.WriteString(base64.StdEncoding.EncodeToString(tag) + "\n")
	buf.WriteString(base64.StdEncoding.EncodeToString(ciphertext) + "\n")
	return buf.Bytes(), nil
}

// Decrypt opens a container, returning the plaintext and the parameters
// recovered from its modeline.
//
// The sequence is fixed: magic check first (ErrUnrecognizedFormat), then
// modeline decode (ErrInvalidModeline), then passphrase and key
// derivation, then MAC verification (ErrAuthenticationFailed). The
// ciphertext is never decrypted unless its MAC verified.
func Decrypt(data []byte, getPassphrase PassphraseFunc) ([]byte, kdf.Params, error) {
	magic, modeline, tagText, cipherText, err := parseRecords(string(data))
	if err != nil {
		return nil, kdf.Params{}, err
	}
	if magic != Magic {
		return nil, kdf.Params{}, fmt.Errorf("bad magic %q: %w", magic, cerrors.ErrUnrecognizedFormat)
	}

	params, salt, err := ParseModeline(modeline)
	if err != nil {
		return nil, kdf.Params{}, err
	}

	passphrase, err := getPassphrase()
	if err != nil {
		return nil, kdf.Params{}, err
	}
	if len(passphrase) == 0 {
		return nil, kdf.Params{}, cerrors.ErrMissingPassphrase
	}

	material, err := deriveMaterial(passphrase, salt, params)
	if err != nil {
		return nil, kdf.Params{}, err
	}
	defer material.Zero()

	// A flipped bit in either base64 record may corrupt the encoding
	// itself, which is the same terminal condition as a tag mismatch.
	tag, err := base64.StdEncoding.DecodeString(tagText)
	if err != nil {
		return nil, kdf.Params{}, fmt.Errorf("undecodable MAC record: %w", cerrors.ErrAuthenticationFailed)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(stripLineBreaks(cipherText))
	if err != nil {
		return nil, kdf.Params{}, fmt.Errorf("undecodable ciphertext record: %w", cerrors.ErrAuthenticationFailed)
	}

	if err := verifyMAC(material.MACKey, ciphertext, tag); err != nil {
		return nil, kdf.Params{}, err
	}

	plaintext, err := applyStream(material, ciphertext)
	if err != nil {
		return nil, kdf.Params{}, fmt.Errorf("%w: %v", cerrors.ErrDecryptionFailed, err)
	}
	return plaintext, params, nil
}

// deriveMaterial runs the single KDF invocation and splits its output into
// the key triple. Every secret must be non-empty before any cipher or MAC
// call; Split guarantees exact lengths, this just enforces the invariant.
func deriveMaterial(passphrase, salt []byte, params kdf.Params) (kdf.Material, error) {
	lens := kdf.DefaultLengths
	secret, err := kdf.Derive(passphrase, salt, params, lens.Total())
	if err != nil {
		return kdf.Material{}, err
	}

	material, err := kdf.Split(secret, lens)
	if err != nil {
		return kdf.Material{}, err
	}
	if len(material.Key) == 0 || len(material.IV) == 0 || len(material.MACKey) == 0 {
		return kdf.Material{}, cerrors.ErrInsufficientMaterial
	}
	return material, nil
}

// parseRecords splits the input into its four logical records. The
// ciphertext record is the remainder of the input and may itself span
// multiple lines of wrapped base64.
func parseRecords(s string) (magic, modeline, tag, ciphertext string, err error) {
	magic, rest, ok := cutLine(s)
	if magic != Magic {
		// Report the magic even when the input has no line structure at
		// all; the caller's magic check produces the right error.
		return magic, "", "", "", nil
	}
	if !ok {
		return "", "", "", "", fmt.Errorf("truncated container: %w", cerrors.ErrUnrecognizedFormat)
	}
	modeline, rest, ok = cutLine(rest)
	if !ok {
		return "", "", "", "", fmt.Errorf("truncated container: %w", cerrors.ErrUnrecognizedFormat)
	}
	tag, rest, ok = cutLine(rest)
	if !ok {
		return "", "", "", "", fmt.Errorf("truncated container: %w", cerrors.ErrUnrecognizedFormat)
	}
	return magic, modeline, tag, rest, nil
}

// cutLine splits off the first newline-terminated line, tolerating CRLF.
func cutLine(s string) (line, rest string, ok bool) {
	line, rest, ok = strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r"), rest, ok
}

func stripLineBreaks(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
}
