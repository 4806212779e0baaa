package errors

import "errors"

// Passphrase errors indicate the user has not supplied a usable passphrase.
var (
	// ErrMissingPassphrase indicates no passphrase was supplied or the supplied one was empty.
	ErrMissingPassphrase = errors.New("passphrase is missing or empty")

	// ErrPassphraseMismatch indicates the confirmation prompt did not match the first entry.
	ErrPassphraseMismatch = errors.New("passphrases do not match")
)

// Key derivation errors indicate the KDF could not produce usable key material.
var (
	// ErrKeyDerivationFailed indicates the KDF rejected its inputs or parameters.
	ErrKeyDerivationFailed = errors.New("key derivation failed")

	// ErrInsufficientMaterial indicates the derived secret is too short to split.
	ErrInsufficientMaterial = errors.New("derived secret is too short for the requested key material")
)

// Container errors indicate the input is not a well-formed chargon container.
var (
	// ErrUnrecognizedFormat indicates the magic marker is missing or wrong.
	ErrUnrecognizedFormat = errors.New("input is not a recognized chargon container")

	// ErrInvalidModeline indicates the modeline record is malformed, names an
	// unknown variant or settings key, or carries a forbidden trailing field.
	ErrInvalidModeline = errors.New("invalid modeline")
)

// Integrity errors indicate the container failed verification or decryption.
var (
	// ErrAuthenticationFailed indicates the MAC is missing or does not match the ciphertext.
	ErrAuthenticationFailed = errors.New("authentication failed: container is corrupt or the passphrase is wrong")

	// ErrDecryptionFailed indicates the cipher rejected the ciphertext after the MAC verified.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// File errors indicate issues with input or output files.
var (
	// ErrFileNotFound indicates an input file could not be located.
	ErrFileNotFound = errors.New("file not found")
)
