// Package errors provides typed error values for the chargon application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Passphrase errors: Missing or mismatched passphrases (ErrMissingPassphrase)
//   - Key derivation errors: KDF failures (ErrKeyDerivationFailed, ErrInsufficientMaterial)
//   - Container errors: Malformed or hostile containers (ErrUnrecognizedFormat, ErrInvalidModeline)
//   - Integrity errors: Verification failures (ErrAuthenticationFailed, ErrDecryptionFailed)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(passphrase) == 0 {
//	    return nil, errors.ErrMissingPassphrase
//	}
//
// Handle errors in the CLI layer:
//
//	plaintext, err := container.Decrypt(data, source)
//	if errors.Is(err, cerrors.ErrAuthenticationFailed) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("decoding salt: %w", errors.ErrInvalidModeline)
package errors
