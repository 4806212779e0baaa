package workflows

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jakejohns/chargon/internal/container"
	cerrors "github.com/jakejohns/chargon/internal/errors"
	"github.com/jakejohns/chargon/internal/kdf"
	"github.com/jakejohns/chargon/internal/passphrase"
)

// Suffix is appended to input filenames when no output path is given.
const Suffix = ".chargon"

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Input is the plaintext file to read. Empty means stdin.
	Input string

	// Output is where to write the container. Empty means Input+Suffix,
	// or stdout when reading from stdin.
	Output string

	// Params are the resolved Argon2 cost parameters.
	Params kdf.Params

	// Passphrase is the resolved passphrase source.
	Passphrase passphrase.Source
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// Output is the path written, or "-" for stdout.
	Output string

	// PlaintextBytes is the size of the input consumed.
	PlaintextBytes int

	// Params are the parameters embedded in the container's modeline.
	Params kdf.Params
}

// Encrypt seals the input into an authenticated container.
//
// Returns ErrMissingPassphrase or ErrPassphraseMismatch from passphrase
// resolution, ErrFileNotFound for a missing input, and
// ErrKeyDerivationFailed from the KDF stage.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	pass, err := opts.Passphrase.Get()
	if err != nil {
		return nil, err
	}
	if len(pass) == 0 {
		return nil, cerrors.ErrMissingPassphrase
	}

	plaintext, err := readInput(opts.Input)
	if err != nil {
		return nil, err
	}

	sealed, err := container.Encrypt(plaintext, pass, opts.Params)
	if err != nil {
		return nil, err
	}

	output := opts.Output
	if output == "" && opts.Input != "" {
		output = opts.Input + Suffix
	}

	// The container is ciphertext and safe to share; the usual file mode
	// is fine.
	if err := writeOutput(output, sealed, 0644); err != nil {
		return nil, err
	}

	return &EncryptResult{
		Output:         displayPath(output),
		PlaintextBytes: len(plaintext),
		Params:         opts.Params,
	}, nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, cerrors.ErrFileNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func writeOutput(path string, data []byte, mode os.FileMode) error {
	if path == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func displayPath(path string) string {
	if path == "" {
		return "-"
	}
	return path
}
