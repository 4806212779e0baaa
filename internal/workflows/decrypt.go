package workflows

import (
	"context"
	"strings"

	"github.com/jakejohns/chargon/internal/container"
	"github.com/jakejohns/chargon/internal/kdf"
	"github.com/jakejohns/chargon/internal/passphrase"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Input is the container file to read. Empty means stdin.
	Input string

	// Output is where to write the plaintext. Empty means Input with the
	// .chargon suffix stripped, or stdout when that doesn't apply.
	Output string

	// Passphrase is the resolved passphrase source.
	Passphrase passphrase.Source
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// Output is the path written, or "-" for stdout.
	Output string

	// PlaintextBytes is the size of the recovered plaintext.
	PlaintextBytes int

	// Params are the parameters recovered from the container's modeline.
	Params kdf.Params
}

// Decrypt opens a container and recovers the plaintext.
//
// The passphrase is requested only after the container's magic and
// modeline have validated, so a corrupt input never triggers a prompt.
// No plaintext is ever written unless MAC verification succeeded.
//
// Returns ErrUnrecognizedFormat, ErrInvalidModeline,
// ErrMissingPassphrase, ErrKeyDerivationFailed, ErrAuthenticationFailed,
// or ErrDecryptionFailed, matching the failure stage.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	data, err := readInput(opts.Input)
	if err != nil {
		return nil, err
	}

	plaintext, params, err := container.Decrypt(data, opts.Passphrase.Get)
	if err != nil {
		return nil, err
	}

	output := opts.Output
	if output == "" && strings.HasSuffix(opts.Input, Suffix) {
		output = strings.TrimSuffix(opts.Input, Suffix)
	}

	// Recovered plaintext is the secret here; keep it private.
	if err := writeOutput(output, plaintext, 0600); err != nil {
		return nil, err
	}

	return &DecryptResult{
		Output:         displayPath(output),
		PlaintextBytes: len(plaintext),
		Params:         params,
	}, nil
}
