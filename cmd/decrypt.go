package cmd

import (
	"fmt"

	"github.com/jakejohns/chargon/internal/passphrase"
	"github.com/jakejohns/chargon/internal/ui"
	"github.com/jakejohns/chargon/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	decryptOutput         string
	decryptPassphraseFile string
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt [file]",
	Short: "Decrypt a chargon container back to plaintext",
	Long: `Decrypt reads a chargon container from a file or stdin, verifies its
integrity, and writes the recovered plaintext.

All key-derivation parameters are read from the container itself; only
the passphrase is needed. The container's MAC is verified before any
decryption happens, so a tampered-with container is rejected without
producing output.

With a file argument ending in .chargon and no --output, the plaintext
is written with the suffix stripped. Otherwise it goes to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")
		cfg := loadConfigOrWarn()

		passFile := decryptPassphraseFile
		if passFile == "" {
			passFile = cfg.Defaults.PassphraseFile
		}
		// No confirmation prompt on decrypt; a typo just fails the MAC.
		source := passphrase.Source{File: passFile}

		opts := workflows.DecryptOptions{
			Output:     decryptOutput,
			Passphrase: source,
		}
		if len(args) > 0 {
			opts.Input = args[0]
		}

		if !willPrompt(source) {
			spinner, cleanup := startSpinner("Verifying and decrypting...")
			defer cleanup()

			result, err := workflows.Decrypt(cmd.Context(), opts)
			if err != nil {
				return err
			}
			spinner.FinalMSG = decryptFinalMessage(result)
			return nil
		}

		result, err := workflows.Decrypt(cmd.Context(), opts)
		if err != nil {
			return err
		}
		Logger.Debugf("Recovered %d plaintext bytes", result.PlaintextBytes)
		printFinal(decryptFinalMessage(result))
		return nil
	},
}

func decryptFinalMessage(result *workflows.DecryptResult) string {
	target := ui.Path.Sprint(result.Output)
	if result.Output == "-" {
		target = "stdout"
	}
	return ui.Success.Sprint("✓") + " Decrypted to " + target +
		" " + ui.Muted.Sprint(fmt.Sprintf("%d bytes", result.PlaintextBytes))
}

func resetDecryptCommandState() {
	decryptOutput = ""
	decryptPassphraseFile = ""
}

func init() {
	decryptCmd.Flags().StringVarP(&decryptOutput, "output", "o", "", "output path (default: <file> without .chargon, or stdout)")
	decryptCmd.Flags().StringVar(&decryptPassphraseFile, "passphrase-file", "", "read the passphrase from the first line of this file")
}
