package cmd

import (
	"os"

	"github.com/jakejohns/chargon/internal/passphrase"
	"github.com/jakejohns/chargon/internal/ui"
	"github.com/jakejohns/chargon/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	encryptOutput         string
	encryptVariant        string
	encryptIterations     uint32
	encryptMemory         string
	encryptParallelism    uint8
	encryptSecure         bool
	encryptPassphraseFile string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt [file]",
	Short: "Encrypt a file (or stdin) into a chargon container",
	Long: `Encrypt reads plaintext from a file or stdin, derives keys from your
passphrase with Argon2, and writes an authenticated container.

With a file argument and no --output, the container is written next to
the input with a .chargon suffix. With no file argument, plaintext is
read from stdin and the container goes to stdout.

The --secure preset raises the Argon2 costs to a deliberately punishing
level (16 GiB of memory, 16 passes). Expect it to be slow.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		cfg := loadConfigOrWarn()

		params, err := resolveParams(cfg, encryptSecure, cmd.Flags())
		if err != nil {
			return err
		}
		Logger.Debugf("Resolved parameters: %s", describeParams(params))

		passFile := encryptPassphraseFile
		if passFile == "" {
			passFile = cfg.Defaults.PassphraseFile
		}
		source := passphrase.Source{File: passFile, Confirm: true}

		opts := workflows.EncryptOptions{
			Output:     encryptOutput,
			Params:     params,
			Passphrase: source,
		}
		if len(args) > 0 {
			opts.Input = args[0]
		}

		// No spinner when the passphrase will be prompted for; the two
		// would fight over stderr.
		if !willPrompt(source) {
			spinner, cleanup := startSpinner("Deriving keys and encrypting...")
			defer cleanup()

			result, err := workflows.Encrypt(cmd.Context(), opts)
			if err != nil {
				return err
			}
			spinner.FinalMSG = encryptFinalMessage(result)
			return nil
		}

		result, err := workflows.Encrypt(cmd.Context(), opts)
		if err != nil {
			return err
		}
		Logger.Debugf("Encrypted %d plaintext bytes", result.PlaintextBytes)
		printFinal(encryptFinalMessage(result))
		return nil
	},
}

func encryptFinalMessage(result *workflows.EncryptResult) string {
	msg := ui.Success.Sprint("✓") + " Encrypted to " + ui.Path.Sprint(result.Output) +
		" using " + describeParams(result.Params)
	if result.Output == "-" {
		msg = ui.Success.Sprint("✓") + " Encrypted to stdout using " + describeParams(result.Params)
	}
	return msg
}

// willPrompt reports whether resolving the source would hit the
// interactive terminal prompt.
func willPrompt(source passphrase.Source) bool {
	return len(source.Value) == 0 && os.Getenv(passphrase.EnvVar) == "" && source.File == ""
}

func resetEncryptCommandState() {
	encryptOutput = ""
	encryptVariant = ""
	encryptIterations = 0
	encryptMemory = ""
	encryptParallelism = 0
	encryptSecure = false
	encryptPassphraseFile = ""
}

func init() {
	encryptCmd.Flags().StringVarP(&encryptOutput, "output", "o", "", "output path (default: <file>.chargon, or stdout)")
	encryptCmd.Flags().StringVar(&encryptVariant, "variant", "", "Argon2 variant (argon2i, argon2d, argon2id)")
	encryptCmd.Flags().Uint32VarP(&encryptIterations, "iterations", "t", 0, "Argon2 time cost")
	encryptCmd.Flags().StringVarP(&encryptMemory, "memory", "m", "", "Argon2 memory cost (e.g. 64M, 1G; bare number = MiB)")
	encryptCmd.Flags().Uint8VarP(&encryptParallelism, "parallelism", "p", 0, "Argon2 parallelism degree")
	encryptCmd.Flags().BoolVar(&encryptSecure, "secure", false, "use the secure preset (very slow, very memory-hard)")
	encryptCmd.Flags().StringVar(&encryptPassphraseFile, "passphrase-file", "", "read the passphrase from the first line of this file")
}
