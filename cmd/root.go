package cmd

import (
	logger "github.com/jakejohns/chargon/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chargon",
	Short: "chargon - passphrase-based authenticated file encryption",
	Long: `Chargon encrypts files (or stdin) into a self-describing authenticated
container and decrypts them again, using nothing but a passphrase.

Keys are derived with Argon2, a deliberately slow and memory-hard KDF.
The derivation parameters travel inside the container, so decryption
needs no configuration beyond the passphrase itself.

Run 'chargon help <command>' for more details on a specific command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing chargon with verbose=%t, debug=%t", verbose, debug)
	},
}

// Execute runs the root command. Errors are reported by main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Helper functions for testing

// GetRootCmd returns the root command for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// ResetGlobalState resets all flag variables to their defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetEncryptCommandState()
	resetDecryptCommandState()
	for _, c := range []*cobra.Command{rootCmd, encryptCmd, decryptCmd} {
		resetFlags(c)
	}
}

// resetFlags clears pflag's sticky Changed state between test runs.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
