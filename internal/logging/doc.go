// Package logger provides structured logging for chargon CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic prefixes and colors.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Always shown, on stderr
//	Logger.Errorf()          // Always shown, on stderr
//	Logger.ErrorfAndReturn() // Logs and returns the same error
//
// All diagnostic output goes to stderr so it never mixes with plaintext or
// ciphertext on stdout.
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Derived key material in %s", elapsed)
//
// Commands create a logger in their PersistentPreRun and pass it to
// internal functions.
package logger
