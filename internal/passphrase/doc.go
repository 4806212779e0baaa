// Package passphrase resolves the user's passphrase from one of several
// sources, in a fixed order of precedence:
//
//  1. A pre-supplied value (e.g. from a caller or a test)
//  2. The CHARGON_PASSPHRASE environment variable
//  3. The first line of a passphrase file
//  4. An interactive terminal prompt
//
// Interactive prompts read from the terminal with echo disabled. When
// stdin is a pipe (the normal case for a stdin/stdout filter), the prompt
// falls back to /dev/tty so the plaintext stream and the passphrase never
// share a file descriptor. Encryption prompts twice and requires both
// entries to match.
package passphrase
