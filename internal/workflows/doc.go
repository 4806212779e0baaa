// Package workflows implements the encrypt and decrypt operations behind
// the CLI commands.
//
// Each workflow takes an Options struct, performs the file or stream IO,
// drives the container codec, and returns a Result struct describing what
// happened. The CLI layer owns all presentation (spinners, colors, final
// messages); workflows return sentinel errors from internal/errors for the
// CLI to match with errors.Is.
//
// Workflows are synchronous and run to completion: a failed operation is
// terminal and is never retried, since retrying with the same inputs
// cannot succeed.
package workflows
