// Package configs manages user configuration for chargon.
//
// Configuration is stored in TOML format at
// $XDG_CONFIG_HOME/chargon/config.toml (falling back to the platform's
// user config directory). It holds the user's *defaults* only:
//
//   - defaults.preset: "default" or "secure"
//   - defaults.variant / iterations / memory / parallelism: per-field
//     cost overrides applied on top of the preset
//   - defaults.passphrase_file: path to a passphrase file
//
// The config file never carries a passphrase itself, and it is never
// consulted for decryption parameters — those always come from the
// container's modeline.
//
// The loaded config is returned as a value and threaded explicitly through
// the CLI; nothing in the encrypt/decrypt path reads ambient global state.
// A missing config file is not an error and yields the zero value.
package configs
