// Package kdf derives key material from a passphrase using Argon2.
//
// One KDF invocation produces a single raw secret which is then split into
// the three values the container codec needs: a cipher key, a cipher nonce,
// and a MAC key. Deriving all three from one call keeps the cost of the
// deliberately slow, memory-hard KDF to a single invocation per operation.
//
// # Derivation
//
// Derive() wraps golang.org/x/crypto/argon2 and produces raw output of any
// requested length from (passphrase, salt, Params). The parameters are
// chosen by the encrypting party and embedded in the container's modeline,
// so decryption reproduces identical inputs without prior knowledge.
//
// # Splitting
//
// Split() partitions the derived secret in a fixed order — cipher key,
// then nonce, then MAC key — contiguously and without overlap. The lengths
// live in a single Lengths value so the encode and decode sites can never
// drift apart.
//
// # Presets
//
// Two named presets bundle complete cost-parameter tuples:
//
//   - PresetDefault: interactive-grade costs (64 MiB, 3 passes)
//   - PresetSecure: deliberately punishing costs (16 GiB, 16 passes)
//
// The secure preset is expected to take a long time and a lot of memory.
// That is the point.
package kdf
