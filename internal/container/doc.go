// Package container implements the chargon authenticated ciphertext format.
//
// A container is four newline-delimited records:
//
//	chargon
//	$argon2id$v=13$m=65536,t=3,p=4$<base64-salt>
//	<base64 HMAC-SHA512 of the ciphertext>
//	<base64 ChaCha20 ciphertext>
//
// The second record is the modeline: it embeds the Argon2 cost parameters
// and salt so the decrypting party can reproduce the derived keys without
// any out-of-band knowledge. The modeline never carries key material — a
// non-empty trailing field after the salt is rejected as hostile.
//
// # Composition
//
// Encryption is encrypt-then-MAC: the MAC is computed over the ciphertext,
// so a corrupted container is detected and rejected before any decryption
// is attempted. Decryption verifies the magic marker before doing any
// cryptographic work, and only asks for a passphrase once the container
// has parsed cleanly.
package container
