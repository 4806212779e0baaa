package kdf

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Variant identifies an Argon2 hash variant.
type Variant string

// The three Argon2 variants recognized on the wire.
const (
	VariantArgon2i  Variant = "argon2i"
	VariantArgon2d  Variant = "argon2d"
	VariantArgon2id Variant = "argon2id"
)

// ParseVariant validates a variant name from a modeline or a flag.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantArgon2i, VariantArgon2d, VariantArgon2id:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown hash variant %q (want %s, %s or %s)",
		s, VariantArgon2i, VariantArgon2d, VariantArgon2id)
}

// Params holds the Argon2 cost parameters embedded in a container's
// modeline. A Params value never carries key material.
type Params struct {
	// Variant selects the Argon2 flavor.
	Variant Variant

	// Iterations is the time cost (number of passes over memory).
	Iterations uint32

	// MemoryKiB is the memory cost in KiB.
	MemoryKiB uint32

	// Parallelism is the number of threads the KDF may use internally.
	Parallelism uint8

	// Version is the Argon2 format version (19 for current Argon2).
	Version int
}

// Preset names a bundled cost-parameter configuration.
type Preset int

const (
	// PresetDefault is suitable for interactive use.
	PresetDefault Preset = iota

	// PresetSecure trades minutes of wall-clock time and gigabytes of
	// memory for a much harder brute-force target.
	PresetSecure
)

// String returns the preset's user-facing name.
func (p Preset) String() string {
	switch p {
	case PresetSecure:
		return "secure"
	default:
		return "default"
	}
}

// ParsePreset resolves a preset name from config or flags.
func ParsePreset(s string) (Preset, error) {
	switch s {
	case "", "default":
		return PresetDefault, nil
	case "secure":
		return PresetSecure, nil
	}
	return 0, fmt.Errorf("unknown preset %q (want %q or %q)", s, "default", "secure")
}

// Params returns the preset's full cost-parameter tuple.
func (p Preset) Params() Params {
	switch p {
	case PresetSecure:
		return Params{
			Variant:     VariantArgon2id,
			Iterations:  16,
			MemoryKiB:   16 * 1024 * 1024, // 16 GiB
			Parallelism: 8,
			Version:     argon2.Version,
		}
	default:
		return Params{
			Variant:     VariantArgon2id,
			Iterations:  3,
			MemoryKiB:   64 * 1024, // 64 MiB
			Parallelism: 4,
			Version:     argon2.Version,
		}
	}
}
