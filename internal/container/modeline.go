package container

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	cerrors "github.com/jakejohns/chargon/internal/errors"
	"github.com/jakejohns/chargon/internal/kdf"
)

// Modeline field layout, split on "$":
//
//	["", variant, "v=<hex>", "m=<mem>,t=<iters>,p=<par>", base64-salt]
//
// with one optional trailing field that must be empty.
const (
	modelineDelimiter = "$"
	modelineFields    = 5
)

// EncodeModeline serializes Argon2 parameters and a salt into one
// modeline record. The version is rendered in hexadecimal.
func EncodeModeline(params kdf.Params, salt []byte) string {
	return fmt.Sprintf("$%s$v=%x$m=%d,t=%d,p=%d$%s",
		params.Variant,
		params.Version,
		params.MemoryKiB,
		params.Iterations,
		params.Parallelism,
		base64.StdEncoding.EncodeToString(salt),
	)
}

// ParseModeline decodes a modeline record back into Argon2 parameters and
// a salt.
//
// Returns ErrInvalidModeline if the line is structurally malformed, names
// an unknown variant or settings key, or carries a non-empty trailing
// field after the salt. A trailing field is where a tampered-with or
// hostile container would smuggle literal key material, so it is rejected
// outright rather than ignored.
func ParseModeline(line string) (kdf.Params, []byte, error) {
	fields := strings.Split(line, modelineDelimiter)

	switch {
	case len(fields) < modelineFields || len(fields) > modelineFields+1:
		return kdf.Params{}, nil, fmt.Errorf("expected %d fields, got %d: %w",
			modelineFields, len(fields), cerrors.ErrInvalidModeline)
	case fields[0] != "":
		return kdf.Params{}, nil, fmt.Errorf("missing leading delimiter: %w", cerrors.ErrInvalidModeline)
	case len(fields) == modelineFields+1 && fields[modelineFields] != "":
		return kdf.Params{}, nil, fmt.Errorf("forbidden trailing field after salt: %w", cerrors.ErrInvalidModeline)
	}

	variant, err := kdf.ParseVariant(fields[1])
	if err != nil {
		return kdf.Params{}, nil, fmt.Errorf("%v: %w", err, cerrors.ErrInvalidModeline)
	}

	version, err := parseVersion(fields[2])
	if err != nil {
		return kdf.Params{}, nil, err
	}

	params := kdf.Params{Variant: variant, Version: version}
	if err := parseSettings(fields[3], &params); err != nil {
		return kdf.Params{}, nil, err
	}

	salt, err := base64.StdEncoding.DecodeString(fields[4])
	if err != nil {
		return kdf.Params{}, nil, fmt.Errorf("decoding salt: %w", cerrors.ErrInvalidModeline)
	}

	return params, salt, nil
}

func parseVersion(field string) (int, error) {
	hex, ok := strings.CutPrefix(field, "v=")
	if !ok {
		return 0, fmt.Errorf("malformed version field %q: %w", field, cerrors.ErrInvalidModeline)
	}
	version, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed version %q: %w", hex, cerrors.ErrInvalidModeline)
	}
	return int(version), nil
}

// parseSettings reads the comma-separated cost block. Pairs are matched by
// key name, not position, so any ordering of m, t and p is accepted. All
// three must be present; any other key is rejected.
func parseSettings(block string, params *kdf.Params) error {
	seen := map[string]bool{}

	for _, pair := range strings.Split(block, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("malformed settings pair %q: %w", pair, cerrors.ErrInvalidModeline)
		}

		var bits int
		switch key {
		case "m", "t":
			bits = 32
		case "p":
			bits = 8
		default:
			return fmt.Errorf("unknown settings key %q: %w", key, cerrors.ErrInvalidModeline)
		}
		if seen[key] {
			return fmt.Errorf("duplicate settings key %q: %w", key, cerrors.ErrInvalidModeline)
		}
		seen[key] = true

		n, err := strconv.ParseUint(value, 10, bits)
		if err != nil {
			return fmt.Errorf("malformed value for %q: %w", key, cerrors.ErrInvalidModeline)
		}

		switch key {
		case "m":
			params.MemoryKiB = uint32(n)
		case "t":
			params.Iterations = uint32(n)
		case "p":
			params.Parallelism = uint8(n)
		}
	}

	for _, key := range []string{"m", "t", "p"} {
		if !seen[key] {
			return fmt.Errorf("missing settings key %q: %w", key, cerrors.ErrInvalidModeline)
		}
	}
	return nil
}
