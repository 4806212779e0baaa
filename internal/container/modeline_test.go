package container

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	cerrors "github.com/jakejohns/chargon/internal/errors"
	"github.com/jakejohns/chargon/internal/kdf"
	"golang.org/x/crypto/argon2"
)

func testSalt() []byte {
	return []byte("0123456789abcdef0123456789abcdef")
}

func TestModelineRoundTrip(t *testing.T) {
	params := kdf.Params{
		Variant:     kdf.VariantArgon2id,
		Iterations:  3,
		MemoryKiB:   65536,
		Parallelism: 4,
		Version:     argon2.Version,
	}

	line := EncodeModeline(params, testSalt())

	decoded, salt, err := ParseModeline(line)
	if err != nil {
		t.Fatalf("ParseModeline failed: %v", err)
	}
	if decoded != params {
		t.Errorf("Decoded params = %+v, want %+v", decoded, params)
	}
	if !bytes.Equal(salt, testSalt()) {
		t.Errorf("Decoded salt = %v, want %v", salt, testSalt())
	}
}

func TestEncodeModelineShape(t *testing.T) {
	params := kdf.Params{
		Variant:     kdf.VariantArgon2id,
		Iterations:  3,
		MemoryKiB:   65536,
		Parallelism: 4,
		Version:     19,
	}

	line := EncodeModeline(params, testSalt())
	want := "$argon2id$v=13$m=65536,t=3,p=4$" + base64.StdEncoding.EncodeToString(testSalt())
	if line != want {
		t.Errorf("EncodeModeline = %q, want %q", line, want)
	}
}

func TestParseModelineVersionIsHex(t *testing.T) {
	salt := base64.StdEncoding.EncodeToString(testSalt())

	params, _, err := ParseModeline("$argon2id$v=13$m=4096,t=3,p=1$" + salt)
	if err != nil {
		t.Fatalf("ParseModeline failed: %v", err)
	}
	if params.Version != 19 {
		t.Errorf("Version = %d, want 19 (hex 13)", params.Version)
	}
}

func TestParseModelineSettingsAnyOrder(t *testing.T) {
	salt := base64.StdEncoding.EncodeToString(testSalt())

	params, _, err := ParseModeline("$argon2id$v=13$p=2,m=8192,t=5$" + salt)
	if err != nil {
		t.Fatalf("ParseModeline failed: %v", err)
	}
	if params.MemoryKiB != 8192 || params.Iterations != 5 || params.Parallelism != 2 {
		t.Errorf("Settings matched by position, not key: %+v", params)
	}
}

func TestParseModelineRejections(t *testing.T) {
	salt := base64.StdEncoding.EncodeToString(testSalt())

	tests := []struct {
		name string
		line string
	}{
		{"unknown variant", "$argon2x$v=0d$m=4096,t=3,p=1$" + salt},
		{"trailing embedded secret", "$argon2id$v=13$m=4096,t=3,p=1$" + salt + "$c2VjcmV0"},
		{"unknown settings key", "$argon2id$v=13$m=4096,t=3,p=1,x=9$" + salt},
		{"duplicate settings key", "$argon2id$v=13$m=4096,m=8192,t=3,p=1$" + salt},
		{"missing settings key", "$argon2id$v=13$m=4096,t=3$" + salt},
		{"malformed settings pair", "$argon2id$v=13$m4096,t=3,p=1$" + salt},
		{"missing leading delimiter", "argon2id$v=13$m=4096,t=3,p=1$" + salt},
		{"malformed version prefix", "$argon2id$13$m=4096,t=3,p=1$" + salt},
		{"non-hex version", "$argon2id$v=zz$m=4096,t=3,p=1$" + salt},
		{"bad salt encoding", "$argon2id$v=13$m=4096,t=3,p=1$not base64!"},
		{"too few fields", "$argon2id$v=13$" + salt},
		{"too many fields", "$argon2id$v=13$m=4096,t=3,p=1$" + salt + "$x$y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseModeline(tt.line)
			if !errors.Is(err, cerrors.ErrInvalidModeline) {
				t.Errorf("Expected ErrInvalidModeline, got: %v", err)
			}
		})
	}
}

func TestParseModelineEmptyTrailingFieldAllowed(t *testing.T) {
	// "...$salt$" splits into six fields with an empty last one, which is
	// what a newline-stripped well-formed record can look like.
	salt := base64.StdEncoding.EncodeToString(testSalt())

	_, _, err := ParseModeline("$argon2id$v=13$m=4096,t=3,p=1$" + salt + "$")
	if err != nil {
		t.Errorf("Empty trailing field should parse, got: %v", err)
	}
}
