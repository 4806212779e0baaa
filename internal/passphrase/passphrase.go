package passphrase

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strings"

	cerrors "github.com/jakejohns/chargon/internal/errors"
	"golang.org/x/term"
)

// EnvVar names the environment variable checked before any prompting.
const EnvVar = "CHARGON_PASSPHRASE"

// Source describes where a passphrase may come from. The zero value means
// "prompt interactively, once".
type Source struct {
	// Value is a pre-supplied passphrase, used as-is when non-empty.
	Value []byte

	// File is a path whose first line is the passphrase.
	File string

	// Confirm prompts twice and requires both entries to match. Only
	// meaningful for interactive prompting; file and env sources are
	// assumed already confirmed.
	Confirm bool
}

// Get resolves the passphrase. Returns ErrMissingPassphrase if the
// resolved value is empty, and ErrPassphraseMismatch if interactive
// confirmation fails.
func (s Source) Get() ([]byte, error) {
	if len(s.Value) > 0 {
		return s.Value, nil
	}

	if env := os.Getenv(EnvVar); env != "" {
		return []byte(env), nil
	}

	if s.File != "" {
		return fromFile(s.File)
	}

	return s.prompt()
}

// fromFile reads the first line of path, tolerating a trailing newline.
func fromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("passphrase file %s: %w", path, cerrors.ErrFileNotFound)
		}
		return nil, fmt.Errorf("reading passphrase file: %w", err)
	}

	line, _, _ := strings.Cut(string(data), "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return nil, fmt.Errorf("passphrase file %s is empty: %w", path, cerrors.ErrMissingPassphrase)
	}
	return []byte(line), nil
}

func (s Source) prompt() ([]byte, error) {
	entered, err := readPassword("Enter passphrase: ")
	if err != nil {
		return nil, err
	}
	if len(entered) == 0 {
		return nil, cerrors.ErrMissingPassphrase
	}

	if s.Confirm {
		confirm, err := readPassword("Confirm passphrase: ")
		if err != nil {
			zeroBytes(entered)
			return nil, err
		}
		match := bytes.Equal(entered, confirm)
		zeroBytes(confirm)
		if !match {
			zeroBytes(entered)
			return nil, cerrors.ErrPassphraseMismatch
		}
	}

	return entered, nil
}

// readPassword prompts on stderr and reads with echo disabled. When stdin
// is not a terminal it falls back to /dev/tty, keeping the prompt off the
// data stream.
func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			if runtime.GOOS == "windows" {
				return nil, fmt.Errorf("stdin is piped; set %s or use a passphrase file", EnvVar)
			}
			return nil, fmt.Errorf("stdin is piped and /dev/tty is unavailable; set %s or use a passphrase file", EnvVar)
		}
		defer tty.Close()
		fd = int(tty.Fd())
	}

	entered, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading passphrase: %w", err)
	}
	return entered, nil
}

// zeroBytes overwrites a byte slice with zeros. Best effort only.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
