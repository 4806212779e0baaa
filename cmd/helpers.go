package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jakejohns/chargon/internal/configs"
	"github.com/jakejohns/chargon/internal/kdf"
	"github.com/jakejohns/chargon/internal/ui"
	"github.com/spf13/pflag"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// Everything the spinner produces goes to stderr: stdout may be carrying
// plaintext or ciphertext. spinner.FinalMSG values do NOT need trailing
// newlines; the cleanup function calls ui.EnsureNewline() before printing.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			Logger.Debugf("Stopping spinner")
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(os.Stderr, finalMsg)
		}
	}

	return s, cleanup
}

// printFinal writes a final message to stderr for code paths that run
// without a spinner.
func printFinal(msg string) {
	fmt.Fprint(os.Stderr, ui.EnsureNewline(msg))
}

// resolveParams builds the effective Argon2 parameters from, in increasing
// precedence: the preset, the user config's per-field overrides, and
// explicit flags. The secure preset overrides all four cost parameters at
// once, so config overrides are skipped when it is selected.
func resolveParams(cfg configs.UserConfig, secure bool, flags *pflag.FlagSet) (kdf.Params, error) {
	preset := kdf.PresetSecure
	if !secure {
		var err error
		if preset, err = kdf.ParsePreset(cfg.Defaults.Preset); err != nil {
			return kdf.Params{}, fmt.Errorf("config: %w", err)
		}
	}
	params := preset.Params()
	Logger.Debugf("Base preset: %s", preset)

	if !secure {
		if err := applyConfigOverrides(cfg.Defaults, &params); err != nil {
			return kdf.Params{}, err
		}
	}
	if err := applyFlagOverrides(flags, &params); err != nil {
		return kdf.Params{}, err
	}
	return params, nil
}

func applyConfigOverrides(d configs.Defaults, params *kdf.Params) error {
	if d.Variant != "" {
		variant, err := kdf.ParseVariant(d.Variant)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		params.Variant = variant
	}
	if d.Iterations > 0 {
		params.Iterations = d.Iterations
	}
	if d.Memory > 0 {
		params.MemoryKiB = d.Memory
	}
	if d.Parallelism > 0 {
		params.Parallelism = d.Parallelism
	}
	return nil
}

func applyFlagOverrides(flags *pflag.FlagSet, params *kdf.Params) error {
	if flags.Changed("variant") {
		name, _ := flags.GetString("variant")
		variant, err := kdf.ParseVariant(name)
		if err != nil {
			return err
		}
		params.Variant = variant
	}
	if flags.Changed("iterations") {
		t, _ := flags.GetUint32("iterations")
		params.Iterations = t
	}
	if flags.Changed("memory") {
		text, _ := flags.GetString("memory")
		memory, err := parseMemory(text)
		if err != nil {
			return fmt.Errorf("invalid memory value %q: %w", text, err)
		}
		params.MemoryKiB = memory
	}
	if flags.Changed("parallelism") {
		p, _ := flags.GetUint8("parallelism")
		params.Parallelism = p
	}
	return nil
}

// parseMemory parses memory strings like "64", "64M", "64MB", "1G", "1GB".
// Bare numbers are treated as MiB.
func parseMemory(s string) (uint32, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	multiplier := uint64(1024) // default MiB to KiB

	switch {
	case strings.HasSuffix(s, "GB") || strings.HasSuffix(s, "G"):
		multiplier = 1024 * 1024
		s = strings.TrimSuffix(strings.TrimSuffix(s, "GB"), "G")
	case strings.HasSuffix(s, "MB") || strings.HasSuffix(s, "M"):
		multiplier = 1024
		s = strings.TrimSuffix(strings.TrimSuffix(s, "MB"), "M")
	case strings.HasSuffix(s, "KB") || strings.HasSuffix(s, "K"):
		multiplier = 1
		s = strings.TrimSuffix(strings.TrimSuffix(s, "KB"), "K")
	}

	val, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}

	result := val * multiplier
	if result > 0xFFFFFFFF {
		return 0, fmt.Errorf("memory value too large")
	}
	return uint32(result), nil
}

// loadConfigOrWarn loads the user config, degrading to defaults with a
// warning when the file is unreadable or malformed.
func loadConfigOrWarn() configs.UserConfig {
	cfg, err := configs.LoadUserConfig()
	if err != nil {
		Logger.Warnf("Ignoring user config: %v", err)
		return configs.UserConfig{}
	}
	return cfg
}

// describeParams renders parameters for verbose output and final messages.
func describeParams(params kdf.Params) string {
	return fmt.Sprintf("%s t=%d m=%d KiB p=%d",
		ui.Highlight.Sprint(string(params.Variant)),
		params.Iterations, params.MemoryKiB, params.Parallelism)
}
