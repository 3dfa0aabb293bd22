// Package config loads jsbind.toml, the per-project analysis settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest looked up from the working directory upwards.
const FileName = "jsbind.toml"

// SourceTypeMode selects how the script/module goal is chosen.
type SourceTypeMode string

const (
	SourceAuto   SourceTypeMode = "auto"
	SourceScript SourceTypeMode = "script"
	SourceModule SourceTypeMode = "module"
)

// Config mirrors jsbind.toml.
type Config struct {
	Analysis Analysis `toml:"analysis"`
	Output   Output   `toml:"output"`
	Run      Run      `toml:"run"`
}

type Analysis struct {
	ModuleRecord bool           `toml:"module_record"`
	EarlyErrors  bool           `toml:"early_errors"`
	SourceType   SourceTypeMode `toml:"source_type"`
	TypeScript   bool           `toml:"typescript"`
}

type Output struct {
	Format         string `toml:"format"`
	Color          string `toml:"color"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type Run struct {
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

// Manifest is a loaded jsbind.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Default returns the settings used when no manifest exists.
func Default() Config {
	return Config{
		Analysis: Analysis{
			ModuleRecord: true,
			EarlyErrors:  true,
			SourceType:   SourceAuto,
			TypeScript:   true,
		},
		Output: Output{
			Format: "pretty",
			Color:  "auto",
		},
		Run: Run{
			Jobs: 0,
		},
	}
}

// Find walks from startDir up to the filesystem root looking for jsbind.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the nearest manifest. ok is false when none exists;
// the returned manifest then carries Default().
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &Manifest{Config: Default()}, false, nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadFile decodes one manifest on top of Default(); keys absent from the
// file keep their defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values outside the accepted sets.
func (c Config) Validate() error {
	var errs []error
	switch c.Analysis.SourceType {
	case SourceAuto, SourceScript, SourceModule:
	default:
		errs = append(errs, fmt.Errorf("[analysis].source_type: unknown value %q (want auto|script|module)", c.Analysis.SourceType))
	}
	switch c.Output.Format {
	case "pretty", "short", "json", "sarif":
	default:
		errs = append(errs, fmt.Errorf("[output].format: unknown value %q (want pretty|short|json|sarif)", c.Output.Format))
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		errs = append(errs, fmt.Errorf("[output].color: unknown value %q (want auto|on|off)", c.Output.Color))
	}
	if c.Output.MaxDiagnostics < 0 {
		errs = append(errs, fmt.Errorf("[output].max_diagnostics must be >= 0"))
	}
	if c.Run.Jobs < 0 {
		errs = append(errs, fmt.Errorf("[run].jobs must be >= 0"))
	}
	return errors.Join(errs...)
}
