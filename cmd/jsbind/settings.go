package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jsbind/internal/config"
	"jsbind/internal/diagfmt"
)

// EnvPrefix prefixes the environment overrides: JSBIND_FORMAT, JSBIND_MAX_DIAGNOSTICS, ...
const EnvPrefix = "JSBIND"

// settings is the effective configuration of one invocation:
// jsbind.toml, then JSBIND_* variables, then explicit flags.
type settings struct {
	cfg      config.Config
	manifest *config.Manifest
	pathMode diagfmt.PathMode
	quiet    bool
	timings  bool
	useColor bool
}

// settingKeys are the viper keys; each one is also a flag name.
var settingKeys = []string{
	"format", "color", "max-diagnostics", "jobs", "cache",
	"source-type", "module-record", "early-errors", "typescript",
	"path-mode", "quiet", "timings",
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	manifest, err := loadManifest(cmd)
	if err != nil {
		return nil, err
	}
	c := manifest.Config

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("format", c.Output.Format)
	v.SetDefault("color", c.Output.Color)
	v.SetDefault("max-diagnostics", c.Output.MaxDiagnostics)
	v.SetDefault("jobs", c.Run.Jobs)
	v.SetDefault("cache", c.Run.Cache)
	v.SetDefault("source-type", string(c.Analysis.SourceType))
	v.SetDefault("module-record", c.Analysis.ModuleRecord)
	v.SetDefault("early-errors", c.Analysis.EarlyErrors)
	v.SetDefault("typescript", c.Analysis.TypeScript)
	v.SetDefault("path-mode", diagfmt.PathModeAuto.String())
	v.SetDefault("quiet", false)
	v.SetDefault("timings", false)

	// флаг побеждает только если задан явно
	for _, key := range settingKeys {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind %s flag: %w", key, err)
			}
		}
	}

	c.Output.Format = strings.ToLower(v.GetString("format"))
	c.Output.Color = strings.ToLower(v.GetString("color"))
	c.Output.MaxDiagnostics = v.GetInt("max-diagnostics")
	c.Run.Jobs = v.GetInt("jobs")
	c.Run.Cache = v.GetBool("cache")
	c.Analysis.SourceType = config.SourceTypeMode(strings.ToLower(v.GetString("source-type")))
	c.Analysis.ModuleRecord = v.GetBool("module-record")
	c.Analysis.EarlyErrors = v.GetBool("early-errors")
	c.Analysis.TypeScript = v.GetBool("typescript")
	if err := c.Validate(); err != nil {
		return nil, err
	}

	pathMode, err := diagfmt.ParsePathMode(v.GetString("path-mode"))
	if err != nil {
		return nil, err
	}
	manifest.Config = c
	return &settings{
		cfg:      c,
		manifest: manifest,
		pathMode: pathMode,
		quiet:    v.GetBool("quiet"),
		timings:  v.GetBool("timings"),
		useColor: c.Output.Color == "on" || (c.Output.Color == "auto" && isTerminal(os.Stdout)),
	}, nil
}

func loadManifest(cmd *cobra.Command) (*config.Manifest, error) {
	path := ""
	if f := cmd.Flags().Lookup("config"); f != nil {
		path = f.Value.String()
	}
	if path == "" {
		manifest, _, err := config.Load(".")
		return manifest, err
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &config.Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

// baseDir is what relative paths in the output are relative to.
func (s *settings) baseDir() string {
	if s.manifest != nil && s.manifest.Root != "" {
		return s.manifest.Root
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return ""
}
