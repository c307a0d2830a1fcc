// Package config resolves iconforge settings from defaults and an optional
// TOML file.
//
// Precedence, lowest first: built-in defaults, the config file, command-line
// flags (applied by the CLI on top of the returned Config). Only keys present
// in the file override defaults.
//
//	source     = "/path/to/original_logo.png"
//	output_dir = "/path/to/icons"
//	resampler  = "imaging"
//	filter     = "lanczos"
//	icns       = false
//	ico_sizes  = [16, 32, 48, 64, 128, 256]
//
//	[[sizes]]
//	name = "32x32.png"
//	size = 32
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/manifest"
	"github.com/matzehuels/iconforge/pkg/raster"
)

// EnvConfig names the environment variable consulted when no --config is given.
const EnvConfig = "ICONFORGE_CONFIG"

// Built-in locations of the desktop app's logo and icon directory.
const (
	DefaultSource    = "/Users/lech/LocalBrain_v0.1/original_logo.png"
	DefaultOutputDir = "/Users/lech/LocalBrain_v0.1/apps/desktop/src-tauri/icons/"
)

// Config holds every setting a pipeline run needs.
type Config struct {
	Source    string
	OutputDir string
	Resampler string
	Filter    string
	ICNS      bool
	Sizes     manifest.Sizes
	ICO       manifest.ICO
}

// file mirrors the TOML layout; nil fields were absent.
type file struct {
	Source    *string        `toml:"source"`
	OutputDir *string        `toml:"output_dir"`
	Resampler *string        `toml:"resampler"`
	Filter    *string        `toml:"filter"`
	ICNS      *bool          `toml:"icns"`
	Sizes     manifest.Sizes `toml:"sizes"`
	ICOSizes  manifest.ICO   `toml:"ico_sizes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source:    DefaultSource,
		OutputDir: DefaultOutputDir,
		Resampler: raster.DefaultBackend,
		Filter:    raster.DefaultFilter,
		Sizes:     manifest.DefaultSizes.Clone(),
		ICO:       manifest.DefaultICO.Clone(),
	}
}

// Resolve loads path, or the file named by $ICONFORGE_CONFIG when path is
// empty. With neither set it returns Default().
func Resolve(path string) (Config, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Load reads a TOML file over the defaults and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s not found", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg := Default()
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

func (f file) apply(cfg *Config) {
	if f.Source != nil {
		cfg.Source = *f.Source
	}
	if f.OutputDir != nil {
		cfg.OutputDir = *f.OutputDir
	}
	if f.Resampler != nil {
		cfg.Resampler = *f.Resampler
	}
	if f.Filter != nil {
		cfg.Filter = *f.Filter
	}
	if f.ICNS != nil {
		cfg.ICNS = *f.ICNS
	}
	if f.Sizes != nil {
		cfg.Sizes = f.Sizes
	}
	if f.ICOSizes != nil {
		cfg.ICO = f.ICOSizes
	}
}

// Validate checks manifests and resampler names.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New(errors.ErrCodeInvalidInput, "output_dir cannot be empty")
	}
	if err := c.Sizes.Validate(); err != nil {
		return err
	}
	if err := c.ICO.Validate(); err != nil {
		return err
	}
	if _, err := raster.NewResampler(c.Resampler, c.Filter); err != nil {
		return err
	}
	return nil
}
