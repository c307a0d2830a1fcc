// Package cli implements the iconforge command-line interface.
//
// The binary exposes the two icon pipelines as subcommands, both runnable
// without arguments:
//   - resize: fan an existing logo out into the PNG and ICO icon set
//   - logo: render the placeholder logo at every icon size
//
// Support commands:
//   - inspect: list the frames stored in an .ico file
//   - completion: shell completion scripts
//   - version: build metadata
//
// Results go to stdout, one "Created <name>" line per file followed by a
// summary. Diagnostics go to the charmbracelet/log logger on stderr;
// --verbose switches it to debug level.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/iconforge/pkg/buildinfo"
	"github.com/matzehuels/iconforge/pkg/config"
	"github.com/matzehuels/iconforge/pkg/raster"
)

// appName is the application name used for display.
const appName = "iconforge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	configPath string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects result lines, which default to stdout.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "iconforge generates desktop application icon sets",
		Long:         `iconforge resizes a source logo, or renders a placeholder logo, into the fixed set of PNG and ICO icon files a desktop application bundle expects.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (TOML); defaults to $"+config.EnvConfig)

	root.AddCommand(c.resizeCommand())
	root.AddCommand(c.logoCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// loadConfig resolves the config file and applies the flags the user set.
func (c *CLI) loadConfig(cmd *cobra.Command, flags *pipelineFlags) (config.Config, error) {
	cfg, err := config.Resolve(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if flags != nil {
		flags.apply(cmd, &cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// pipelineFlags are the per-run overrides shared by resize and logo.
type pipelineFlags struct {
	source    string
	outputDir string
	resampler string
	filter    string
	icns      bool
}

func (f *pipelineFlags) register(cmd *cobra.Command, withSource bool) {
	if withSource {
		cmd.Flags().StringVarP(&f.source, "source", "s", config.DefaultSource, "source image to resize")
		cmd.Flags().StringVar(&f.resampler, "resampler", raster.DefaultBackend, "resampling backend: "+strings.Join(raster.Backends(), ", "))
		cmd.Flags().StringVar(&f.filter, "filter", raster.DefaultFilter, "resampling filter: "+strings.Join(raster.Filters(), ", "))
	}
	cmd.Flags().StringVarP(&f.outputDir, "out", "o", config.DefaultOutputDir, "output directory (must exist)")
	cmd.Flags().BoolVar(&f.icns, "icns", false, "also write icon.icns from the largest PNG")
}

// apply overrides cfg with flags that were set explicitly on the command line.
func (f *pipelineFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("source") {
		cfg.Source = f.source
	}
	if changed("out") {
		cfg.OutputDir = f.outputDir
	}
	if changed("resampler") {
		cfg.Resampler = f.resampler
	}
	if changed("filter") {
		cfg.Filter = f.filter
	}
	if changed("icns") {
		cfg.ICNS = f.icns
	}
}
