package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/iconforge/pkg/config"
	"github.com/matzehuels/iconforge/pkg/export"
	"github.com/matzehuels/iconforge/pkg/raster"
)

// resizeCommand creates the resize command, which fans a source logo out
// into the icon set.
func (c *CLI) resizeCommand() *cobra.Command {
	var flags pipelineFlags

	cmd := &cobra.Command{
		Use:   "resize",
		Short: "Resize a source logo into the icon set",
		Long: `Resize a source logo into the PNG icon sizes and a multi-resolution icon.ico.

The source is converted to RGBA and every output is resampled directly from
it. Existing files in the output directory are overwritten; the directory
itself must already exist.`,
		Example: `  # Use the built-in source and output paths
  iconforge resize

  # Explicit paths with a different resampler
  iconforge resize -s logo.png -o icons/ --resampler xdraw --filter catmullrom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runResize(cmd.Context(), cfg)
		},
	}

	flags.register(cmd, true)
	return cmd
}

func (c *CLI) runResize(ctx context.Context, cfg config.Config) error {
	prog := newProgress(c.Logger)

	img, err := raster.Load(cfg.Source)
	if err != nil {
		return err
	}
	if !raster.IsNRGBA(img) {
		c.Logger.Debug("Converting source to RGBA", "type", fmt.Sprintf("%T", img))
	}

	resampler, err := raster.NewResampler(cfg.Resampler, cfg.Filter)
	if err != nil {
		return err
	}
	src := export.NewResampleSource(img, resampler)
	b := src.Bounds()
	c.Logger.Infof("Loaded %s (%dx%d)", cfg.Source, b.Dx(), b.Dy())

	p := newPrinter(c.out)
	runner := export.NewRunner(c.Logger, export.WithReporter(func(a export.Artifact) {
		p.created(a.Name)
	}))

	res, err := runner.Run(ctx, src, planFor(cfg))
	if err != nil {
		return err
	}

	p.done("All icon files created successfully!")
	prog.done(fmt.Sprintf("Exported %d files with %s", len(res.Files), resampler.Name()))
	return nil
}

func planFor(cfg config.Config) export.Plan {
	return export.Plan{
		OutputDir: cfg.OutputDir,
		Sizes:     cfg.Sizes,
		ICO:       cfg.ICO,
		ICNS:      cfg.ICNS,
	}
}
