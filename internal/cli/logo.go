package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/iconforge/pkg/config"
	"github.com/matzehuels/iconforge/pkg/export"
	"github.com/matzehuels/iconforge/pkg/logo"
)

// logoCommand creates the logo command, which renders the placeholder logo
// into the icon set.
func (c *CLI) logoCommand() *cobra.Command {
	var flags pipelineFlags

	cmd := &cobra.Command{
		Use:   "logo",
		Short: "Render the placeholder logo into the icon set",
		Long: `Render the placeholder brain logo at every icon size.

Each size is drawn from scratch rather than scaled, so strokes and dots keep
their pixel widths. Without --icns the run ends with the command that turns
the largest PNG into icon.icns on macOS.`,
		Example: `  # Write into the built-in icon directory
  iconforge logo

  # Write into a scratch directory and build icon.icns too
  iconforge logo -o /tmp/icons --icns`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runLogo(cmd.Context(), cfg)
		},
	}

	flags.register(cmd, false)
	return cmd
}

func (c *CLI) runLogo(ctx context.Context, cfg config.Config) error {
	prog := newProgress(c.Logger)

	p := newPrinter(c.out)
	runner := export.NewRunner(c.Logger, export.WithReporter(func(a export.Artifact) {
		p.created(a.Name)
	}))

	res, err := runner.Run(ctx, logo.Source{}, planFor(cfg))
	if err != nil {
		return err
	}

	p.done("Logo files created successfully!")
	if !cfg.ICNS {
		largest := "icon_1024.png"
		if e, ok := cfg.Sizes.Largest(); ok {
			largest = e.Name
		}
		p.note(fmt.Sprintf("You'll need to convert %s to icon.icns using:", largest),
			fmt.Sprintf("sips -s format icns %s --out icon.icns", largest))
	}
	prog.done(fmt.Sprintf("Rendered %d files", len(res.Files)))
	return nil
}
