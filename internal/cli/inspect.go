package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/ico"
	"github.com/matzehuels/iconforge/pkg/manifest"
)

// inspectCommand creates the inspect command, which lists the frames of an
// .ico file.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "List the frames stored in an .ico file",
		Long: `List the frames stored in an .ico file.

Without an argument the icon.ico in the configured output directory is read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := c.loadConfig(cmd, nil)
				if err != nil {
					return err
				}
				path = filepath.Join(cfg.OutputDir, manifest.ICOFileName)
			}
			return c.runInspect(path)
		},
	}
	return cmd
}

func (c *CLI) runInspect(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "icon file not found: %s", path)
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	entries, err := ico.DecodeConfigAll(f)
	if err != nil {
		return err
	}

	p := newPrinter(c.out)
	p.header(filepath.Base(path), fmt.Sprintf("%d frames", len(entries)))
	for i, e := range entries {
		p.frame(i, e.Width, e.Height, e.BitsPerPixel, e.Size)
	}
	c.Logger.Debug("Inspected icon", "path", path, "frames", len(entries))
	return nil
}
