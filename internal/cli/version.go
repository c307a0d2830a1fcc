package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/iconforge/pkg/buildinfo"
)

// versionCommand prints the build metadata, one field per line.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version, commit and build date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(c.out, buildinfo.String())
			return err
		},
	}
}
