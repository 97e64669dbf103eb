package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/jproj/internal/cmdtypes"
	"github.com/opmodel/jproj/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Print the jproj build metadata and the CUE SDK version used to check override templates.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(c.OutOrStdout(), version.Get().String())
			return err
		},
	}
}
