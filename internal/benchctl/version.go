package benchctl

import (
	"fmt"

	"github.com/spf13/cobra"

	"tengebench/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "benchctl version %s\n", version.Version)
			return err
		},
	}
}
