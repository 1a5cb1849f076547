package benchctl

import (
	"fmt"

	"github.com/spf13/cobra"

	"tengebench/internal/benchapp"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the benchmark programs and their arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range benchapp.Names() {
				p, _ := benchapp.Lookup(name)
				if _, err := fmt.Fprintf(out, "%-16s %s\n", p.Name, p.Synopsis); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
