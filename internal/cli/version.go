package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	querybuilder "github.com/biyonik/go-query-builder"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "querybuild v%s\n", querybuilder.Version)
		},
	}
}
