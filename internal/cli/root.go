// Package cli wires the tutorials binary: serve the lessons, or inspect
// what would be served.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tutorials",
		Short:        "Web framework lessons, one route group per lesson",
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return runServe(c.Context())
		},
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(routesCmd())
	cmd.AddCommand(lessonsCmd())
	return cmd
}
