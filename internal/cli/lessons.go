package cli

import (
	"encoding/json"
	"fmt"

	"github.com/deppfellow/echo-lessons/internal/router"
	"github.com/spf13/cobra"
)

func lessonsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lessons",
		Short: "List the lesson catalog",
		RunE: func(c *cobra.Command, _ []string) error {
			lessons := router.Lessons()

			if asJSON {
				enc := json.NewEncoder(c.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(lessons)
			}

			for _, l := range lessons {
				fmt.Fprintf(c.OutOrStdout(), "- %-30s %s\n", l.Prefix, l.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")
	return cmd
}
