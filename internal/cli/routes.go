package cli

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/deppfellow/echo-lessons/internal/config"
	"github.com/deppfellow/echo-lessons/internal/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// offlineServer is a server that never dials anything: memory stores,
// no Redis, no jobs, no New Relic, no log output.
func offlineServer() (*server.Server, error) {
	cfg := config.DefaultConfig()
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}

	log := zerolog.Nop()
	return server.New(cfg, &log, nil)
}

func routesCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List every registered method and path",
		RunE: func(c *cobra.Command, _ []string) error {
			srv, err := offlineServer()
			if err != nil {
				return err
			}

			r, err := newRouter(srv)
			if err != nil {
				return err
			}

			routes := r.Routes()
			sort.Slice(routes, func(i, j int) bool {
				if routes[i].Path == routes[j].Path {
					return routes[i].Method < routes[j].Method
				}
				return routes[i].Path < routes[j].Path
			})

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, rt := range routes {
				if rt.Method == "echo_route_not_found" {
					continue
				}
				if prefix != "" && !strings.HasPrefix(rt.Path, prefix) {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", rt.Method, rt.Path)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Only routes under this path prefix (e.g. /request-files)")
	return cmd
}
