package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/extents/internal/persist"
	"github.com/mesh-intelligence/extents/pkg/types"
)

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print extent sizes, link counts and SQLite save generations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			counts := s.store.Counts()
			fmt.Fprintln(w, "EXTENT\tRECORDS")
			for _, name := range s.store.ExtentNames() {
				fmt.Fprintf(w, "%s\t%d\n", name, counts[name])
			}
			links := s.store.LinkCounts()
			fmt.Fprintln(w, "\nLINK\tPAIRS")
			for _, name := range s.store.LinkNames() {
				fmt.Fprintf(w, "%s\t%d\n", name, links[name])
			}

			if db, ok := s.gateway.Backend().(*persist.SQLite); ok {
				gens, err := db.Generations()
				if err != nil {
					return sysError("reading save generations: %w", err)
				}
				fmt.Fprintln(w, "\nRESOURCE\tSAVE ID\tSAVED AT\tRECORDS")
				for _, name := range append(s.store.ExtentNames(), types.LinksExtent) {
					g, ok := gens[name]
					if !ok {
						continue
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", name, g.SaveID, g.SavedAt.Format(time.RFC3339), g.Records)
				}
			}
			return w.Flush()
		},
	}
}
