package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(opts *options) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Save a small demo graph",
		Long: "Build a demo graph touching every entity type and association, audit\n" +
			"it, and save it. Refuses to overwrite saved data unless --force is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.close()

			if !force {
				for name, n := range s.store.Counts() {
					if n > 0 {
						return userError("data directory already holds %d %s; use --force to replace", n, name)
					}
				}
			}
			s.store.Reset()
			if err := s.store.Seed(); err != nil {
				return sysError("%w", err)
			}
			if err := s.store.Check(); err != nil {
				return sysError("seeded graph is inconsistent: %w", err)
			}
			if err := s.store.Save(s.gateway); err != nil {
				return sysError("%w", err)
			}

			total := 0
			for _, n := range s.store.Counts() {
				total += n
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d entities\n", total)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace existing data")
	return cmd
}
