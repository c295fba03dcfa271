package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/extents/internal/paths"
	"github.com/mesh-intelligence/extents/internal/persist"
)

func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and data directories",
		Long: "Create the configuration directory with a config.yaml recording the\n" +
			"backend and data directory, then create the data directory and\n" +
			"initialize the backend. Existing files are left untouched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.resolve()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(r.configDir, 0o755); err != nil {
				return sysError("create config directory: %w", err)
			}
			path := paths.ConfigFile(r.configDir)
			written, err := writeConfigIfMissing(path, configFile{Backend: r.cfg.Backend, DataDir: r.cfg.DataDir})
			if err != nil {
				return sysError("write config: %w", err)
			}
			if err := os.MkdirAll(r.cfg.DataDir, 0o755); err != nil {
				return sysError("create data directory: %w", err)
			}
			backend, err := persist.Open(r.cfg)
			if err != nil {
				return sysError("initialize %s backend: %w", r.cfg.Backend, err)
			}
			if err := backend.Close(); err != nil {
				return sysError("finalize %s backend: %w", r.cfg.Backend, err)
			}

			out := cmd.OutOrStdout()
			if written {
				fmt.Fprintf(out, "wrote %s\n", path)
			}
			fmt.Fprintf(out, "extents initialized (backend %s, data %s)\n", r.cfg.Backend, r.cfg.DataDir)
			return nil
		},
	}
}
