package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/extents/pkg/types"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list <extent>",
		Short: "Print every record of one extent as JSON",
		Long: "Load the saved graph and print the records of one extent, in\n" +
			"insertion order, as an indented JSON array.\n\n" +
			"Extents: " + strings.Join(types.StandardExtentNames, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: types.StandardExtentNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.close()

			records, err := s.store.Records(args[0])
			if errors.Is(err, types.ErrUnknownExtent) {
				return userError("unknown extent %q (valid: %s)", args[0], strings.Join(types.StandardExtentNames, ", "))
			}
			if err != nil {
				return sysError("%w", err)
			}
			out, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return sysError("marshal records: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
