package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewVersionCmd creates a new version command. format renders the text
// output and info returns the value printed with --json.
func NewVersionCmd(format func() string, info func() any) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// no config or logging needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asJSON {
				fmt.Fprint(cmd.OutOrStdout(), format())
				return nil
			}

			out, err := json.MarshalIndent(info(), "", "  ")
			if err != nil {
				return errors.Errorf("encoding version info: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
