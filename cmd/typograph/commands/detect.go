package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/typograph/cmd/typograph/opts"
	"github.com/walteh/typograph/pkg/status"
)

// NewDetectCmd creates a new detect command
func NewDetectCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Show the language and change count of each line",
		Long: `Detect prints a table with one row per line of the file, or of stdin when no
file is given: the line number, the pipeline the line goes through and the
number of changes that pipeline reports. Nothing is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			name, in := "stdin", cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Errorf("opening %s: %w", args[0], err)
				}
				defer f.Close()
				name, in = args[0], f
			}

			buf, err := status.ReadBuffer(name, in)
			if err != nil {
				return err
			}
			text, err := buf.Text(ctx)
			if err != nil {
				return err
			}

			res := opts.Processor.Process(text)

			data := pterm.TableData{{"Line", "Language", "Changes"}}
			for _, line := range res.Lines {
				data = append(data, []string{
					strconv.Itoa(line.Number),
					line.Language.String(),
					strconv.Itoa(line.Changes),
				})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), table)
			fmt.Fprintln(cmd.OutOrStdout(), res.Summary())

			return nil
		},
	}

	return cmd
}
