package commands

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/typograph/cmd/typograph/opts"
	"github.com/walteh/typograph/pkg/operation"
	"github.com/walteh/typograph/pkg/status"
)

// NewFormatCmd creates a new format command
func NewFormatCmd(opts *opts.RootOpts) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Rewrite text from stdin to stdout",
		Long: `Format reads a whole document from stdin, applies the typography rules and
writes the result to stdout. The summary notice goes to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "format").Logger().WithContext(ctx)

			doc, err := status.ReadBuffer("stdin", cmd.InOrStdin())
			if err != nil {
				return errors.Errorf("reading input: %w", err)
			}

			var notices io.Writer = cmd.ErrOrStderr()
			if quiet {
				notices = io.Discard
			}

			op, err := operation.New(operation.Options{
				Processor: opts.Processor,
				Notifier:  &prefixNotifier{w: notices},
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			if _, err := op.Apply(ctx, doc); err != nil {
				return errors.Errorf("formatting input: %w", err)
			}

			if _, err := io.WriteString(cmd.OutOrStdout(), doc.String()); err != nil {
				return errors.Errorf("writing output: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the summary notice")

	return cmd
}
