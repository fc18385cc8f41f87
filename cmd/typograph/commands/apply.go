package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/typograph/cmd/typograph/opts"
	"github.com/walteh/typograph/pkg/log"
	"github.com/walteh/typograph/pkg/operation"
	"github.com/walteh/typograph/pkg/status"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply [paths or globs...]",
		Short: "Rewrite files in place",
		Long: `Apply rewrites every matching file in place.
It will:
1. Expand the arguments, or the config include globs when none are given
2. Drop files matching the config exclude globs
3. Process each file and replace its content when anything changed
4. Print one line per file and a summary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)
			logger := log.FromContext(ctx)

			patterns := args
			if len(patterns) == 0 {
				patterns = opts.Config.Include
			}
			if len(patterns) == 0 {
				return errors.Errorf("no paths given and no include patterns configured")
			}

			paths, err := operation.ResolvePaths(opts.Root, patterns, opts.Config.Exclude)
			if err != nil {
				return errors.Errorf("resolving paths: %w", err)
			}

			mgr := status.New(opts.Root, zerolog.Ctx(ctx))
			docs := make([]operation.Document, 0, len(paths))
			for _, p := range paths {
				docs = append(docs, mgr.Open(p))
			}

			op, err := operation.New(operation.Options{
				Processor: opts.Processor,
				Notifier:  logger,
				DryRun:    dryRun,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			logger.StartRun(ctx, log.RunOperation{
				Root:      opts.Root,
				Mode:      opts.Processor.Mode().String(),
				Documents: len(docs),
				DryRun:    dryRun,
			})

			outcomes, runErr := operation.NewRunner(op, opts.Config.Concurrency).WithProgress(mgr).Run(ctx, docs)

			total := logger.EndRun(ctx)

			files, err := mgr.ListFiles(ctx)
			if err != nil {
				return errors.Errorf("listing files: %w", err)
			}
			for _, f := range files {
				zerolog.Ctx(ctx).Debug().Str("path", f.Path).Str("status", f.Status.String()).Int64("size", f.Size).Str("checksum", f.Checksum).Msg("file status")
			}

			printSummary(cmd.OutOrStdout(), total)

			if runErr != nil {
				processed, scheduled := mgr.Progress()
				return errors.Errorf("stopped after %d of %d documents: %w", processed, scheduled, runErr)
			}
			if failed := operation.Failed(outcomes); len(failed) > 0 {
				return errors.Errorf("%s", failureMessage(failed, len(outcomes)))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report changes without writing files")

	return cmd
}

func failureMessage(failed []operation.Outcome, total int) string {
	msg := fmt.Sprintf("%d of %d documents failed", len(failed), total)
	if len(failed) == 1 {
		msg += ": " + failed[0].Err.Error()
	}
	return msg
}
