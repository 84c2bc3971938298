package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"voxpick/internal/ledger"
	"voxpick/internal/logging"
	"voxpick/internal/prompts"
)

func newPromptsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Generate voice prompt files from reference clips",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			store, err := ledger.Open(ledgerPath(cfg))
			if err != nil {
				return fmt.Errorf("open prompt ledger: %w", err)
			}
			defer func() { _ = store.Close() }()

			runner, err := prompts.NewRunner(cfg.Prompts, store, logger)
			if err != nil {
				return err
			}

			stats, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, stats)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headingLine(out, "Prompt Generation"))
			fmt.Fprintln(out, renderTable(
				[]string{"Metric", "Count"},
				[][]string{
					{"Clips scanned", strconv.Itoa(stats.Scanned)},
					{"Already done", strconv.Itoa(stats.Skipped)},
					{"Generated", strconv.Itoa(stats.Generated)},
					{"Failed", strconv.Itoa(stats.Failed)},
				},
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit run statistics as JSON")
	return cmd
}
