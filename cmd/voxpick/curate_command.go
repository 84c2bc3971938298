package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"voxpick/internal/catalog"
	"voxpick/internal/config"
	"voxpick/internal/curation"
	"voxpick/internal/logging"
)

func newCurateCommand(ctx *commandContext) *cobra.Command {
	var (
		inputPath  string
		outputPath string
		dryRun     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "curate",
		Short: "Merge language variants and write the filtered catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			input := cfg.Paths.CatalogPath
			if inputPath != "" {
				if input, err = config.ExpandPath(inputPath); err != nil {
					return fmt.Errorf("resolve input path: %w", err)
				}
			}
			output := cfg.Paths.OutputPath
			if outputPath != "" {
				if output, err = config.ExpandPath(outputPath); err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
			}

			source, err := catalog.Load(input)
			if err != nil {
				if errors.Is(err, catalog.ErrNotFound) {
					return fmt.Errorf("catalog %s does not exist; set paths.catalog_path or pass --input", input)
				}
				return err
			}

			kept, summary := curation.NewPipeline(curationOptions(cfg), logger).Run(source)

			if !dryRun {
				lock := flock.New(output + ".lock")
				locked, err := lock.TryLock()
				if err != nil {
					return fmt.Errorf("acquire output lock: %w", err)
				}
				if !locked {
					return fmt.Errorf("another voxpick process is writing %s", output)
				}
				defer func() { _ = lock.Unlock() }()

				if err := catalog.Save(output, kept); err != nil {
					return err
				}
			}

			if jsonOutput {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headingLine(out, "Curation Summary"))
			fmt.Fprintln(out, renderTable(
				[]string{"Metric", "Count"},
				[][]string{
					{"Input records", strconv.Itoa(summary.Input)},
					{"After merge", strconv.Itoa(summary.Merged)},
					{"Kept", strconv.Itoa(summary.Kept)},
					{"Removed", strconv.Itoa(summary.Removed)},
				},
				[]columnAlignment{alignLeft, alignRight},
			))
			if dryRun {
				fmt.Fprintf(out, "Dry run; %s was not written\n", output)
			} else {
				fmt.Fprintf(out, "Wrote %d records to %s\n", summary.Kept, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Catalog file to read (overrides paths.catalog_path)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination file (overrides paths.output_path)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report counts without writing the output file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the summary as JSON")
	return cmd
}
