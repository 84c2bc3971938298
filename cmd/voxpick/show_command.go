package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"voxpick/internal/catalog"
	"voxpick/internal/curation"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var (
		elite      bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "show [key]",
		Short: "Inspect the catalog or a single record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := cfg.Paths.CatalogPath
			if elite {
				path = cfg.Paths.OutputPath
			}

			records, err := catalog.Load(path)
			if err != nil {
				if errors.Is(err, catalog.ErrNotFound) {
					return fmt.Errorf("catalog %s does not exist", path)
				}
				return err
			}

			if len(args) == 1 {
				rec, ok := records[args[0]]
				if !ok {
					return fmt.Errorf("no record with key %q in %s", args[0], path)
				}
				data, err := catalog.Encode(rec)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			stats := catalogStats(records, curation.NewFilter(curationOptions(cfg)))
			if jsonOutput {
				return writeJSON(cmd, stats)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headingLine(out, "Catalog: "+path))
			fmt.Fprintln(out, renderTable(
				[]string{"Metric", "Count"},
				[][]string{
					{"Records", strconv.Itoa(stats.Records)},
					{"Marked variants", strconv.Itoa(stats.Variants)},
					{"Would pass filter", strconv.Itoa(stats.Passing)},
				},
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&elite, "elite", false, "Read the curated output instead of the source catalog")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit statistics as JSON")
	return cmd
}

type catalogStatsView struct {
	Records  int `json:"records"`
	Variants int `json:"variants"`
	Passing  int `json:"passing"`
}

func catalogStats(records catalog.Catalog, filter *curation.Filter) catalogStatsView {
	var stats catalogStatsView
	stats.Records = len(records)
	for key, rec := range records {
		if catalog.IsVariant(key) {
			stats.Variants++
		}
		if filter.Keep(key, rec) {
			stats.Passing++
		}
	}
	return stats
}
