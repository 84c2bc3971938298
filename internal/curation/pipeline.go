package curation

import (
	"log/slog"

	"voxpick/internal/catalog"
	"voxpick/internal/logging"
)

// Summary captures the aggregate counts of one curation run.
type Summary struct {
	Input   int `json:"input"`
	Merged  int `json:"merged"`
	Kept    int `json:"kept"`
	Removed int `json:"removed"`
}

// Pipeline runs the merge and filter stages in order.
type Pipeline struct {
	opts   Options
	logger *slog.Logger
}

// NewPipeline builds a pipeline with an immutable options value.
func NewPipeline(opts Options, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		opts:   opts,
		logger: logging.WithComponent(logger, "curation"),
	}
}

// Run merges variant records and filters the result. The input catalog is
// not reused afterward; surviving records flow through by reference.
func (p *Pipeline) Run(in catalog.Catalog) (catalog.Catalog, Summary) {
	merged := Merge(in, p.opts.ExcludedLanguages)
	p.logger.Info("variants merged",
		"input", len(in),
		"merged", len(merged),
	)

	kept := NewFilter(p.opts).Apply(merged)
	summary := Summary{
		Input:   len(in),
		Merged:  len(merged),
		Kept:    len(kept),
		Removed: len(in) - len(kept),
	}
	p.logger.Info("curation complete",
		"kept", summary.Kept,
		"removed", summary.Removed,
	)
	return kept, summary
}
