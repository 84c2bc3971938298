package prompts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"voxpick/internal/config"
	"voxpick/internal/ledger"
	"voxpick/internal/logging"
)

// Stats captures the aggregate counts of one prompt generation run.
type Stats struct {
	Scanned   int `json:"scanned"`
	Skipped   int `json:"skipped"`
	Generated int `json:"generated"`
	Failed    int `json:"failed"`
}

// Runner drives prompt generation for every clip in the source tree.
type Runner struct {
	cfg    config.Prompts
	client *Client
	jobs   *ledger.Store
	logger *slog.Logger
}

// NewRunner builds a runner. The ledger store is required; a nil logger
// falls back to a no-op logger.
func NewRunner(cfg config.Prompts, jobs *ledger.Store, logger *slog.Logger) (*Runner, error) {
	if jobs == nil {
		return nil, errors.New("prompt runner requires a job ledger")
	}
	return &Runner{
		cfg:    cfg,
		client: NewClient(cfg.APIURL, time.Duration(cfg.RequestTimeout)*time.Second),
		jobs:   jobs,
		logger: logging.WithComponent(logger, "prompts"),
	}, nil
}

// Run processes every clip under the configured source directory. A failing
// clip is recorded and skipped; it never aborts the run. Cancellation stops
// between clips.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	if r.cfg.SourceDir == "" {
		return stats, errors.New("prompts.source_dir is not configured")
	}

	clips, skipped, err := Scan(r.cfg.SourceDir)
	if err != nil {
		return stats, err
	}
	stats.Scanned = len(clips)
	for _, name := range skipped {
		r.logger.Warn("skipping clip with unexpected name", logging.FieldClip, name)
	}

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return stats, fmt.Errorf("create output directory: %w", err)
	}

	for _, clip := range clips {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		done, err := r.jobs.Completed(ctx, clip.Path)
		if err != nil {
			return stats, err
		}
		if done {
			stats.Skipped++
			continue
		}

		dest := filepath.Join(r.cfg.OutputDir, clip.PromptFileName())
		if err := r.generate(ctx, clip, dest); err != nil {
			stats.Failed++
			r.logger.Warn("prompt generation failed",
				logging.FieldClip, clip.Path,
				"voice", clip.Voice,
				"emotion", clip.Emotion,
				logging.Error(err),
			)
			if err := r.jobs.RecordFailure(ctx, clip.Path, clip.Voice, clip.Emotion, err); err != nil {
				return stats, err
			}
			continue
		}

		stats.Generated++
		r.logger.Info("prompt generated",
			"voice", clip.Voice,
			"emotion", clip.Emotion,
			"output", dest,
		)
		if err := r.jobs.RecordSuccess(ctx, clip.Path, clip.Voice, clip.Emotion, dest); err != nil {
			return stats, err
		}
	}

	r.logger.Info("prompt run complete",
		"scanned", stats.Scanned,
		"skipped", stats.Skipped,
		"generated", stats.Generated,
		"failed", stats.Failed,
	)
	return stats, nil
}

func (r *Runner) generate(ctx context.Context, clip Clip, dest string) error {
	serverPath, err := r.client.SavePrompt(ctx, clip.Path, clip.RefText)
	if err != nil {
		return err
	}
	return r.client.Download(ctx, serverPath, dest)
}
