package main

import (
	"path/filepath"

	"voxpick/internal/config"
	"voxpick/internal/curation"
)

func curationOptions(cfg *config.Config) curation.Options {
	return curation.Options{
		MinEmotionCount:   cfg.Curation.MinEmotionCount,
		BannedTags:        cfg.Curation.BannedTags,
		BannedNames:       cfg.Curation.BannedNames,
		ExcludedLanguages: cfg.Curation.ExcludedLanguages,
	}
}

func ledgerPath(cfg *config.Config) string {
	return filepath.Join(cfg.Paths.LogDir, "prompts.db")
}
