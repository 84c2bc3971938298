package curation

import (
	"strings"

	"voxpick/internal/catalog"
)

// Options carries the curation thresholds and blacklists. The value is
// immutable once handed to a pipeline.
type Options struct {
	MinEmotionCount   int
	BannedTags        []string
	BannedNames       []string
	ExcludedLanguages []string
}

// Filter evaluates records against the configured criteria.
type Filter struct {
	minEmotions int
	bannedTags  []string
	bannedNames map[string]struct{}
}

// NewFilter builds a filter from the given options.
func NewFilter(opts Options) *Filter {
	names := make(map[string]struct{}, len(opts.BannedNames))
	for _, name := range opts.BannedNames {
		names[name] = struct{}{}
	}
	return &Filter{
		minEmotions: opts.MinEmotionCount,
		bannedTags:  append([]string(nil), opts.BannedTags...),
		bannedNames: names,
	}
}

// Keep reports whether the record survives every criterion. Criteria run in
// order and the first failure wins; later criteria are not evaluated.
func (f *Filter) Keep(key string, rec *catalog.Record) bool {
	if rec.EmotionCount() < f.minEmotions {
		return false
	}
	for _, tag := range rec.Tags() {
		if f.TagBanned(tag) {
			return false
		}
	}
	// Name matching is exact, unlike the tag check's substring semantics.
	if _, banned := f.bannedNames[catalog.NamePart(key)]; banned {
		return false
	}
	return true
}

// TagBanned reports whether the tag contains any banned substring.
func (f *Filter) TagBanned(tag string) bool {
	for _, banned := range f.bannedTags {
		if banned != "" && strings.Contains(tag, banned) {
			return true
		}
	}
	return false
}

// Apply returns the subset of records passing every criterion.
func (f *Filter) Apply(in catalog.Catalog) catalog.Catalog {
	out := make(catalog.Catalog, len(in))
	for key, rec := range in {
		if f.Keep(key, rec) {
			out[key] = rec
		}
	}
	return out
}
