package curation

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"voxpick/internal/catalog"
)

var keyFolder = cases.Fold()

// ExcludedLanguage reports whether the key names a non-target-language
// variant. Matching is case-insensitive substring containment.
func ExcludedLanguage(key string, markers []string) bool {
	folded := keyFolder.String(key)
	for _, marker := range markers {
		if marker == "" {
			continue
		}
		if strings.Contains(folded, keyFolder.String(marker)) {
			return true
		}
	}
	return false
}

// Merge collapses records sharing a canonical identity into one entry.
//
// Keys matching an excluded-language marker are dropped up front. The
// remaining keys are processed variant-marked first, so the marked record is
// stored verbatim and becomes authoritative for every field except tags,
// which accumulate across all variants of the identity. Ties within a
// priority group break lexicographically to keep the merge deterministic.
func Merge(in catalog.Catalog, excludedLanguages []string) catalog.Catalog {
	keys := make([]string, 0, len(in))
	for key := range in {
		if ExcludedLanguage(key, excludedLanguages) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		vi, vj := catalog.IsVariant(keys[i]), catalog.IsVariant(keys[j])
		if vi != vj {
			return vi
		}
		return keys[i] < keys[j]
	})

	out := make(catalog.Catalog, len(keys))
	chosen := make(map[string]string, len(keys))
	for _, key := range keys {
		id := catalog.CanonicalID(key)
		if existing, ok := chosen[id]; ok {
			out[existing].MergeTags(in[key].Tags())
			continue
		}
		chosen[id] = key
		out[key] = in[key]
	}
	return out
}
