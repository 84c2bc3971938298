package catalog

import "strings"

// VariantMarker is the key suffix denoting the preferred-language variant of
// a character. Marked and unmarked keys that agree after stripping the marker
// refer to the same character.
const VariantMarker = "_ZH"

// CanonicalID returns the key with the variant marker stripped. It is the
// unit of deduplication during merging.
func CanonicalID(key string) string {
	return strings.ReplaceAll(key, VariantMarker, "")
}

// IsVariant reports whether key carries the preferred-language marker.
func IsVariant(key string) bool {
	return strings.HasSuffix(key, VariantMarker)
}

// NamePart returns the character name segment of a key: the last
// hyphen-delimited segment with the variant marker stripped. Keys with fewer
// segments than expected degrade to whatever the last segment resolves to.
func NamePart(key string) string {
	segment := key
	if i := strings.LastIndex(key, "-"); i >= 0 {
		segment = key[i+1:]
	}
	return strings.ReplaceAll(segment, VariantMarker, "")
}
