// Package catalog defines the voice catalog data model and its JSON boundary.
//
// A catalog is a mapping from key strings to character records. Keys follow
// the form "series-language-name" with an optional trailing variant marker
// (for example "_ZH") denoting the preferred-language recording of the same
// character. Records carry free-form descriptive tags and a sequence of
// recorded emotions; every other field is preserved verbatim so the catalog
// can round-trip fields this tool does not understand.
//
// Emotion data occurs in two shapes in the wild: the current flat list and a
// legacy per-language mapping. The count is normalized once when a record is
// decoded, so downstream filtering never repeats shape detection.
package catalog
