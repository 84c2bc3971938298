// Package curation distills a voice catalog down to its elite subset.
//
// Curation runs two sequential stages. The merge stage collapses records
// that describe the same character under marked and unmarked keys into one
// canonical record, unioning tags across variants. The filter stage then
// drops records failing any of three independent criteria: too few recorded
// emotions, a tag containing a banned substring, or a name exactly matching
// a banned entry.
//
// Both stages are deterministic and purely functional over the catalog; the
// only mutation is the tag union applied to a surviving record during merge.
package curation
