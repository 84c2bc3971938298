package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Record is one character entry in the catalog. Known fields (tags, emotion)
// are decoded into typed views; everything else is carried through untouched.
type Record struct {
	fields   map[string]json.RawMessage
	tags     []string
	hasTags  bool
	emotions int
}

// NewRecord builds a record with the given tags and emotion count. Intended
// for tests and synthetic records; catalog data normally arrives via JSON.
func NewRecord(tags []string, emotions int) *Record {
	entries := make([]json.RawMessage, emotions)
	for i := range entries {
		entries[i] = json.RawMessage(fmt.Sprintf("%q", fmt.Sprintf("emotion-%d", i+1)))
	}
	raw, _ := json.Marshal(entries)
	rec := &Record{
		fields:   map[string]json.RawMessage{"emotion": raw},
		emotions: emotions,
	}
	rec.SetTags(tags)
	return rec
}

// UnmarshalJSON decodes a record, keeping unknown fields verbatim and
// normalizing the emotion shape to a count exactly once.
func (r *Record) UnmarshalJSON(data []byte) error {
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	r.fields = fields
	r.tags = nil
	r.hasTags = false
	if raw, ok := fields["tags"]; ok {
		var tags []string
		if err := json.Unmarshal(raw, &tags); err != nil {
			return fmt.Errorf("decode tags: %w", err)
		}
		r.tags = tags
		r.hasTags = true
	}
	r.emotions = emotionCount(fields["emotion"])
	return nil
}

// MarshalJSON re-emits the record with the current tags and every other
// field exactly as it arrived. HTML escaping is avoided throughout so raw
// field bytes pass the outer encoder unchanged.
func (r *Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(r.fields)+1)
	for key, value := range r.fields {
		out[key] = value
	}
	if r.hasTags || len(r.tags) > 0 {
		tags := r.tags
		if tags == nil {
			tags = []string{}
		}
		raw, err := marshalNoEscape(tags)
		if err != nil {
			return nil, err
		}
		out["tags"] = raw
	}
	return marshalNoEscape(out)
}

func marshalNoEscape(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Tags returns a copy of the record's tags. Absent tags read as empty.
func (r *Record) Tags() []string {
	return append([]string(nil), r.tags...)
}

// SetTags replaces the record's tags.
func (r *Record) SetTags(tags []string) {
	r.tags = append([]string(nil), tags...)
	r.hasTags = true
}

// MergeTags unions the given tags into the record's tag set. The result is
// kept sorted so merged catalogs serialize deterministically.
func (r *Record) MergeTags(tags []string) {
	set := make(map[string]struct{}, len(r.tags)+len(tags))
	for _, tag := range r.tags {
		set[tag] = struct{}{}
	}
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	merged := make([]string, 0, len(set))
	for tag := range set {
		merged = append(merged, tag)
	}
	sort.Strings(merged)
	r.tags = merged
	r.hasTags = true
}

// EmotionCount returns the normalized number of recorded emotions.
func (r *Record) EmotionCount() int {
	return r.emotions
}

// Field returns the raw JSON value of an arbitrary record field.
func (r *Record) Field(name string) (json.RawMessage, bool) {
	value, ok := r.fields[name]
	return value, ok
}

// StringField decodes a record field as a string, returning "" when the
// field is absent or not a string.
func (r *Record) StringField(name string) string {
	raw, ok := r.fields[name]
	if !ok {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}

// emotionCount coerces the emotion field to a count. Lists count directly.
// The legacy per-language mapping counts the first value's entries (first by
// sorted key, so the result is deterministic). Anything else counts as zero.
func emotionCount(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var seq []json.RawMessage
	if err := json.Unmarshal(raw, &seq); err == nil {
		return len(seq)
	}
	var legacy map[string]json.RawMessage
	if err := json.Unmarshal(raw, &legacy); err == nil {
		if len(legacy) == 0 {
			return 0
		}
		keys := make([]string, 0, len(legacy))
		for key := range legacy {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		var first []json.RawMessage
		if err := json.Unmarshal(legacy[keys[0]], &first); err != nil {
			return 0
		}
		return len(first)
	}
	return 0
}
