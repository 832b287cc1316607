package model

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// ContentItem is a single interview/article listing.
//
// Items are immutable once loaded: the store hands out fresh copies and the
// filter never writes to them.
type ContentItem struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Category    string     `json:"category,omitempty" yaml:"category"`
	Tags        TagSet     `json:"tags,omitempty" yaml:"tags"`
	Summary     string     `json:"summary,omitempty" yaml:"summary"`
	Body        string     `json:"body,omitempty" yaml:"body"`
	Author      string     `json:"author,omitempty" yaml:"author"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" yaml:"publishedAt"`
}

// Category is either None (no category filter, "all") or Named(label).
type Category struct {
	name string
	set  bool
}

// NoCategory is the "all" state.
func NoCategory() Category { return Category{} }

// Named returns a set category. The label is kept verbatim (including "").
func Named(label string) Category { return Category{name: label, set: true} }

// ParseCategory maps blank user input to NoCategory.
func ParseCategory(s string) Category {
	if strings.TrimSpace(s) == "" {
		return NoCategory()
	}
	return Named(s)
}

func (c Category) IsSet() bool { return c.set }

// Name returns the label and whether the category is set.
func (c Category) Name() (string, bool) { return c.name, c.set }

func (c Category) Is(label string) bool { return c.set && c.name == label }

// String is for display and logs; None reads as "all".
func (c Category) String() string {
	if !c.set {
		return "all"
	}
	return c.name
}

// MarshalJSON encodes None as null and Named(label) as the label string, so
// Named("") and Named("all") stay distinct from None on the wire.
func (c Category) MarshalJSON() ([]byte, error) {
	if !c.set {
		return []byte("null"), nil
	}
	return json.Marshal(c.name)
}

func (c *Category) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*c = NoCategory()
		return nil
	}
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	*c = Named(name)
	return nil
}

// TagSet has set semantics; insertion order is irrelevant.
// The zero value (nil) is an empty set.
type TagSet map[string]struct{}

func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

func (s TagSet) Len() int { return len(s) }

// With returns a copy of s with tag added.
func (s TagSet) With(tag string) TagSet {
	out := s.Clone()
	out[tag] = struct{}{}
	return out
}

// Without returns a copy of s with tag removed.
func (s TagSet) Without(tag string) TagSet {
	out := s.Clone()
	delete(out, tag)
	return out
}

// Toggle returns a copy of s with tag flipped.
func (s TagSet) Toggle(tag string) TagSet {
	if s.Has(tag) {
		return s.Without(tag)
	}
	return s.With(tag)
}

func (s TagSet) Clone() TagSet {
	out := make(TagSet, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}

// Intersects reports whether s and other share at least one tag.
func (s TagSet) Intersects(other TagSet) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for t := range small {
		if big.Has(t) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every tag of other is in s.
func (s TagSet) ContainsAll(other TagSet) bool {
	for t := range other {
		if !s.Has(t) {
			return false
		}
	}
	return true
}

func (s TagSet) Equal(other TagSet) bool {
	return len(s) == len(other) && s.ContainsAll(other)
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Tags are serialized as a sorted list so output is stable.
func (s TagSet) MarshalJSON() ([]byte, error) {
	return marshalStrings(s.Sorted())
}

func (s *TagSet) UnmarshalJSON(b []byte) error {
	xs, err := unmarshalStrings(b)
	if err != nil {
		return err
	}
	*s = NewTagSet(xs...)
	return nil
}

func (s TagSet) MarshalYAML() (any, error) {
	return s.Sorted(), nil
}

func (s *TagSet) UnmarshalYAML(unmarshal func(any) error) error {
	var xs []string
	if err := unmarshal(&xs); err != nil {
		return err
	}
	*s = NewTagSet(xs...)
	return nil
}
