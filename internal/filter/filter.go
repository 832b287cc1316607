package filter

import (
	"fmt"
	"strings"

	"sharapu/internal/model"
	"sharapu/internal/selection"
)

// TagPolicy decides how a tag selection matches an item's tags.
type TagPolicy int

const (
	// MatchAny includes an item sharing at least one selected tag.
	MatchAny TagPolicy = iota
	// MatchAll includes an item carrying every selected tag.
	MatchAll
)

func (p TagPolicy) String() string {
	if p == MatchAll {
		return "all"
	}
	return "any"
}

// ParseTagPolicy accepts "any" or "all" (case-insensitive); blank means MatchAny.
func ParseTagPolicy(s string) (TagPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return MatchAny, nil
	case "all":
		return MatchAll, nil
	default:
		return MatchAny, fmt.Errorf("unknown tag match policy %q (want any|all)", s)
	}
}

type options struct {
	tagPolicy TagPolicy
}

// Option configures Apply and friends.
type Option func(*options)

func WithTagPolicy(p TagPolicy) Option {
	return func(o *options) { o.tagPolicy = p }
}

func buildOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Apply returns the items matching every active dimension of sel, in input order.
// The result is never nil.
func Apply(items []model.ContentItem, sel selection.State, opts ...Option) []model.ContentItem {
	o := buildOptions(opts)
	needle := strings.ToLower(sel.Query)
	out := make([]model.ContentItem, 0, len(items))
	for _, it := range items {
		if matches(it, sel, needle, o) {
			out = append(out, it)
		}
	}
	return out
}

// Matches reports whether a single item passes sel.
func Matches(it model.ContentItem, sel selection.State, opts ...Option) bool {
	return matches(it, sel, strings.ToLower(sel.Query), buildOptions(opts))
}

func matches(it model.ContentItem, sel selection.State, needle string, o options) bool {
	return categoryMatches(it, sel.Category) &&
		tagsMatch(it.Tags, sel.Tags, o.tagPolicy) &&
		queryMatches(it, needle)
}

func categoryMatches(it model.ContentItem, c model.Category) bool {
	name, ok := c.Name()
	if !ok {
		return true
	}
	if it.Category == "" {
		return false
	}
	return it.Category == name
}

func tagsMatch(itemTags, selected model.TagSet, p TagPolicy) bool {
	if selected.Len() == 0 {
		return true
	}
	if itemTags.Len() == 0 {
		return false
	}
	if p == MatchAll {
		return itemTags.ContainsAll(selected)
	}
	return itemTags.Intersects(selected)
}

// needle must already be lower-cased.
func queryMatches(it model.ContentItem, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range []string{it.Title, it.Summary, it.Body} {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
