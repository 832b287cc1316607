package filter

import (
	"fmt"
	"strings"

	"sharapu/internal/model"
	"sharapu/internal/selection"
)

// Explain reports whether it passes sel and why.
//
// The reason names the first failing dimension, or every active dimension that
// passed when the item is included.
func Explain(it model.ContentItem, sel selection.State, opts ...Option) (bool, string) {
	o := buildOptions(opts)

	var passed []string

	if name, ok := sel.Category.Name(); ok {
		if !categoryMatches(it, sel.Category) {
			if it.Category == "" {
				return false, fmt.Sprintf("category filter: item has no category (want %q)", name)
			}
			return false, fmt.Sprintf("category filter: %q != %q", it.Category, name)
		}
		passed = append(passed, fmt.Sprintf("category filter: matched %q", name))
	}

	if sel.Tags.Len() > 0 {
		want := sel.Tags.Sorted()
		if !tagsMatch(it.Tags, sel.Tags, o.tagPolicy) {
			return false, fmt.Sprintf("tag filter (%s): no match for %v (item tags: %v)", o.tagPolicy, want, it.Tags.Sorted())
		}
		var hit []string
		for _, t := range want {
			if it.Tags.Has(t) {
				hit = append(hit, t)
			}
		}
		passed = append(passed, fmt.Sprintf("tag filter (%s): matched %v", o.tagPolicy, hit))
	}

	if sel.Query != "" {
		field := queryField(it, strings.ToLower(sel.Query))
		if field == "" {
			return false, fmt.Sprintf("query filter: %q not found in title, summary or body", sel.Query)
		}
		passed = append(passed, fmt.Sprintf("query filter: %q found in %s", sel.Query, field))
	}

	if len(passed) == 0 {
		return true, "no filters specified, default include"
	}
	return true, "passed all filters: " + strings.Join(passed, " AND ")
}

func queryField(it model.ContentItem, needle string) string {
	fields := []struct {
		name  string
		value string
	}{
		{"title", it.Title},
		{"summary", it.Summary},
		{"body", it.Body},
	}
	for _, f := range fields {
		if f.value != "" && strings.Contains(strings.ToLower(f.value), needle) {
			return f.name
		}
	}
	return ""
}
