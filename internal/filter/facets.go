package filter

import (
	"sharapu/internal/model"
	"sharapu/internal/selection"
)

// Facets lists the distinct categories (first-seen order) and tags (sorted)
// present in items. Blank categories are skipped.
func Facets(items []model.ContentItem) (categories []string, tags []string) {
	seenCat := map[string]bool{}
	all := model.TagSet{}
	for _, it := range items {
		if it.Category != "" && !seenCat[it.Category] {
			seenCat[it.Category] = true
			categories = append(categories, it.Category)
		}
		for t := range it.Tags {
			all[t] = struct{}{}
		}
	}
	return categories, all.Sorted()
}

// Counts returns, for each label, how many items would match if that category
// were selected with the rest of sel unchanged.
func Counts(items []model.ContentItem, labels []string, sel selection.State, opts ...Option) map[string]int {
	out := make(map[string]int, len(labels))
	for _, label := range labels {
		withLabel := sel
		withLabel.Category = model.Named(label)
		out[label] = len(Apply(items, withLabel, opts...))
	}
	return out
}
