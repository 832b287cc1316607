package cli

import (
	"fmt"
	"sort"
	"strings"

	"sharapu/internal/filter"

	"github.com/gobwas/glob"
)

// expandTagPatterns resolves --tag values against the known tags. Plain values
// and glob patterns both resolve to known tags only, so the result is always a
// subset of known. Values matching no known tag are returned in unmatched.
func expandTagPatterns(patterns []string, known []string) (tags []string, unmatched []string, err error) {
	knownSet := make(map[string]bool, len(known))
	for _, k := range known {
		knownSet[k] = true
	}
	set := map[string]struct{}{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.ContainsAny(p, "*?[{") {
			if knownSet[p] {
				set[p] = struct{}{}
			} else {
				unmatched = append(unmatched, p)
			}
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid tag pattern %q: %w", p, err)
		}
		hit := false
		for _, k := range known {
			if g.Match(k) {
				set[k] = struct{}{}
				hit = true
			}
		}
		if !hit {
			unmatched = append(unmatched, p)
		}
	}

	tags = make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags, unmatched, nil
}

// tagsUnsatisfiable reports whether a tag request can match no item at all: every
// pattern missed, or the policy needs all tags and at least one pattern missed.
// An unmatched pattern stands for a tag no item carries, so it never widens
// the result back to "no tag filter".
func tagsUnsatisfiable(selected, unmatched []string, policy filter.TagPolicy) bool {
	if len(unmatched) == 0 {
		return false
	}
	return len(selected) == 0 || policy == filter.MatchAll
}
