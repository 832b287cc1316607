package cli

import (
	"reflect"
	"testing"

	"sharapu/internal/filter"
)

func TestExpandTagPatterns(t *testing.T) {
	t.Parallel()

	known := []string{"design", "hiring", "parenting", "payments", "remote", "writing"}
	tests := []struct {
		name      string
		in        []string
		want      []string
		unmatched []string
	}{
		{name: "none", in: nil, want: []string{}},
		{name: "literal", in: []string{"remote"}, want: []string{"remote"}},
		{name: "unknown literal dropped", in: []string{"cooking"}, want: []string{}, unmatched: []string{"cooking"}},
		{name: "mixed hit and miss", in: []string{"remote", "zz*"}, want: []string{"remote"}, unmatched: []string{"zz*"}},
		{name: "glob", in: []string{"pa*"}, want: []string{"parenting", "payments"}},
		{name: "alternatives", in: []string{"{design,writing}"}, want: []string{"design", "writing"}},
		{name: "dedup and sort", in: []string{"writing", "*ing", " "}, want: []string{"hiring", "parenting", "writing"}},
		{name: "no match", in: []string{"zz*"}, want: []string{}, unmatched: []string{"zz*"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, unmatched, err := expandTagPatterns(tt.in, known)
			if err != nil {
				t.Fatalf("expand: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("tags: got %v want %v", got, tt.want)
			}
			if !reflect.DeepEqual(unmatched, tt.unmatched) {
				t.Fatalf("unmatched: got %v want %v", unmatched, tt.unmatched)
			}
		})
	}

	if _, _, err := expandTagPatterns([]string{"[a-"}, known); err == nil {
		t.Fatalf("expected invalid pattern error")
	}
}

func TestTagsUnsatisfiable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		selected  []string
		unmatched []string
		policy    filter.TagPolicy
		want      bool
	}{
		{name: "all matched", selected: []string{"remote"}, policy: filter.MatchAny, want: false},
		{name: "no tags requested", policy: filter.MatchAll, want: false},
		{name: "every pattern missed", unmatched: []string{"zz*"}, policy: filter.MatchAny, want: true},
		{name: "any tolerates a miss", selected: []string{"remote"}, unmatched: []string{"zz*"}, policy: filter.MatchAny, want: false},
		{name: "all cannot tolerate a miss", selected: []string{"remote"}, unmatched: []string{"zz*"}, policy: filter.MatchAll, want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tagsUnsatisfiable(tt.selected, tt.unmatched, tt.policy); got != tt.want {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}
