package filter

import (
	"testing"

	"sharapu/internal/model"
	"sharapu/internal/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleItems() []model.ContentItem {
	return []model.ContentItem{
		{ID: "1", Category: "A", Tags: model.NewTagSet("x"), Title: "Hello"},
		{ID: "2", Category: "B", Tags: model.NewTagSet("y"), Title: "World"},
	}
}

func corpus() []model.ContentItem {
	return []model.ContentItem{
		{ID: "1", Category: "For those looking for work", Tags: model.NewTagSet("remote", "writing"), Title: "From office clerk to freelance writer", Body: "She now writes from home."},
		{ID: "2", Category: "Beginner's Guide", Tags: model.NewTagSet("remote", "setup"), Title: "Your first week", Summary: "Setting up a desk at HOME"},
		{ID: "3", Category: "SharApu NEWS", Tags: nil, Title: "Platform update"},
		{ID: "4", Category: "", Tags: model.NewTagSet("writing"), Title: "Untitled draft", Body: "writing tips"},
		{ID: "5", Category: "For those looking for work", Tags: model.NewTagSet("design"), Title: "Designing at night"},
		{ID: "6", Category: "Beginner's Guide", Tags: model.NewTagSet("remote", "writing", "setup"), Title: "Remote writing setup"},
	}
}

func ids(items []model.ContentItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestApply_WorkedExample(t *testing.T) {
	t.Parallel()

	items := exampleItems()

	tests := []struct {
		name   string
		sel    selection.State
		policy TagPolicy
		want   []string
	}{
		{name: "category A", sel: selection.Empty().SelectCategory("A"), want: []string{"1"}},
		{name: "query wor", sel: selection.Empty().SetQuery("wor"), want: []string{"2"}},
		{name: "tags x,y match-any", sel: selection.Empty().SelectTags(model.NewTagSet("x", "y")), policy: MatchAny, want: []string{"1", "2"}},
		{name: "tags x,y match-all", sel: selection.Empty().SelectTags(model.NewTagSet("x", "y")), policy: MatchAll, want: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Apply(items, tt.sel, WithTagPolicy(tt.policy))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_IdentityWhenEmpty(t *testing.T) {
	t.Parallel()

	items := corpus()
	assert.Equal(t, items, Apply(items, selection.Empty()))
	assert.Equal(t, items, Apply(items, selection.Empty(), WithTagPolicy(MatchAll)))
}

func TestApply_EmptySource(t *testing.T) {
	t.Parallel()

	got := Apply(nil, selection.Empty().SetQuery("anything"))
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = Apply([]model.ContentItem{}, selection.Empty())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_CategoryOnly(t *testing.T) {
	t.Parallel()

	items := corpus()
	cats, _ := Facets(items)
	require.NotEmpty(t, cats)

	for _, c := range cats {
		got := Apply(items, selection.Empty().SelectCategory(c))
		assert.NotEmpty(t, got, "category %q present in items must yield results", c)
		for _, it := range got {
			assert.Equal(t, c, it.Category)
		}
	}
}

func TestApply_MissingFieldsNeverMatch(t *testing.T) {
	t.Parallel()

	items := corpus()

	// Item 4 has no category, so a named "" category must not pick it up.
	got := Apply(items, selection.State{Category: model.Named("")})
	assert.Empty(t, got)

	// Item 3 has no tags.
	got = Apply(items, selection.Empty().SelectTags(model.NewTagSet("remote", "writing", "setup", "design")))
	assert.NotContains(t, ids(got), "3")
}

func TestApply_TagPolicies(t *testing.T) {
	t.Parallel()

	items := corpus()
	sel := selection.Empty().SelectTags(model.NewTagSet("remote", "writing"))

	assert.Equal(t, []string{"1", "2", "4", "6"}, ids(Apply(items, sel)), "default is match-any")
	assert.Equal(t, []string{"1", "2", "4", "6"}, ids(Apply(items, sel, WithTagPolicy(MatchAny))))
	assert.Equal(t, []string{"1", "6"}, ids(Apply(items, sel, WithTagPolicy(MatchAll))))
}

func TestApply_QueryCaseInsensitiveAcrossFields(t *testing.T) {
	t.Parallel()

	items := corpus()

	assert.Equal(t, []string{"1", "2"}, ids(Apply(items, selection.Empty().SetQuery("HoMe"))), "body and summary are searched")
	assert.Equal(t, []string{"6"}, ids(Apply(items, selection.Empty().SetQuery("remote WRITING"))))
	assert.Empty(t, Apply(items, selection.Empty().SetQuery(" remote writing ")), "query is not trimmed")
}

func TestApply_DimensionsAreANDed(t *testing.T) {
	t.Parallel()

	items := corpus()
	sel := selection.Empty().
		SelectCategory("Beginner's Guide").
		SelectTags(model.NewTagSet("writing")).
		SetQuery("setup")

	assert.Equal(t, []string{"6"}, ids(Apply(items, sel)))
}

func TestApply_IdempotentAndOrderPreserving(t *testing.T) {
	t.Parallel()

	items := corpus()
	states := []selection.State{
		selection.Empty(),
		selection.Empty().SelectCategory("For those looking for work"),
		selection.Empty().SelectTags(model.NewTagSet("remote")),
		selection.Empty().SetQuery("e"),
		selection.Empty().SelectCategory("Beginner's Guide").SetQuery("setup"),
	}

	for _, s := range states {
		for _, p := range []TagPolicy{MatchAny, MatchAll} {
			once := Apply(items, s, WithTagPolicy(p))
			twice := Apply(once, s, WithTagPolicy(p))
			assert.Equal(t, once, twice)

			// Subsequence check: indices in the source strictly increase.
			last := -1
			for _, it := range once {
				idx := -1
				for i := range items {
					if items[i].ID == it.ID {
						idx = i
						break
					}
				}
				require.Greater(t, idx, last, "result must keep source order")
				last = idx
			}
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	items := corpus()
	before := ids(items)
	_ = Apply(items, selection.Empty().SetQuery("x"))
	assert.Equal(t, before, ids(items))
}

func TestParseTagPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    TagPolicy
		wantErr bool
	}{
		{in: "", want: MatchAny},
		{in: "any", want: MatchAny},
		{in: " ALL ", want: MatchAll},
		{in: "some", want: MatchAny, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseTagPolicy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	it := exampleItems()[0]
	assert.True(t, Matches(it, selection.Empty().SetQuery("HELL")))
	assert.False(t, Matches(it, selection.Empty().SelectCategory("B")))
}
