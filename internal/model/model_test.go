package model

import (
	"encoding/json"
	"testing"
)

func TestCategory_NoneVsNamedEmpty(t *testing.T) {
	t.Parallel()

	if NoCategory().IsSet() {
		t.Fatalf("expected NoCategory to be unset")
	}
	if !Named("").IsSet() {
		t.Fatalf("expected Named(\"\") to be set")
	}
	if ParseCategory("  ").IsSet() {
		t.Fatalf("expected blank input to parse as NoCategory")
	}
	if got := ParseCategory("Beginner's Guide"); !got.Is("Beginner's Guide") {
		t.Fatalf("ParseCategory: got %v", got)
	}
	if got := NoCategory().String(); got != "all" {
		t.Fatalf("NoCategory().String() = %q, want %q", got, "all")
	}
}

func TestTagSet_Ops(t *testing.T) {
	t.Parallel()

	s := NewTagSet("x", "y")
	if !s.Intersects(NewTagSet("y", "z")) {
		t.Fatalf("expected intersection")
	}
	if s.Intersects(NewTagSet("z")) {
		t.Fatalf("expected no intersection")
	}
	if !s.ContainsAll(NewTagSet("x")) || s.ContainsAll(NewTagSet("x", "z")) {
		t.Fatalf("ContainsAll mismatch")
	}

	toggled := s.Toggle("x")
	if toggled.Has("x") || !s.Has("x") {
		t.Fatalf("Toggle must copy; got toggled=%v original=%v", toggled.Sorted(), s.Sorted())
	}
	if !TagSet(nil).Equal(NewTagSet()) {
		t.Fatalf("nil and empty sets should be equal")
	}
}

func TestContentItem_JSONTagsSorted(t *testing.T) {
	t.Parallel()

	it := ContentItem{ID: "item-a", Title: "Hello", Tags: NewTagSet("y", "x")}
	b, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"item-a","title":"Hello","tags":["x","y"]}`
	if string(b) != want {
		t.Fatalf("marshal:\n got: %s\nwant: %s", b, want)
	}

	var back ContentItem
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Tags.Equal(it.Tags) {
		t.Fatalf("tags: got %v want %v", back.Tags.Sorted(), it.Tags.Sorted())
	}
}

func TestCategory_JSONKeepsNoneDistinct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Category
		want string
	}{
		{name: "none", in: NoCategory(), want: `null`},
		{name: "named empty", in: Named(""), want: `""`},
		{name: "named all", in: Named("all"), want: `"all"`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Fatalf("marshal: got %s want %s", b, tt.want)
			}
			var back Category
			if err := json.Unmarshal(b, &back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if back != tt.in {
				t.Fatalf("round trip: got %#v want %#v", back, tt.in)
			}
		})
	}
}
