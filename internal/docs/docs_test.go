package docs

import (
	"reflect"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	t.Parallel()

	got := Topics()
	want := []string{"content", "filtering", "keys"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Topics:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	body, ok := Get(" Filtering ")
	if !ok || !strings.Contains(body, "# Filtering") {
		t.Fatalf("expected filtering topic, ok=%v body=%q", ok, body)
	}
	for _, bad := range []string{"", "missing", "../docs", `content\keys`} {
		if _, ok := Get(bad); ok {
			t.Fatalf("expected Get(%q) to fail", bad)
		}
	}
}
