package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_StartsAtInterview(t *testing.T) {
	t.Parallel()

	r := NewRouter("")
	assert.Equal(t, PathInterview, r.Current().Path)
	assert.True(t, r.IsActive(PathInterview))
}

func TestRouter_NavigateKeepsOnlyCurrent(t *testing.T) {
	t.Parallel()

	r := NewRouter(PathInterview)
	var seen []Location
	r.OnChange(func(l Location) { seen = append(seen, l) })

	r.NavigateTo("blog/", nil)
	r.NavigateTo(PathPostJob, map[string]any{"from": "hirerProfile"})

	cur := r.Current()
	assert.Equal(t, PathPostJob, cur.Path)
	assert.Equal(t, "hirerProfile", cur.State["from"])
	assert.False(t, r.IsActive(PathBlog))

	require.Len(t, seen, 2)
	assert.Equal(t, PathBlog, seen[0].Path)
}

func TestRouter_StateIsCopied(t *testing.T) {
	t.Parallel()

	r := NewRouter("")
	st := map[string]any{"from": "a"}
	r.NavigateTo(PathPostJob, st)
	st["from"] = "b"

	got := r.Current()
	assert.Equal(t, "a", got.State["from"])
	got.State["from"] = "c"
	assert.Equal(t, "a", r.Current().State["from"])
}

func TestHirerRoutes(t *testing.T) {
	t.Parallel()

	routes := HirerRoutes()
	require.Len(t, routes, 5)
	assert.Equal(t, "Home", routes[0].Label)
	assert.Equal(t, PathPostJob, routes[1].Path)
	assert.Equal(t, "hirerProfile", routes[1].State["from"])

	assert.Equal(t, "Worker List", Title(PathWorkerList))
	assert.Equal(t, "SharApu Blog", Title(PathBlog))
	assert.Equal(t, "/unknown", Title("/unknown"))
}
