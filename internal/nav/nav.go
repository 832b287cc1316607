// Package nav is the routing collaborator: callers navigate by path and forget.
package nav

import (
	"strings"
	"sync"
)

// Paths known to the shell. Anything else renders a placeholder page.
const (
	PathInterview      = "/interview"
	PathBlog           = "/blog"
	PathHirerProfile   = "/hirer-profile"
	PathPostJob        = "/post-job"
	PathJobManagement  = "/job-management"
	PathWorkerList     = "/worker-list"
	PathPaymentHistory = "/payment-history"
)

// Navigator moves the shell to another page. No return value, no history.
type Navigator interface {
	NavigateTo(path string, state map[string]any)
}

// Location is where the shell currently is.
type Location struct {
	Path  string
	State map[string]any
}

// Route is an entry of the hirer navigation menu.
type Route struct {
	Label string
	Path  string
	State map[string]any
}

// HirerRoutes is the drawer menu, in display order.
func HirerRoutes() []Route {
	return []Route{
		{Label: "Home", Path: PathHirerProfile},
		{Label: "Post a Job", Path: PathPostJob, State: map[string]any{"from": "hirerProfile"}},
		{Label: "Job Management", Path: PathJobManagement},
		{Label: "Worker List", Path: PathWorkerList},
		{Label: "Payment History", Path: PathPaymentHistory},
	}
}

// Title returns a display title for a path.
func Title(path string) string {
	switch path {
	case PathInterview:
		return "SharApu Interviews"
	case PathBlog:
		return "SharApu Blog"
	}
	for _, r := range HirerRoutes() {
		if r.Path == path {
			return r.Label
		}
	}
	return path
}

// Router keeps only the current location. It is safe for concurrent use.
type Router struct {
	mu       sync.RWMutex
	current  Location
	onChange func(Location)
}

var _ Navigator = (*Router)(nil)

// NewRouter starts at start (PathInterview when blank).
func NewRouter(start string) *Router {
	return &Router{current: Location{Path: normalize(start, PathInterview)}}
}

// OnChange registers a listener called after each navigation.
func (r *Router) OnChange(fn func(Location)) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

func (r *Router) NavigateTo(path string, state map[string]any) {
	loc := Location{Path: normalize(path, PathInterview), State: copyState(state)}
	r.mu.Lock()
	r.current = loc
	fn := r.onChange
	r.mu.Unlock()
	if fn != nil {
		fn(loc)
	}
}

func (r *Router) Current() Location {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Location{Path: r.current.Path, State: copyState(r.current.State)}
}

// IsActive reports whether path is the current location.
func (r *Router) IsActive(path string) bool {
	return r.Current().Path == normalize(path, "")
}

func normalize(path, fallback string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return fallback
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

func copyState(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
