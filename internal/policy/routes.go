package policy

import "strings"

// Route paths of the front end.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

var knownRoutes = []string{
	"/login",
	"/",
	"/players",
	"/players/:id",
	"/teams",
	"/matches",
	"/matches/new",
	"/matches/:id/analysis",
	"/analytics",
	"/settings",
	"/exports",
	"/about",
}

// ResolveRoute returns where a client asking for path should land.
// Unauthenticated clients are sent to the login page, unknown paths to home.
func ResolveRoute(path string, authenticated bool) string {
	path = normalizePath(path)
	if !authenticated {
		return LoginPath
	}
	if !IsKnownRoute(path) {
		return HomePath
	}
	return path
}

// IsKnownRoute reports whether path matches one of the front end routes.
func IsKnownRoute(path string) bool {
	path = normalizePath(path)
	for _, pattern := range knownRoutes {
		if matchRoute(pattern, path) {
			return true
		}
	}
	return false
}

func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return HomePath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

func matchRoute(pattern, path string) bool {
	ps := strings.Split(pattern, "/")
	xs := strings.Split(path, "/")
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}
