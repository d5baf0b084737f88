// Package route is the shell's route table. Front-ends map each Page to
// their own rendering.
package route

import "strings"

type Page int

const (
	NotFound Page = iota
	Home
	About
)

func (p Page) String() string {
	switch p {
	case Home:
		return "home"
	case About:
		return "about"
	default:
		return "not-found"
	}
}

type Route struct {
	Path string
	Page Page
}

// Table lists every navigable path.
var Table = []Route{
	{Path: "/", Page: Home},
	{Path: "/about", Page: About},
}

// Resolve returns the page for path. Paths are matched exactly after
// dropping the query, fragment and a trailing slash; anything else is
// NotFound.
func Resolve(path string) Page {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	for _, r := range Table {
		if r.Path == path {
			return r.Page
		}
	}
	return NotFound
}

// Paths lists the registered paths in table order.
func Paths() []string {
	paths := make([]string, 0, len(Table))
	for _, r := range Table {
		paths = append(paths, r.Path)
	}
	return paths
}
