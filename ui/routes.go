package ui

import (
	"sync"

	"frontend/route"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// PageFor builds the component rendered for p.
func PageFor(p route.Page) app.Composer {
	switch p {
	case route.Home:
		return &Home{}
	case route.About:
		return &About{}
	default:
		return &NotFound{}
	}
}

// unmatchedPages catches every page path left over by the table. Paths
// whose last segment has an extension stay plain 404s, like a missing
// asset would.
const unmatchedPages = `^/([^/]*/)*[^./]*$`

var registerOnce sync.Once

// Register declares the route table to go-app. It must run in both the
// wasm binary and the server so pre-rendered pages match. Each path is also
// registered with a trailing slash, the way route.Resolve reads it, and any
// other page path renders NotFound so the server still sends the app shell.
func Register() {
	registerOnce.Do(func() {
		for _, r := range route.Table {
			app.Route(r.Path, PageFor(r.Page))
			if r.Path != "/" {
				app.Route(r.Path+"/", PageFor(r.Page))
			}
		}
		app.RouteWithRegexp(unmatchedPages, PageFor(route.NotFound))
		app.NotFound = PageFor(route.NotFound)
	})
}
