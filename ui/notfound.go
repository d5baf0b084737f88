package ui

import (
	"frontend/logger"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// NotFound is shown for every path outside the route table.
type NotFound struct {
	app.Compo
	Path string
}

func (p *NotFound) OnNav(ctx app.Context) {
	p.Path = ctx.Page().URL().Path
	logger.Warn("NotFound: no route for %s", p.Path)
}

func (p *NotFound) Render() app.UI {
	return app.Div().Class("screen not-found").Body(
		app.H1().Text("Not Found"),
		app.If(p.Path != "",
			app.P().Text("Nothing lives at "+p.Path),
		),
		app.A().Href("/").Text("Back to home"),
	)
}
