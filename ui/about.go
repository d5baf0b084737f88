package ui

import "github.com/maxence-charriere/go-app/v9/pkg/app"

type About struct {
	app.Compo
}

func (a *About) Render() app.UI {
	return app.H1().Text("About")
}
