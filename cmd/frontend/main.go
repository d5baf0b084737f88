package main

import (
	"frontend/ui"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

func main() {
	ui.Register()

	app.RunWhenOnBrowser()
}
