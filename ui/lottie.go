package ui

import (
	"frontend/logger"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// Lottie plays a lottie-web animation. The lottie global must be loaded by
// the page (see the server's Handler scripts).
type Lottie struct {
	app.Compo
	Src  string
	Loop bool

	anim app.Value
}

func (l *Lottie) OnMount(ctx app.Context) {
	if app.IsServer {
		return
	}

	lottie := app.Window().Get("lottie")
	if !lottie.Truthy() {
		logger.Warn("Lottie: lottie-web is not loaded, skipping %s", l.Src)
		return
	}

	opts := app.Window().Get("Object").New()
	opts.Set("container", l.JSValue())
	opts.Set("renderer", "svg")
	opts.Set("loop", l.Loop)
	opts.Set("autoplay", true)
	opts.Set("path", l.Src)
	l.anim = lottie.Call("loadAnimation", opts)
}

func (l *Lottie) OnDismount() {
	if l.anim != nil && l.anim.Truthy() {
		l.anim.Call("destroy")
	}
	l.anim = nil
}

func (l *Lottie) Render() app.UI {
	return app.Div().Class("loader-animation")
}
