package ui

import (
	"sync/atomic"

	"frontend/loading"
	"frontend/logger"
	"frontend/sequence"
	"frontend/web"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// Loader shows a looping animation above the "please wait" text cycle.
// The zero value uses the default text.
type Loader struct {
	app.Compo
	Config loading.Config

	completed atomic.Bool
}

func (l *Loader) OnMount(ctx app.Context) {
	l.completed.Store(false)
}

// sequenceCompleted logs the first completed cycle of each mount.
func (l *Loader) sequenceCompleted() {
	if l.completed.CompareAndSwap(false, true) {
		logger.Info("Sequence completed")
	}
}

func (l *Loader) script() sequence.Script {
	return l.Config.Script(loading.TypeSpeed, l.sequenceCompleted)
}

func (l *Loader) Render() app.UI {
	return app.Div().Class("loader").Body(
		&Lottie{
			Src:  web.AnimationPath,
			Loop: true,
		},
		&TypeAnimation{
			Script: l.script(),
			Cursor: true,
			Class:  "loader-text",
		},
	)
}
