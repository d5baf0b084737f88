package ui

import (
	"context"
	"errors"

	"frontend/logger"
	"frontend/sequence"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// TypeAnimation types the texts of a script in a span.
type TypeAnimation struct {
	app.Compo
	Script sequence.Script
	Cursor bool
	Class  string

	frame   sequence.Frame
	playing bool
}

func (t *TypeAnimation) OnMount(ctx app.Context) {
	if app.IsServer {
		return
	}
	if err := t.Script.Validate(); err != nil {
		logger.Warn("TypeAnimation: %v", err)
		return
	}

	// The player runs for the lifetime of the mount; ctx is cancelled on
	// dismount.
	script := t.Script
	go func() {
		p := &sequence.Player{}
		err := p.Run(ctx, script, func(f sequence.Frame) {
			ctx.Dispatch(func(ctx app.Context) {
				t.frame = f
				t.playing = true
				t.Update()
			})
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("TypeAnimation: %v", err)
		}
	}()
}

func (t *TypeAnimation) OnDismount() {
	t.playing = false
}

// text is what the span shows before the first frame arrives.
func (t *TypeAnimation) text() string {
	if t.playing {
		return t.frame.Visible
	}
	return t.Script.At(0).Visible
}

func (t *TypeAnimation) Render() app.UI {
	return app.Span().Class(t.Class).Body(
		app.Text(t.text()),
		app.If(t.Cursor,
			app.Span().Class("type-cursor").Text("|"),
		),
	)
}
