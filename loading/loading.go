// Package loading holds the configuration of the "please wait" indicator
// shared by the web and terminal front-ends.
package loading

import (
	"time"

	"frontend/sequence"
)

const (
	DefaultText = "Loading ..."
	WaitText    = "Please Wait ...."

	TextHold = 1000 * time.Millisecond
	WaitHold = 2000 * time.Millisecond

	// TypeSpeed is the delay between typed runes on the web loader.
	TypeSpeed = 40 * time.Millisecond
)

// Config is the loader's only input. The zero value shows DefaultText.
type Config struct {
	text    string
	hasText bool
}

// WithText overrides the first phase text. An empty string is kept as is.
func WithText(text string) Config {
	return Config{text: text, hasText: true}
}

// Text is the first phase text.
func (c Config) Text() string {
	if !c.hasText {
		return DefaultText
	}
	return c.text
}

// Script derives the endless two-phase text cycle. onComplete runs at the
// end of every pass; nil skips it.
func (c Config) Script(speed time.Duration, onComplete func()) sequence.Script {
	steps := []sequence.Step{
		sequence.Type(c.Text()),
		sequence.Wait(TextHold),
		sequence.Type(WaitText),
		sequence.Wait(WaitHold),
	}
	if onComplete != nil {
		steps = append(steps, sequence.Call(onComplete))
	}
	return sequence.Script{
		Steps:  steps,
		Repeat: sequence.Forever,
		Speed:  speed,
	}
}
