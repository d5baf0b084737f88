// Package sequence plays scripted text: strings that are typed in, held for
// a while and replaced by the next one, optionally repeated forever.
//
// A Script is pure data. Script.At answers "what is on screen after t" without
// any timers, and Player walks the same timeline in real time.
package sequence

import (
	"errors"
	"fmt"
	"time"
)

type StepKind int

const (
	StepType StepKind = iota
	StepWait
	StepCall
)

func (k StepKind) String() string {
	switch k {
	case StepType:
		return "type"
	case StepWait:
		return "wait"
	case StepCall:
		return "call"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is one instruction of a Script.
type Step struct {
	Kind  StepKind
	Text  string
	Delay time.Duration
	Fn    func()
}

// Type replaces the displayed text with text.
func Type(text string) Step {
	return Step{Kind: StepType, Text: text}
}

// Wait holds the current text for d.
func Wait(d time.Duration) Step {
	return Step{Kind: StepWait, Delay: d}
}

// Call runs fn once each time the script passes this point.
func Call(fn func()) Step {
	return Step{Kind: StepCall, Fn: fn}
}

// Forever repeats a script until its player is cancelled.
const Forever = -1

type Script struct {
	Steps []Step

	// Repeat is the number of extra passes after the first one, or Forever.
	Repeat int

	// Speed is the delay between typed runes. Zero shows each text whole.
	Speed time.Duration
}

var (
	ErrEmptyScript      = errors.New("sequence: script has no text")
	ErrNegativeDuration = errors.New("sequence: negative duration")
	ErrInvalidRepeat    = errors.New("sequence: invalid repeat count")
	ErrZeroCycle        = errors.New("sequence: endless script never waits")
)

// Validate reports whether the script can be played.
func (s Script) Validate() error {
	if s.Speed < 0 {
		return fmt.Errorf("speed %v: %w", s.Speed, ErrNegativeDuration)
	}
	if s.Repeat < Forever {
		return fmt.Errorf("repeat %d: %w", s.Repeat, ErrInvalidRepeat)
	}

	typed := false
	for i, st := range s.Steps {
		switch st.Kind {
		case StepType:
			typed = true
		case StepWait:
			if st.Delay < 0 {
				return fmt.Errorf("step %d: wait %v: %w", i, st.Delay, ErrNegativeDuration)
			}
		case StepCall:
		default:
			return fmt.Errorf("step %d: unknown kind %v", i, st.Kind)
		}
	}
	if !typed {
		return ErrEmptyScript
	}
	if s.Repeat == Forever && s.Cycle() == 0 {
		return ErrZeroCycle
	}
	return nil
}
