package sequence

import (
	"context"
	"sort"
	"time"
)

// Player walks a Script in real time.
type Player struct {
	// After replaces time.After. Tests use it to skip the waits.
	After func(time.Duration) <-chan time.Time
}

// event is either a typed rune (typed > 0) or a cue.
type event struct {
	at    time.Duration
	typed int
	fn    func()
}

// Run plays s and calls render each time the visible text changes. It
// returns nil once a finite script has played all its passes, or the
// context error when ctx is cancelled. render is never called after
// cancellation.
func (p *Player) Run(ctx context.Context, s Script, render func(Frame)) error {
	if err := s.Validate(); err != nil {
		return err
	}

	phases := s.Phases()
	prev := ""
	for pass := 0; s.Repeat == Forever || pass <= s.Repeat; pass++ {
		for i, ph := range phases {
			f := Frame{Pass: pass, Phase: i, Text: ph.Text}
			if err := p.play(ctx, s, prev, f, ph, render); err != nil {
				return err
			}
			prev = ph.Text
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	i := len(phases) - 1
	render(Frame{
		Pass:    s.Repeat,
		Phase:   i,
		Text:    phases[i].Text,
		Visible: s.typed(previousText(phases, i, s.Repeat), phases[i].Text, phases[i].Hold, phases[i].Hold),
		Done:    true,
	})
	return nil
}

func (p *Player) play(ctx context.Context, s Script, prev string, f Frame, ph Phase, render func(Frame)) error {
	runes := []rune(ph.Text)
	typed := len(runes)
	base := commonPrefix(prev, ph.Text)
	var events []event
	if delay := s.runeDelay(len(runes)-base, ph.Hold); delay > 0 {
		typed = base
		for n := base + 1; n <= len(runes); n++ {
			events = append(events, event{at: time.Duration(n-base) * delay, typed: n})
		}
	}
	for _, c := range ph.Calls {
		events = append(events, event{at: c.At, fn: c.Fn})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].at < events[j].at })

	if err := ctx.Err(); err != nil {
		return err
	}
	f.Visible = string(runes[:typed])
	render(f)

	var now time.Duration
	for _, ev := range events {
		if err := p.sleep(ctx, ev.at-now); err != nil {
			return err
		}
		now = ev.at
		if ev.fn != nil {
			ev.fn()
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		f.Visible = string(runes[:ev.typed])
		render(f)
	}
	return p.sleep(ctx, ph.Hold-now)
}

func (p *Player) sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	after := p.After
	if after == nil {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
		case <-t.C:
		}
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
	case <-after(d):
	}
	return ctx.Err()
}
