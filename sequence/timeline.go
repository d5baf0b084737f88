package sequence

import "time"

// Phase is a text and how long it stays before the next one starts.
type Phase struct {
	Text  string
	Hold  time.Duration
	Calls []Cue
}

// Cue is a Call step positioned at an offset inside its phase.
type Cue struct {
	At time.Duration
	Fn func()
}

// Frame is what a script shows at a point in time.
type Frame struct {
	Pass    int
	Phase   int
	Text    string
	Visible string
	Done    bool
}

// Phases folds the steps into phases. Every Type step opens a phase; the
// waits after it form its hold. Waits or calls before the first Type step
// open a blank phase.
func (s Script) Phases() []Phase {
	var (
		phases []Phase
		cur    *Phase
	)
	for _, st := range s.Steps {
		if st.Kind == StepType {
			phases = append(phases, Phase{Text: st.Text})
			cur = &phases[len(phases)-1]
			continue
		}
		if cur == nil {
			phases = append(phases, Phase{})
			cur = &phases[len(phases)-1]
		}
		switch st.Kind {
		case StepWait:
			if st.Delay > 0 {
				cur.Hold += st.Delay
			}
		case StepCall:
			if st.Fn != nil {
				cur.Calls = append(cur.Calls, Cue{At: cur.Hold, Fn: st.Fn})
			}
		}
	}
	return phases
}

// Cycle is the length of one pass.
func (s Script) Cycle() time.Duration {
	var d time.Duration
	for _, p := range s.Phases() {
		d += p.Hold
	}
	return d
}

// At returns the frame shown elapsed after the script started.
func (s Script) At(elapsed time.Duration) Frame {
	phases := s.Phases()
	if len(phases) == 0 {
		return Frame{Done: true}
	}
	last := len(phases) - 1

	cycle := s.Cycle()
	if elapsed < 0 {
		elapsed = 0
	}
	if cycle == 0 {
		p := phases[last]
		return Frame{Phase: last, Text: p.Text, Visible: p.Text, Done: true}
	}

	pass := int(elapsed / cycle)
	if s.Repeat != Forever && pass > s.Repeat {
		p := phases[last]
		return Frame{
			Pass:    s.Repeat,
			Phase:   last,
			Text:    p.Text,
			Visible: s.typed(previousText(phases, last, s.Repeat), p.Text, p.Hold, p.Hold),
			Done:    true,
		}
	}

	offset := elapsed % cycle
	for i, p := range phases {
		if offset < p.Hold || i == last {
			return Frame{
				Pass:    pass,
				Phase:   i,
				Text:    p.Text,
				Visible: s.typed(previousText(phases, i, pass), p.Text, offset, p.Hold),
			}
		}
		offset -= p.Hold
	}
	return Frame{Done: true}
}

// typed is the part of text visible offset into its phase. Typing resumes
// from the prefix shared with the previous text.
func (s Script) typed(prev, text string, offset, hold time.Duration) string {
	runes := []rune(text)
	base := commonPrefix(prev, text)
	delay := s.runeDelay(len(runes)-base, hold)
	if delay <= 0 {
		return text
	}
	n := base + int(offset/delay)
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n])
}

// runeDelay is the delay between typed runes for a phase that types n runes
// inside hold. It is Speed, shortened so the text is complete by half the hold.
func (s Script) runeDelay(n int, hold time.Duration) time.Duration {
	if s.Speed <= 0 || n <= 0 {
		return 0
	}
	if limit := hold / 2 / time.Duration(n); limit < s.Speed {
		return limit
	}
	return s.Speed
}

func previousText(phases []Phase, i, pass int) string {
	switch {
	case i > 0:
		return phases[i-1].Text
	case pass > 0:
		return phases[len(phases)-1].Text
	default:
		return ""
	}
}

// commonPrefix counts the runes a and b share at their start.
func commonPrefix(a, b string) int {
	ar, br := []rune(a), []rune(b)
	n := 0
	for n < len(ar) && n < len(br) && ar[n] == br[n] {
		n++
	}
	return n
}
