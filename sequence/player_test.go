package sequence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// instantClock fires every wait at once and remembers how long it was asked to wait.
type instantClock struct {
	waits []time.Duration
}

func (c *instantClock) after(d time.Duration) <-chan time.Time {
	c.waits = append(c.waits, d)
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func TestPlayer_CyclesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := &instantClock{}
	p := &Player{After: clock.after}

	var shown []string
	err := p.Run(ctx, twoPhase("first"), func(f Frame) {
		shown = append(shown, f.Visible)
		if len(shown) == 5 {
			cancel()
		}
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, []string{"first", "second", "first", "second", "first"}, shown)
	require.GreaterOrEqual(t, len(clock.waits), 4)
	require.Equal(t, []time.Duration{time.Second, 2 * time.Second, time.Second, 2 * time.Second}, clock.waits[:4])
}

func TestPlayer_CallsAfterEachPass(t *testing.T) {
	clock := &instantClock{}
	p := &Player{After: clock.after}

	var log []string
	s := Script{
		Steps: []Step{
			Type("a"),
			Wait(10 * time.Millisecond),
			Type("b"),
			Wait(20 * time.Millisecond),
			Call(func() { log = append(log, "done") }),
		},
		Repeat: 2,
	}

	var frames []Frame
	err := p.Run(context.Background(), s, func(f Frame) {
		frames = append(frames, f)
		log = append(log, f.Visible)
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "done", "a", "b", "done", "a", "b", "done", "b"}, log)

	last := frames[len(frames)-1]
	require.True(t, last.Done)
	require.Equal(t, 2, last.Pass)
}

func TestPlayer_TypesRuneByRune(t *testing.T) {
	clock := &instantClock{}
	p := &Player{After: clock.after}

	s := Script{
		Steps: []Step{Type("héllo"), Wait(time.Second)},
		Speed: 100 * time.Millisecond,
	}

	var shown []string
	require.NoError(t, p.Run(context.Background(), s, func(f Frame) {
		if !f.Done {
			shown = append(shown, f.Visible)
		}
	}))
	require.Equal(t, []string{"", "h", "hé", "hél", "héll", "héllo"}, shown)

	// Five rune steps then the rest of the hold.
	require.Equal(t, []time.Duration{
		100 * time.Millisecond,
		100 * time.Millisecond,
		100 * time.Millisecond,
		100 * time.Millisecond,
		100 * time.Millisecond,
		500 * time.Millisecond,
	}, clock.waits)
}

func TestPlayer_TypingFitsInHold(t *testing.T) {
	clock := &instantClock{}
	p := &Player{After: clock.after}

	s := Script{
		Steps: []Step{Type("abcdef"), Wait(240 * time.Millisecond)},
		Speed: 100 * time.Millisecond,
	}

	var shown []string
	var last Frame
	require.NoError(t, p.Run(context.Background(), s, func(f Frame) {
		last = f
		if !f.Done {
			shown = append(shown, f.Visible)
		}
	}))
	require.Equal(t, []string{"", "a", "ab", "abc", "abcd", "abcde", "abcdef"}, shown)
	require.True(t, last.Done)
	require.Equal(t, "abcdef", last.Visible)
	require.Equal(t, s.At(time.Hour).Visible, last.Visible)

	// Six runes squeezed into the first half of the hold, then the rest.
	var total time.Duration
	for _, w := range clock.waits[:6] {
		require.Equal(t, 20*time.Millisecond, w)
		total += w
	}
	require.Equal(t, 120*time.Millisecond, clock.waits[6])
	require.Equal(t, 240*time.Millisecond, total+clock.waits[6])
}

func TestPlayer_LongTextShownInFull(t *testing.T) {
	const text = "Fetching your account data, please hold on a moment"
	clock := &instantClock{}
	p := &Player{After: clock.after}

	s := Script{
		Steps:  []Step{Type(text), Wait(time.Second), Type("Please Wait ...."), Wait(2 * time.Second)},
		Repeat: 1,
		Speed:  40 * time.Millisecond,
	}

	longest := map[int]string{}
	require.NoError(t, p.Run(context.Background(), s, func(f Frame) {
		if !f.Done && f.Phase == 0 && len(f.Visible) > len(longest[f.Pass]) {
			longest[f.Pass] = f.Visible
		}
	}))
	require.Equal(t, text, longest[0])
	require.Equal(t, text, longest[1])
}

func TestPlayer_RejectsInvalidScript(t *testing.T) {
	p := &Player{}
	err := p.Run(context.Background(), Script{}, func(Frame) {
		t.Fatal("render called for invalid script")
	})
	require.ErrorIs(t, err, ErrEmptyScript)
}

func TestPlayer_RealTimers(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	s := Script{
		Steps: []Step{Type("a"), Wait(5 * time.Millisecond), Type("b"), Wait(5 * time.Millisecond)},
	}
	var shown []string
	require.NoError(t, (&Player{}).Run(ctx, s, func(f Frame) { shown = append(shown, f.Visible) }))
	require.Equal(t, []string{"a", "b", "b"}, shown)
}
