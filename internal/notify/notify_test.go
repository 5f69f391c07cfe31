package notify

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/session"
	"pomodoro/internal/core/timekeeper"
)

type countingNotifier struct {
	cues []timekeeper.Cue
}

func (notifier *countingNotifier) Notify(cue timekeeper.Cue, _ timekeeper.Completion) {
	notifier.cues = append(notifier.cues, cue)
}

type fakePlayer struct {
	plays   int
	samples int
	err     error
}

func (player *fakePlayer) Play(streamer beep.Streamer) error {
	if player.err != nil {
		return player.err
	}
	player.plays++
	buffer := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buffer)
		player.samples += n
		if !ok {
			break
		}
	}
	return nil
}

var focusEnd = timekeeper.Completion{
	SessionID: "abc",
	Finished:  session.PhaseFocusing,
	Next:      session.PhaseOnBreak,
	At:        time.Unix(0, 0),
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMultiFansOutAndSkipsNil(t *testing.T) {
	first := &countingNotifier{}
	second := &countingNotifier{}

	notifier := Multi(first, nil, second)
	notifier.Notify(timekeeper.CuePhaseTransition, focusEnd)
	notifier.Notify(timekeeper.CueProgressComplete, focusEnd)

	want := []timekeeper.Cue{timekeeper.CuePhaseTransition, timekeeper.CueProgressComplete}
	assert.Equal(t, want, first.cues)
	assert.Equal(t, want, second.cues)
}

func TestOnlyFiltersCues(t *testing.T) {
	tests := []struct {
		mode CueMode
		want []timekeeper.Cue
	}{
		{CueModeBoth, []timekeeper.Cue{timekeeper.CuePhaseTransition, timekeeper.CueProgressComplete}},
		{CueModeTransition, []timekeeper.Cue{timekeeper.CuePhaseTransition}},
		{CueModeProgress, []timekeeper.Cue{timekeeper.CueProgressComplete}},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			target := &countingNotifier{}
			notifier := Only(target, tt.mode.Cues()...)
			notifier.Notify(timekeeper.CuePhaseTransition, focusEnd)
			notifier.Notify(timekeeper.CueProgressComplete, focusEnd)
			assert.Equal(t, tt.want, target.cues)
		})
	}

	Only(nil, timekeeper.CuePhaseTransition).Notify(timekeeper.CuePhaseTransition, focusEnd)
}

func TestParseCueMode(t *testing.T) {
	mode, ok := ParseCueMode(" Transition ")
	require.True(t, ok)
	assert.Equal(t, CueModeTransition, mode)

	_, ok = ParseCueMode("never")
	assert.False(t, ok)
}

func TestMessage(t *testing.T) {
	title, body := Message(timekeeper.CuePhaseTransition, focusEnd)
	assert.Equal(t, "On Break started", title)
	assert.Equal(t, "Focusing finished. On Break starts now.", body)

	title, body = Message(timekeeper.CueProgressComplete, focusEnd)
	assert.Equal(t, "Focusing complete", title)
	assert.Equal(t, "Focusing time is up. On Break is next.", body)
}

func TestToneLength(t *testing.T) {
	sampleRate := beep.SampleRate(8000)
	streamer := Tone(sampleRate, 440, 250*time.Millisecond)

	buffer := make([][2]float64, 300)
	total := 0
	for {
		n, ok := streamer.Stream(buffer)
		for _, sample := range buffer[:n] {
			require.LessOrEqual(t, sample[0], 1.0)
			require.GreaterOrEqual(t, sample[0], -1.0)
			require.Equal(t, sample[0], sample[1])
		}
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, 2000, total)
}

func TestChime(t *testing.T) {
	player := &fakePlayer{}
	chime := NewChimeWithPlayer(ChimeSettings{Enabled: false}, player, quietLogger())

	chime.Notify(timekeeper.CuePhaseTransition, focusEnd)
	assert.Zero(t, player.plays)

	chime.UpdateSettings(ChimeSettings{Enabled: true, Volume: -1})
	chime.Notify(timekeeper.CuePhaseTransition, focusEnd)
	assert.Equal(t, 1, player.plays)
	assert.Equal(t, chimeSampleRate.N(chimeLength), player.samples)
}

func TestChimePlayerFailureIsNotFatal(t *testing.T) {
	player := &fakePlayer{err: errors.New("no audio device")}
	chime := NewChimeWithPlayer(ChimeSettings{Enabled: true}, player, quietLogger())

	chime.Notify(timekeeper.CuePhaseTransition, focusEnd)
	chime.Notify(timekeeper.CueProgressComplete, focusEnd)
	assert.Zero(t, player.plays)
}

func TestSwappable(t *testing.T) {
	var swappable Swappable
	swappable.Notify(timekeeper.CuePhaseTransition, focusEnd)

	first := &countingNotifier{}
	swappable.Set(first)
	swappable.Notify(timekeeper.CuePhaseTransition, focusEnd)

	second := &countingNotifier{}
	swappable.Set(second)
	swappable.Notify(timekeeper.CueProgressComplete, focusEnd)

	assert.Equal(t, []timekeeper.Cue{timekeeper.CuePhaseTransition}, first.cues)
	assert.Equal(t, []timekeeper.Cue{timekeeper.CueProgressComplete}, second.cues)
}
