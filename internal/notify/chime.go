package notify

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"pomodoro/internal/core/timekeeper"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeLength     = 600 * time.Millisecond
	defaultToneHz   = 880
)

// ChimeSettings controls the audible cue.
type ChimeSettings struct {
	Enabled bool
	// Volume is a base-2 exponent: 0 is unchanged, -1 is half as loud.
	Volume float64
	ToneHz float64
}

// Player plays a stream on an audio device.
type Player interface {
	Play(streamer beep.Streamer) error
}

// Chime plays a short tone for every cue it receives.
type Chime struct {
	mu       sync.Mutex
	settings ChimeSettings
	player   Player
	logger   *slog.Logger
	warned   bool
}

// NewChime creates a chime that plays through the system speaker.
func NewChime(settings ChimeSettings, logger *slog.Logger) *Chime {
	return NewChimeWithPlayer(settings, &speakerPlayer{}, logger)
}

// NewChimeWithPlayer creates a chime that plays through player.
func NewChimeWithPlayer(settings ChimeSettings, player Player, logger *slog.Logger) *Chime {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chime{settings: settings, player: player, logger: logger}
}

// UpdateSettings replaces the chime settings.
func (chime *Chime) UpdateSettings(settings ChimeSettings) {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	chime.settings = settings
}

func (chime *Chime) Notify(cue timekeeper.Cue, completion timekeeper.Completion) {
	chime.mu.Lock()
	settings := chime.settings
	chime.mu.Unlock()
	if !settings.Enabled {
		return
	}

	toneHz := settings.ToneHz
	if toneHz <= 0 {
		toneHz = defaultToneHz
	}
	stream := &effects.Volume{
		Streamer: Tone(chimeSampleRate, toneHz, chimeLength),
		Base:     2,
		Volume:   settings.Volume,
		Silent:   false,
	}
	if err := chime.player.Play(stream); err != nil {
		chime.mu.Lock()
		warned := chime.warned
		chime.warned = true
		chime.mu.Unlock()
		if !warned {
			chime.logger.Warn("chime unavailable", slog.String("cue", string(cue)), slog.String("error", err.Error()))
		}
	}
}

// Tone returns a sine wave of the given frequency and length with a linear
// fade out.
func Tone(sampleRate beep.SampleRate, frequency float64, length time.Duration) beep.Streamer {
	total := sampleRate.N(length)
	position := 0
	step := 2 * math.Pi * frequency / float64(sampleRate)

	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			envelope := 1 - float64(position)/float64(total)
			if envelope < 0 {
				envelope = 0
			}
			value := math.Sin(step*float64(position)) * envelope
			samples[i][0] = value
			samples[i][1] = value
			position++
		}
		return len(samples), true
	}))
}

type speakerPlayer struct {
	once    sync.Once
	initErr error
}

func (player *speakerPlayer) Play(streamer beep.Streamer) error {
	player.once.Do(func() {
		if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10)); err != nil {
			player.initErr = fmt.Errorf("init speaker: %w", err)
		}
	})
	if player.initErr != nil {
		return player.initErr
	}
	speaker.Play(streamer)
	return nil
}
