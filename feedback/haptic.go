// Package feedback produces the side effects that acknowledge counting: a
// short pulse on every counted tap, and a notification plus an optional
// command when a target is reached. Every effect is best effort.
package feedback

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/ayoisaiah/misbaha/internal/config"
	"github.com/ayoisaiah/misbaha/tally"
)

const (
	pulseFreq     = 880.0
	pulseDuration = 40 * time.Millisecond
	sampleRate    = beep.SampleRate(44100)
)

// NewPulser returns the pulser for the configured haptic mode. Pulse returns
// immediately and never fails.
func NewPulser(mode config.HapticMode, logger *slog.Logger) tally.Pulser {
	switch mode {
	case config.HapticTone:
		return newTonePulser(logger)
	case config.HapticBell:
		return &bellPulser{logger: logger}
	default:
		return Nop{}
	}
}

// Nop is a pulser that does nothing.
type Nop struct{}

func (Nop) Pulse() {}

// tonePulser plays a short sine tone through the speaker.
type tonePulser struct {
	logger *slog.Logger
	ready  atomic.Bool
}

func newTonePulser(logger *slog.Logger) *tonePulser {
	p := &tonePulser{logger: logger}

	// opening the audio device can take a moment, so pulses are dropped
	// until it is ready
	go func() {
		err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
		if err != nil {
			logger.Debug("audio device unavailable", "err", err)
			return
		}

		p.ready.Store(true)
	}()

	return p
}

func (p *tonePulser) Pulse() {
	if !p.ready.Load() {
		return
	}

	tone, err := generators.SineTone(sampleRate, pulseFreq)
	if err != nil {
		p.logger.Debug("unable to generate tone", "err", err)
		return
	}

	speaker.Play(beep.Take(sampleRate.N(pulseDuration), tone))
}

// bellPulser rings the system bell.
type bellPulser struct {
	logger *slog.Logger
}

func (p *bellPulser) Pulse() {
	go func() {
		err := beeep.Beep(beeep.DefaultFreq, int(pulseDuration/time.Millisecond))
		if err != nil {
			p.logger.Debug("unable to ring bell", "err", err)
		}
	}()
}
