// Package sound plays the board's effects without ever blocking the caller.
package sound

import (
	"log/slog"
	"sync"
	"time"
)

type Effect uint8

const (
	EffectMark Effect = iota + 1
	EffectWin
	EffectDraw
)

func (that Effect) String() string {
	switch that {
	case EffectMark:
		return "mark"
	case EffectWin:
		return "win"
	case EffectDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// beeps is how many bell strokes each effect makes.
var beeps = map[Effect]int{
	EffectMark: 1,
	EffectWin:  3,
	EffectDraw: 2,
}

const queueSize = 8

// Beeper rings one stroke. The worker calls it from its own goroutine.
type Beeper interface {
	Beep() error
}

// Player queues effects for a single worker. Play drops the effect when the queue is full.
type Player struct {
	logger *slog.Logger
	beeper Beeper
	gap    time.Duration

	queue chan Effect
	done  chan struct{}
	once  sync.Once
}

func NewPlayer(logger *slog.Logger, beeper Beeper, gap time.Duration) *Player {
	player := &Player{
		logger: logger.With("component", "sound"),
		beeper: beeper,
		gap:    gap,
		queue:  make(chan Effect, queueSize),
		done:   make(chan struct{}),
	}

	go player.run()

	return player
}

func (that *Player) Play(effect Effect) {
	select {
	case <-that.done:
		return
	default:
	}

	select {
	case that.queue <- effect:
	default:
		that.logger.Debug("sound queue full, effect dropped", "effect", effect.String())
	}
}

// Close stops the worker. Effects still queued are discarded.
func (that *Player) Close() {
	that.once.Do(func() {
		close(that.done)
	})
}

func (that *Player) run() {
	for {
		select {
		case <-that.done:
			return
		case effect := <-that.queue:
			that.render(effect)
		}
	}
}

func (that *Player) render(effect Effect) {
	for i := 0; i < beeps[effect]; i++ {
		if i > 0 && that.gap > 0 {
			time.Sleep(that.gap)
		}

		if err := that.beeper.Beep(); err != nil {
			that.logger.Warn("failed to beep", "effect", effect.String(), "error", err)
			return
		}
	}
}

// Mute is a Player stand-in used when sound is disabled in the config.
type Mute struct{}

func (Mute) Play(Effect) {}
