// Package terminal runs a match in a text terminal through tcell.
package terminal

import (
	"context"
	"time"

	"github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/pong"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Host owns a match and drives it from terminal events and a frame ticker.
type Host struct {
	screen tcell.Screen
	match  *pong.Match
	log    logrus.FieldLogger

	// Terminals report presses and repeats but never releases. A key is held
	// until no press for it arrived for config.Terminal.KeyReleaseDelay.
	held map[pong.Key]time.Time
	last time.Time // previous frame, zero before the first
}

// NewHost creates a match sized to the screen.
func NewHost(screen tcell.Screen, log logrus.FieldLogger, opts ...pong.Option) *Host {
	h := &Host{
		screen: screen,
		log:    log,
		held:   make(map[pong.Key]time.Time),
	}
	width, height := h.fieldSize()
	h.match = pong.NewMatch(width, height, append([]pong.Option{pong.WithLogger(log)}, opts...)...)
	return h
}

// Match returns the hosted match.
func (h *Host) Match() *pong.Match {
	return h.match
}

// Run polls events and steps the match every config.Terminal.FrameInterval
// until ctx is done, a quit key is pressed or a frame fails.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(config.Terminal.FrameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if h.HandleEvent(ev, time.Now()) {
				h.log.Info("quit requested")
				return nil
			}

		case now := <-ticker.C:
			if err := h.Step(now); err != nil {
				return err
			}
		}
	}
}

// HandleEvent applies a terminal event received at now. It reports whether
// the user asked to quit.
func (h *Host) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev.Key(), ev.Rune(), now)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

func (h *Host) handleKey(k tcell.Key, r rune, now time.Time) bool {
	if k == tcell.KeyEscape || k == tcell.KeyCtrlC {
		return true
	}

	key := translateKey(k, r)
	intent, ok := pong.RouteKey(key)
	if !ok {
		return false
	}

	// A new direction for a player replaces the one still counted as held.
	for held := range h.held {
		if other, _ := pong.RouteKey(held); held != key && other.Player == intent.Player {
			delete(h.held, held)
		}
	}
	h.held[key] = now
	h.match.KeyDown(key)
	return false
}

// releaseExpired sends KeyUp for keys with no press in the release delay.
func (h *Host) releaseExpired(now time.Time) {
	for key, pressed := range h.held {
		if now.Sub(pressed) >= config.Terminal.KeyReleaseDelay {
			delete(h.held, key)
			h.match.KeyUp(key)
		}
	}
}

// Step releases idle keys, advances the match one frame and redraws.
func (h *Host) Step(now time.Time) error {
	h.releaseExpired(now)

	var delta time.Duration
	if !h.last.IsZero() {
		delta = now.Sub(h.last)
	}
	h.last = now

	width, height := h.fieldSize()
	if err := h.match.Update(pong.Frame{
		Width:  width,
		Height: height,
		Delta:  delta,
		Now:    now,
	}); err != nil {
		return err
	}

	Draw(h.screen, h.match.Snapshot())
	h.screen.Show()
	return nil
}

// fieldSize converts the screen size from cells to field units.
func (h *Host) fieldSize() (float64, float64) {
	cols, rows := h.screen.Size()
	return float64(cols) * config.Terminal.CellWidth, float64(rows) * config.Terminal.CellHeight
}

func translateKey(k tcell.Key, r rune) pong.Key {
	switch k {
	case tcell.KeyUp:
		return pong.KeyArrowUp
	case tcell.KeyDown:
		return pong.KeyArrowDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return pong.KeyW
		case 's', 'S':
			return pong.KeyS
		}
	}
	return pong.KeyUnknown
}
