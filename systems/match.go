package systems

import (
	"time"

	"github.com/automoto/pingpong/archetypes"
	"github.com/automoto/pingpong/components"
	cfg "github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/pong"
	"github.com/automoto/pingpong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the match entity for a width x height field.
func CreateMatch(e *ecs.ECS, width, height float64, now func() time.Time, opts ...pong.Option) *donburi.Entry {
	entry := archetypes.Match.Spawn(e)
	components.Match.SetValue(entry, components.MatchData{
		Match: pong.NewMatch(width, height, opts...),
	})
	components.Screen.SetValue(entry, components.ScreenData{Width: width, Height: height})
	components.Clock.SetValue(entry, components.ClockData{Now: now})
	return entry
}

// UpdateMatch advances the simulation by one frame. It stops advancing once
// an update has failed.
func UpdateMatch(e *ecs.ECS) {
	entry, ok := tags.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(entry)
	if match.Err != nil {
		return
	}

	frame := nextFrame(components.Clock.Get(entry), components.Screen.Get(entry))
	match.Err = match.Match.Update(frame)
}

// nextFrame reads the clock and field size. The first frame has no delta.
func nextFrame(clock *components.ClockData, screen *components.ScreenData) pong.Frame {
	now := clock.Now()
	var delta time.Duration
	if !clock.Last.IsZero() {
		delta = now.Sub(clock.Last)
	}
	clock.Last = now

	width, height := screen.Width, screen.Height
	if width <= 0 || height <= 0 {
		width, height = float64(cfg.C.Width), float64(cfg.C.Height)
	}

	return pong.Frame{
		Width:  width,
		Height: height,
		Delta:  delta,
		Now:    now,
	}
}

// SetScreenSize records the drawable size for the next UpdateMatch.
func SetScreenSize(e *ecs.ECS, width, height int) {
	entry, ok := tags.Match.First(e.World)
	if !ok {
		return
	}
	screen := components.Screen.Get(entry)
	screen.Width = float64(width)
	screen.Height = float64(height)
}

// MatchErr returns the error that stopped the match, if any.
func MatchErr(e *ecs.ECS) error {
	entry, ok := tags.Match.First(e.World)
	if !ok {
		return nil
	}
	return components.Match.Get(entry).Err
}

// GetMatch returns the running match, or nil before CreateMatch.
func GetMatch(e *ecs.ECS) *pong.Match {
	entry, ok := tags.Match.First(e.World)
	if !ok {
		return nil
	}
	return components.Match.Get(entry).Match
}
