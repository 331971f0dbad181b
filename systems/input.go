package systems

import (
	"slices"

	"github.com/automoto/pingpong/components"
	cfg "github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/pong"
	"github.com/automoto/pingpong/tags"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput forwards this frame's key presses and releases to the match.
// Must run BEFORE UpdateMatch in the system order.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := tags.Match.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	input.Pressed = inpututil.AppendJustPressedKeys(input.Pressed[:0])
	input.Released = inpututil.AppendJustReleasedKeys(input.Released[:0])

	applyKeys(components.Match.Get(entry).Match, input)
}

// applyKeys translates bound keys and flags a quit request.
func applyKeys(m *pong.Match, input *components.InputData) {
	for _, k := range input.Pressed {
		if slices.Contains(cfg.Input.Quit, k) {
			input.Quit = true
			continue
		}
		if key, ok := cfg.Input.Keys[k]; ok {
			m.KeyDown(key)
		}
	}
	for _, k := range input.Released {
		if key, ok := cfg.Input.Keys[k]; ok {
			m.KeyUp(key)
		}
	}
}

// QuitRequested reports whether a quit key was pressed.
func QuitRequested(ecs *ecs.ECS) bool {
	entry, ok := tags.Match.First(ecs.World)
	if !ok {
		return false
	}
	return components.Input.Get(entry).Quit
}
