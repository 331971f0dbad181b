package config

import (
	"github.com/automoto/pingpong/pong"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputConfig holds the window host's keyboard mapping
type InputConfig struct {
	Keys map[ebiten.Key]pong.Key
	Quit []ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Keys: map[ebiten.Key]pong.Key{
			ebiten.KeyW:         pong.KeyW,
			ebiten.KeyS:         pong.KeyS,
			ebiten.KeyArrowUp:   pong.KeyArrowUp,
			ebiten.KeyArrowDown: pong.KeyArrowDown,
		},
		Quit: []ebiten.Key{ebiten.KeyEscape},
	}
}
