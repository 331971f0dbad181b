package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputData holds this frame's key edges. The slices are reused between
// frames to avoid allocations.
type InputData struct {
	Pressed  []ebiten.Key
	Released []ebiten.Key
	Quit     bool
}

var Input = donburi.NewComponentType[InputData]()
