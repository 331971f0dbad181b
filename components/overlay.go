package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayData fades the round-over banner in.
type OverlayData struct {
	Tween   *gween.Tween // nil while the round is in play
	Opacity float32      // 0.0 - 1.0
}

var Overlay = donburi.NewComponentType[OverlayData]()
