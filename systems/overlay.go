package systems

import (
	"github.com/automoto/pingpong/components"
	cfg "github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/pong"
	"github.com/automoto/pingpong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOverlay fades the round-over banner in and hides it once play resumes.
// Must run AFTER UpdateMatch.
func UpdateOverlay(e *ecs.ECS) {
	entry, ok := tags.Match.First(e.World)
	if !ok {
		return
	}
	phase := components.Match.Get(entry).Match.State().Phase
	stepOverlay(components.Overlay.Get(entry), phase, 1/float32(ebiten.TPS()))
}

func stepOverlay(overlay *components.OverlayData, phase pong.Phase, dt float32) {
	if phase != pong.PhaseRoundOver {
		overlay.Tween = nil
		overlay.Opacity = 0
		return
	}
	if cfg.HUD.OverlayFadeIn <= 0 {
		overlay.Opacity = 1
		return
	}
	if overlay.Tween == nil {
		overlay.Tween = gween.New(0, 1, cfg.HUD.OverlayFadeIn, ease.OutQuad)
	}
	overlay.Opacity, _ = overlay.Tween.Update(dt)
}
