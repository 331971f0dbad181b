package systems

import (
	"image/color"

	"github.com/automoto/pingpong/components"
	cfg "github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/fonts"
	"github.com/automoto/pingpong/pong"
	"github.com/automoto/pingpong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawMatchHUD renders the score and, between rounds, the winner overlay
func DrawMatchHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Match.First(ecs.World)
	if !ok {
		return
	}
	snap := components.Match.Get(entry).Match.Snapshot()

	drawScore(screen, snap)
	if snap.State.Phase == pong.PhaseRoundOver {
		drawRoundOver(screen, snap.State.Winner, components.Overlay.Get(entry).Opacity)
	}
}

func drawScore(screen *ebiten.Image, snap pong.Snapshot) {
	width := float64(screen.Bounds().Dx())
	fontFace := fonts.Score.Get()

	score := snap.ScoreLine()
	bounds := text.BoundString(fontFace, score)
	y := cfg.HUD.ScoreTopMargin - bounds.Min.Y
	text.Draw(screen, score, fontFace, centerTextX(score, fontFace, width), y, cfg.HUD.ScoreColor)
}

func drawRoundOver(screen *ebiten.Image, winner pong.PlayerID, opacity float32) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height),
		fade(cfg.HUD.OverlayColor, opacity), false)

	fontFace := fonts.Win.Get()
	msg := pong.WinMessage(winner)
	bounds := text.BoundString(fontFace, msg)
	y := int(height/2) - (bounds.Min.Y+bounds.Max.Y)/2
	text.Draw(screen, msg, fontFace, centerTextX(msg, fontFace, width), y,
		fade(cfg.HUD.WinTextColor, opacity))
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth-float64(textWidth))/2) - bounds.Min.X
}

// fade scales a premultiplied color by opacity.
func fade(c color.RGBA, opacity float32) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float32(v) * opacity) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
