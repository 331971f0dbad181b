package systems

import (
	"github.com/automoto/pingpong/components"
	cfg "github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/pong"
	"github.com/automoto/pingpong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawField renders the centre line, both paddles and the ball as outlines.
func DrawField(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Match.First(ecs.World)
	if !ok {
		return
	}
	snap := components.Match.Get(entry).Match.Snapshot()
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	stroke := cfg.Field.StrokeWidth

	if cfg.Field.ShowCenterLine && cfg.Field.CenterDash > 0 {
		x := width / 2
		for y := float32(0); y < height; y += 2 * cfg.Field.CenterDash {
			vector.StrokeLine(screen, x, y, x, min(y+cfg.Field.CenterDash, height),
				stroke, cfg.Field.CenterLineColor, false)
		}
	}

	for _, p := range snap.Players {
		vector.StrokeRect(screen,
			float32(p.Pos.X), float32(p.Pos.Y),
			pong.PaddleWidth, pong.PaddleHeight,
			stroke, cfg.Field.PaddleColor, false)
	}

	// Ball position is the top-left of its bounding box
	ball := snap.Ball.Pos
	vector.StrokeCircle(screen,
		float32(ball.X+pong.BallRadius), float32(ball.Y+pong.BallRadius),
		pong.BallRadius, stroke, cfg.Field.BallColor, true)
}
