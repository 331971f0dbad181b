package terminal

import (
	"math"

	"github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/pong"
	"github.com/gdamore/tcell/v2"
)

const (
	paddleRune = '█'
	ballRune   = '●'
	centerRune = '┆'
)

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (width, height int)
}

var (
	fieldStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	overStyle   = tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorWhite)
	centerColor = tcell.ColorGray
)

// Draw renders snap with one cell per config.Terminal.CellWidth x CellHeight
// field units. Between rounds the whole field turns red with the winner centred.
func Draw(c Canvas, snap pong.Snapshot) {
	cols, rows := c.Size()
	base := fieldStyle
	if snap.State.Phase == pong.PhaseRoundOver {
		base = overStyle
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c.SetContent(x, y, ' ', nil, base)
		}
	}

	if config.Field.ShowCenterLine {
		for y := 0; y < rows; y += 2 {
			c.SetContent(cols/2, y, centerRune, nil, base.Foreground(centerColor))
		}
	}

	for _, p := range snap.Players {
		x0, y0 := toCell(p.Pos.X, p.Pos.Y)
		x1, y1 := toCell(p.Pos.X+pong.PaddleWidth, p.Pos.Y+pong.PaddleHeight)
		for y := y0; y < max(y1, y0+1); y++ {
			for x := x0; x < max(x1, x0+1); x++ {
				setCell(c, x, y, paddleRune, base)
			}
		}
	}

	bx, by := toCell(snap.Ball.Pos.X+pong.BallRadius, snap.Ball.Pos.Y+pong.BallRadius)
	setCell(c, bx, by, ballRune, base)

	drawCentered(c, 0, snap.ScoreLine(), base)
	if snap.State.Phase == pong.PhaseRoundOver {
		drawCentered(c, rows/2, pong.WinMessage(snap.State.Winner), base.Bold(true))
	}
}

func toCell(x, y float64) (int, int) {
	return int(math.Floor(x / config.Terminal.CellWidth)), int(math.Floor(y / config.Terminal.CellHeight))
}

// setCell ignores cells outside the canvas.
func setCell(c Canvas, x, y int, r rune, style tcell.Style) {
	cols, rows := c.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	c.SetContent(x, y, r, nil, style)
}

func drawCentered(c Canvas, y int, s string, style tcell.Style) {
	cols, _ := c.Size()
	runes := []rune(s)
	x := (cols - len(runes)) / 2
	for i, r := range runes {
		setCell(c, x+i, y, r, style)
	}
}
