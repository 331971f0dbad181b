package pong

import (
	"math"
	"time"
)

const (
	PaddleWidth  = 10.0
	PaddleHeight = 200.0

	// PaddleInset is the distance of each paddle's left edge from its side of the field.
	PaddleInset = 16.0

	// PaddleSpeed is the target velocity magnitude while a direction is held.
	PaddleSpeed = 30.0

	// PaddleSmoothing scales how quickly Vel approaches TargetVel per second.
	PaddleSmoothing = 0.2

	// HitSpeedUp multiplies the ball's horizontal speed on every paddle hit.
	HitSpeedUp = 1.05
)

// Paddle is a player-controlled rectangle that only moves vertically.
// Pos is the top-left corner.
type Paddle struct {
	Pos       Vec2
	Vel       float64
	TargetVel float64
	Score     int
}

// NewPaddle returns a paddle at the top of the field with its left edge at x.
func NewPaddle(x float64) Paddle {
	return Paddle{Pos: Vec2{X: x}}
}

// HandleInputDown sets the target velocity for a held direction.
func (p *Paddle) HandleInputDown(dir Direction) {
	switch dir {
	case Up:
		p.TargetVel = -PaddleSpeed
	case Down:
		p.TargetVel = PaddleSpeed
	}
}

// HandleInputUp clears the target velocity.
func (p *Paddle) HandleInputUp() {
	p.TargetVel = 0
}

// MoveToVelocity eases Vel toward TargetVel over dt and moves the paddle by Vel.
// Hitting either edge of the field stops the paddle dead.
func (p *Paddle) MoveToVelocity(dt time.Duration, fieldHeight float64) {
	p.Vel += (p.TargetVel - p.Vel) * PaddleSmoothing * dt.Seconds()
	p.Pos.Y += p.Vel

	if p.Pos.Y < 0 {
		p.Pos.Y = 0
		p.stop()
	}
	if p.Pos.Y > fieldHeight-PaddleHeight {
		p.Pos.Y = fieldHeight - PaddleHeight
		p.stop()
	}
}

func (p *Paddle) stop() {
	p.Vel = 0
	p.TargetVel = 0
}

// Center returns the centre of the paddle's bounding box.
func (p *Paddle) Center() Vec2 {
	return Vec2{X: p.Pos.X + PaddleWidth/2, Y: p.Pos.Y + PaddleHeight/2}
}

// Size returns the paddle's bounding box dimensions.
func (p *Paddle) Size() Vec2 {
	return Vec2{X: PaddleWidth, Y: PaddleHeight}
}

// UpdateCollision returns the ball velocity after testing the ball against the
// paddle, and whether the ball was hit. On a hit the ball reverses and speeds up
// horizontally, and its vertical velocity is set from how far from the paddle's
// middle it landed.
func (p *Paddle) UpdateCollision(ballPos, ballVel Vec2) (Vec2, bool) {
	if !Intersects(ballPos.Add(Vec2{X: BallRadius, Y: BallRadius}), BallRadius, p.Center(), p.Size()) {
		return ballVel, false
	}

	// Copysign keeps the sign of zero, so a ball travelling flat counts as moving down.
	ySign := math.Copysign(1, ballVel.Y)
	diff := ballPos.Y - (p.Pos.Y + PaddleHeight/2)

	ballVel.X *= -HitSpeedUp
	ballVel.Y = diff * -ySign
	return ballVel, true
}
