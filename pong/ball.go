package pong

const (
	BallRadius = 5.0

	// StepsPerSecond is the frame rate ball velocity is divided by on every
	// update, independent of how much wall time actually passed.
	StepsPerSecond = 60.0

	// ServeSpeed is the horizontal ball velocity at the start of every round, in units per second.
	ServeSpeed = 150.0
)

// Ball is the ball's position and velocity. Pos is offset from the collision
// centre by BallRadius on both axes.
type Ball struct {
	Pos Vec2
	Vel Vec2
}

// Integrate advances the ball by one fixed step.
func (b *Ball) Integrate() {
	b.Pos.X += b.Vel.X / StepsPerSecond
	b.Pos.Y += b.Vel.Y / StepsPerSecond
}

// Serve places the ball at (x, y) moving right at ServeSpeed.
func (b *Ball) Serve(x, y float64) {
	b.Pos = Vec2{X: x, Y: y}
	b.Vel = Vec2{X: ServeSpeed}
}
