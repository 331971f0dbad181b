// Package pong holds the simulation for a two-player paddle-and-ball match.
// It has no rendering or audio dependencies; hosts drive it one frame at a time.
package pong

import "math"

// Vec2 is a 2D point or vector in field units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Intersects reports whether a circle overlaps an axis-aligned rectangle.
// rectPos is the rectangle's centre. Touching counts as intersecting.
func Intersects(circlePos Vec2, circleRadius float64, rectPos, rectSize Vec2) bool {
	dx := math.Abs(circlePos.X - rectPos.X)
	dy := math.Abs(circlePos.Y - rectPos.Y)

	halfW := rectSize.X / 2
	halfH := rectSize.Y / 2

	if dx > halfW+circleRadius {
		return false
	}
	if dy > halfH+circleRadius {
		return false
	}

	if dx <= halfW {
		return true
	}
	if dy <= halfH {
		return true
	}

	cornerX := dx - halfW
	cornerY := dy - halfH
	return cornerX*cornerX+cornerY*cornerY <= circleRadius*circleRadius
}
