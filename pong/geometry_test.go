package pong

import (
	"math/rand"
	"testing"
)

func TestIntersects(t *testing.T) {
	rectPos := Vec2{X: 0, Y: 0}
	rectSize := Vec2{X: 10, Y: 10}

	tests := []struct {
		name   string
		circle Vec2
		radius float64
		want   bool
	}{
		{"same centre", Vec2{0, 0}, 5, true},
		{"inside", Vec2{2, -3}, 1, true},
		{"touching right side", Vec2{10, 0}, 5, true},
		{"touching bottom side", Vec2{0, 10}, 5, true},
		{"just past right side", Vec2{10.001, 0}, 5, false},
		{"far above", Vec2{0, -100}, 5, false},
		{"touching corner", Vec2{8, 9}, 5, true},
		{"inside expanded box but off the corner", Vec2{9, 9}, 5, false},
		{"overlapping corner", Vec2{7, 7}, 5, true},
	}

	for _, tc := range tests {
		if got := Intersects(tc.circle, tc.radius, rectPos, rectSize); got != tc.want {
			t.Errorf("%s: Intersects(%v, %v) = %v, want %v", tc.name, tc.circle, tc.radius, got, tc.want)
		}
	}
}

func TestIntersectsOutsideExpandedBox(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rectSize := Vec2{X: PaddleWidth, Y: PaddleHeight}

	for i := 0; i < 1000; i++ {
		rectPos := Vec2{X: rng.Float64()*1000 - 500, Y: rng.Float64()*1000 - 500}
		radius := rng.Float64() * 20
		reachX := rectSize.X/2 + radius
		reachY := rectSize.Y/2 + radius

		// Push the circle past the expanded box on one axis, anywhere on the other.
		gap := 0.001 + rng.Float64()*100
		circle := rectPos
		switch i % 4 {
		case 0:
			circle.X += reachX + gap
			circle.Y += rng.Float64()*400 - 200
		case 1:
			circle.X -= reachX + gap
			circle.Y += rng.Float64()*400 - 200
		case 2:
			circle.Y += reachY + gap
			circle.X += rng.Float64()*400 - 200
		case 3:
			circle.Y -= reachY + gap
			circle.X += rng.Float64()*400 - 200
		}

		if Intersects(circle, radius, rectPos, rectSize) {
			t.Fatalf("circle %v r=%v should miss rect at %v", circle, radius, rectPos)
		}
	}
}

func TestIntersectsCoincidentCentres(t *testing.T) {
	for _, size := range []Vec2{{10, 200}, {1, 1}, {0, 0}} {
		for _, radius := range []float64{0, 0.5, 5} {
			p := Vec2{X: 37.5, Y: -12}
			if !Intersects(p, radius, p, size) {
				t.Errorf("coincident centres size=%v r=%v: expected intersection", size, radius)
			}
		}
	}
}
