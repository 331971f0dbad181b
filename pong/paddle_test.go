package pong

import (
	"math"
	"testing"
	"time"
)

const frameDelta = 16 * time.Millisecond

func TestPaddleInput(t *testing.T) {
	p := NewPaddle(PaddleInset)

	p.HandleInputDown(Up)
	if p.TargetVel != -PaddleSpeed {
		t.Errorf("up: target velocity %v, want %v", p.TargetVel, -PaddleSpeed)
	}

	p.HandleInputDown(Down)
	if p.TargetVel != PaddleSpeed {
		t.Errorf("down: target velocity %v, want %v", p.TargetVel, PaddleSpeed)
	}

	p.HandleInputUp()
	if p.TargetVel != 0 {
		t.Errorf("release: target velocity %v, want 0", p.TargetVel)
	}
}

func TestPaddleSmoothingConverges(t *testing.T) {
	for _, dir := range []Direction{Up, Down} {
		p := NewPaddle(PaddleInset)
		p.Pos.Y = 1e9
		p.HandleInputDown(dir)

		prevGap := math.Abs(p.TargetVel - p.Vel)
		for i := 0; i < 2000; i++ {
			p.MoveToVelocity(frameDelta, 1e10)

			gap := math.Abs(p.TargetVel - p.Vel)
			if gap > prevGap {
				t.Fatalf("dir %d step %d: gap grew from %v to %v", dir, i, prevGap, gap)
			}
			if p.TargetVel > 0 && p.Vel > p.TargetVel || p.TargetVel < 0 && p.Vel < p.TargetVel {
				t.Fatalf("dir %d step %d: velocity %v overshot target %v", dir, i, p.Vel, p.TargetVel)
			}
			prevGap = gap
		}
		if prevGap >= PaddleSpeed {
			t.Errorf("dir %d: velocity never moved toward target", dir)
		}
	}
}

func TestPaddleSmoothingStep(t *testing.T) {
	p := NewPaddle(PaddleInset)
	p.Pos.Y = 100
	p.TargetVel = PaddleSpeed

	p.MoveToVelocity(500*time.Millisecond, 600)

	wantVel := PaddleSpeed * PaddleSmoothing * 0.5
	if math.Abs(p.Vel-wantVel) > 1e-12 {
		t.Errorf("velocity %v, want %v", p.Vel, wantVel)
	}
	if math.Abs(p.Pos.Y-(100+wantVel)) > 1e-12 {
		t.Errorf("position %v, want %v", p.Pos.Y, 100+wantVel)
	}
}

func TestPaddleClampStopsDead(t *testing.T) {
	tests := []struct {
		name   string
		y, vel float64
		target float64
		height float64
		wantY  float64
	}{
		{"top", 2, -5, -PaddleSpeed, 600, 0},
		{"bottom", 399, 5, PaddleSpeed, 600, 400},
	}

	for _, tc := range tests {
		p := NewPaddle(PaddleInset)
		p.Pos.Y = tc.y
		p.Vel = tc.vel
		p.TargetVel = tc.target

		p.MoveToVelocity(frameDelta, tc.height)

		if p.Pos.Y != tc.wantY {
			t.Errorf("%s: position %v, want %v", tc.name, p.Pos.Y, tc.wantY)
		}
		if p.Vel != 0 || p.TargetVel != 0 {
			t.Errorf("%s: vel=%v target=%v after clamp, want both 0", tc.name, p.Vel, p.TargetVel)
		}
	}
}

func TestPaddleCollisionHit(t *testing.T) {
	p := NewPaddle(PaddleInset) // box spans x 16..26, y 0..200

	ballPos := Vec2{X: 16, Y: 45}
	vx := -150.0
	vel, hit := p.UpdateCollision(ballPos, Vec2{X: vx, Y: 20})
	if !hit {
		t.Fatal("expected hit")
	}
	if want := vx * -HitSpeedUp; vel.X != want {
		t.Errorf("vel.X = %v, want %v", vel.X, want)
	}
	// 55 above the paddle middle, incoming downward: redirected upward-inverted.
	if vel.Y != 55 {
		t.Errorf("vel.Y = %v, want 55", vel.Y)
	}
}

func TestPaddleCollisionVerticalSign(t *testing.T) {
	p := NewPaddle(PaddleInset)
	ballPos := Vec2{X: 16, Y: 145} // 45 below the middle

	tests := []struct {
		name  string
		velY  float64
		wantY float64
	}{
		{"moving down", 10, -45},
		{"moving up", -10, 45},
		{"flat", 0, -45},
		{"flat negative zero", math.Copysign(0, -1), 45},
	}

	for _, tc := range tests {
		vel, hit := p.UpdateCollision(ballPos, Vec2{X: 100, Y: tc.velY})
		if !hit {
			t.Fatalf("%s: expected hit", tc.name)
		}
		if vel.Y != tc.wantY {
			t.Errorf("%s: vel.Y = %v, want %v", tc.name, vel.Y, tc.wantY)
		}
	}
}

func TestPaddleCollisionMiss(t *testing.T) {
	p := NewPaddle(PaddleInset)
	in := Vec2{X: -150, Y: 7}

	vel, hit := p.UpdateCollision(Vec2{X: 300, Y: 100}, in)
	if hit {
		t.Fatal("unexpected hit")
	}
	if vel != in {
		t.Errorf("velocity changed on miss: %v", vel)
	}
}

func TestPaddleHitsSpeedUpBall(t *testing.T) {
	p := NewPaddle(PaddleInset)
	ballPos := Vec2{X: 16, Y: 95}

	vel := Vec2{X: -ServeSpeed}
	for i := 0; i < 20; i++ {
		next, hit := p.UpdateCollision(ballPos, vel)
		if !hit {
			t.Fatalf("hit %d: expected hit", i)
		}
		if math.Signbit(next.X) == math.Signbit(vel.X) {
			t.Errorf("hit %d: x velocity sign did not flip (%v -> %v)", i, vel.X, next.X)
		}
		if math.Abs(next.X) <= math.Abs(vel.X) {
			t.Errorf("hit %d: speed did not increase (%v -> %v)", i, vel.X, next.X)
		}
		if ratio := math.Abs(next.X) / math.Abs(vel.X); math.Abs(ratio-HitSpeedUp) > 1e-9 {
			t.Errorf("hit %d: speed ratio %v, want %v", i, ratio, HitSpeedUp)
		}
		vel = next
	}
}
