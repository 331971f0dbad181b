package pong

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// RoundDwell is how long a finished round stays on screen before the next serve.
const RoundDwell = 3 * time.Second

// Phase is the match's top-level state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseRoundOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseRoundOver:
		return "round over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the match phase. Winner and EndedAt are only set in PhaseRoundOver.
type State struct {
	Phase   Phase
	Winner  PlayerID
	EndedAt time.Time
}

// Frame carries what the host knows about the frame being simulated.
type Frame struct {
	Width, Height float64       // current drawable size
	Delta         time.Duration // wall time since the previous frame
	Now           time.Time
}

// Snapshot is a copy of the match for rendering.
type Snapshot struct {
	Players [2]Paddle
	Ball    Ball
	State   State
}

// Match owns both paddles and the ball and advances them one frame per Update.
// It is not safe for concurrent use.
type Match struct {
	players [2]Paddle
	ball    Ball
	state   State

	sounds SoundPlayer
	log    logrus.FieldLogger
}

// Option configures a Match.
type Option func(*Match)

// WithSounds sets the player for hit, wall and lose sounds.
func WithSounds(s SoundPlayer) Option {
	return func(m *Match) {
		m.sounds = s
	}
}

// WithLogger sets the logger for round and hit events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Match) {
		m.log = l
	}
}

// NewMatch returns a match in play on a width x height field, with the ball
// served from the centre.
func NewMatch(width, height float64, opts ...Option) *Match {
	m := &Match{
		players: [2]Paddle{
			NewPaddle(PaddleInset),
			NewPaddle(width - PaddleInset),
		},
		state:  State{Phase: PhasePlaying},
		sounds: Silent,
	}
	m.ball.Serve(width/2, height/2)

	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		m.log = discard
	}
	return m
}

// State returns the current phase.
func (m *Match) State() State {
	return m.state
}

// Ball returns a copy of the ball.
func (m *Match) Ball() Ball {
	return m.ball
}

// Player returns a copy of a player's paddle.
func (m *Match) Player(id PlayerID) Paddle {
	return m.players[id]
}

// Snapshot returns a copy of everything a renderer needs.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Players: m.players,
		Ball:    m.ball,
		State:   m.state,
	}
}

// Update advances the match by one frame. The returned error comes from the
// sound player and leaves the frame partially applied; callers are expected to stop.
func (m *Match) Update(f Frame) error {
	// Player two stays anchored to the right edge when the field is resized.
	m.players[PlayerTwo].Pos.X = f.Width - PaddleInset

	switch m.state.Phase {
	case PhasePlaying:
		return m.updatePlaying(f)
	case PhaseRoundOver:
		m.updateRoundOver(f)
	}
	return nil
}

func (m *Match) updatePlaying(f Frame) error {
	m.ball.Integrate()

	for id := range m.players {
		vel, hit := m.players[id].UpdateCollision(m.ball.Pos, m.ball.Vel)
		if !hit {
			continue
		}
		m.ball.Vel = vel
		m.log.WithFields(logrus.Fields{
			"player": PlayerID(id).String(),
			"ball_x": vel.X,
			"ball_y": vel.Y,
		}).Debug("paddle hit")
		if err := m.play(SoundHit); err != nil {
			return err
		}
	}

	if m.ball.Pos.Y <= 0 || m.ball.Pos.Y >= f.Height {
		m.ball.Vel.Y *= -1
		if err := m.play(SoundWall); err != nil {
			return err
		}
	}

	// Both edges are checked; a ball can only be past one of them.
	if m.ball.Pos.X >= f.Width {
		if err := m.score(PlayerOne, f.Now); err != nil {
			return err
		}
	}
	if m.ball.Pos.X <= 0 {
		if err := m.score(PlayerTwo, f.Now); err != nil {
			return err
		}
	}

	for id := range m.players {
		m.players[id].MoveToVelocity(f.Delta, f.Height)
	}
	return nil
}

func (m *Match) score(winner PlayerID, now time.Time) error {
	m.players[winner].Score++
	if err := m.play(SoundLose); err != nil {
		return err
	}

	m.state = State{Phase: PhaseRoundOver, Winner: winner, EndedAt: now}
	m.log.WithFields(logrus.Fields{
		"winner":    winner.String(),
		"score_one": m.players[PlayerOne].Score,
		"score_two": m.players[PlayerTwo].Score,
	}).Info("round over")
	return nil
}

func (m *Match) updateRoundOver(f Frame) {
	if f.Now.Sub(m.state.EndedAt) <= RoundDwell {
		return
	}

	m.state = State{Phase: PhasePlaying}
	m.ball.Serve(f.Width/2, f.Height/2)

	// Paddles keep their position between rounds, only their motion is cleared.
	for id := range m.players {
		m.players[id].Vel = 0
		m.players[id].TargetVel = 0
	}
	m.log.Info("round started")
}

func (m *Match) play(s Sound) error {
	if err := m.sounds.Play(s); err != nil {
		return fmt.Errorf("play %s sound: %w", s, err)
	}
	return nil
}

// KeyDown applies a key press. Repeated presses are applied again. Ignored
// between rounds.
func (m *Match) KeyDown(key Key) {
	if m.state.Phase != PhasePlaying {
		return
	}
	if intent, ok := RouteKey(key); ok {
		m.players[intent.Player].HandleInputDown(intent.Direction)
	}
}

// KeyUp applies a key release. Ignored between rounds.
func (m *Match) KeyUp(key Key) {
	if m.state.Phase != PhasePlaying {
		return
	}
	if intent, ok := RouteKey(key); ok {
		m.players[intent.Player].HandleInputUp()
	}
}
