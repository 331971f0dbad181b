package scenes

import (
	"sync"
	"time"

	cfg "github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/pong"
	"github.com/automoto/pingpong/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PongScene runs a single match for as long as the window is open.
type PongScene struct {
	ecs  *ecs.ECS
	log  logrus.FieldLogger
	once sync.Once

	width, height int // last Layout size
}

// NewPongScene creates the match scene. log receives match events.
func NewPongScene(log logrus.FieldLogger) *PongScene {
	return &PongScene{log: log, width: cfg.C.Width, height: cfg.C.Height}
}

// Update advances the match. It returns ebiten.Termination when a quit key was
// pressed and the failure when the match or sound playback failed.
func (ps *PongScene) Update() error {
	ps.once.Do(ps.configure)
	systems.SetScreenSize(ps.ecs, ps.width, ps.height)
	ps.ecs.Update()

	if err := systems.MatchErr(ps.ecs); err != nil {
		return err
	}
	if err := systems.AudioErr(ps.ecs); err != nil {
		return err
	}
	if systems.QuitRequested(ps.ecs) {
		ps.log.Info("quit requested")
		return ebiten.Termination
	}
	return nil
}

func (ps *PongScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Field.BackgroundColor)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Layout records the drawable size; the field follows the window.
func (ps *PongScene) Layout(width, height int) {
	ps.width, ps.height = width, height
}

func (ps *PongScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateMatch)
	ecs.AddSystem(systems.UpdateOverlay)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawField)
	ecs.AddRenderer(cfg.Default, systems.DrawMatchHUD)

	ps.ecs = ecs

	systems.CreateMatch(ps.ecs, float64(ps.width), float64(ps.height), time.Now,
		pong.WithSounds(systems.SFXQueue(ps.ecs)),
		pong.WithLogger(ps.log),
	)
	ps.log.WithFields(logrus.Fields{
		"width":  ps.width,
		"height": ps.height,
	}).Info("match started")
}
