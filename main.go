package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/fonts"
	"github.com/automoto/pingpong/logger"
	"github.com/automoto/pingpong/scenes"
	"github.com/automoto/pingpong/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

type Game struct {
	scene Scene
}

func NewGame(log logrus.FieldLogger) *Game {
	return &Game{
		scene: scenes.NewPongScene(log),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout uses the window size as the field size so resizing grows the field.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.Layout(width, height)
	return width, height
}

func main() {
	if err := config.Load("pong", os.Args[1:]); err != nil {
		if errors.Is(err, config.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	logr, err := logger.New(config.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close(logr)
	session := logger.Session(logr)

	if err := fonts.LoadDefaults(config.Font.ScoreSize, config.Font.WinSize); err != nil {
		log.Fatal(err)
	}

	if config.Audio.Enabled {
		var sfx fs.FS
		if config.Audio.SFXDir != "" {
			sfx = os.DirFS(config.Audio.SFXDir)
		}
		if err := systems.InitAudio(sfx); err != nil {
			log.Fatalf("Failed to load sounds: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(session)); err != nil {
		session.WithError(err).Error("game stopped")
		logger.Close(logr)
		log.Fatal(err)
	}
	session.Info("game closed")
}
