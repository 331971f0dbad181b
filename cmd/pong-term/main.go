// Command pong-term plays the match in a text terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/logger"
	"github.com/automoto/pingpong/pong"
	"github.com/automoto/pingpong/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "pong-term: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := config.Load("pong-term", args); err != nil {
		if errors.Is(err, config.ErrHelp) {
			return nil
		}
		return err
	}

	logr, err := logger.New(config.Log)
	if err != nil {
		return err
	}
	defer logger.Close(logr)
	if config.Log.File == "" {
		// stderr is the terminal the game draws on
		logr.SetOutput(io.Discard)
	}
	session := logger.Session(logr)

	var sounds pong.SoundPlayer = pong.Silent
	if config.Audio.Enabled {
		beeper, err := terminal.NewBeeper(config.Audio.SampleRate, config.Audio.SFXVolume)
		if err != nil {
			return err
		}
		defer beeper.Close()
		sounds = beeper
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := terminal.NewHost(screen, session, pong.WithSounds(sounds))
	if err := host.Run(ctx); err != nil {
		session.WithError(err).Error("game stopped")
		return err
	}
	session.Info("game closed")
	return nil
}
