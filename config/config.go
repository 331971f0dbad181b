package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// FieldConfig contains play field drawing configuration
type FieldConfig struct {
	BackgroundColor color.RGBA
	PaddleColor     color.RGBA
	BallColor       color.RGBA
	StrokeWidth     float32
	ShowCenterLine  bool
	CenterLineColor color.RGBA
	CenterDash      float32 // dash length and gap of the centre line
}

// HUDConfig contains score and round-over overlay configuration
type HUDConfig struct {
	ScoreColor     color.RGBA
	ScoreTopMargin int
	OverlayColor   color.RGBA
	WinTextColor   color.RGBA
	OverlayFadeIn  float32 // seconds for the overlay to reach full opacity
}

// FontConfig contains font sizes in points
type FontConfig struct {
	ScoreSize float64
	WinSize   float64
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level      string
	File       string // empty logs to stderr
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Global configuration instances
var C *Config
var Field FieldConfig
var HUD HUDConfig
var Font FontConfig
var Log LogConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Grey         = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	RedOverlay   = color.RGBA{R: 128, G: 0, B: 0, A: 128} // premultiplied red at 50%
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Ping Pong",
	}

	Field = FieldConfig{
		BackgroundColor: Black,
		PaddleColor:     White,
		BallColor:       White,
		StrokeWidth:     2,
		ShowCenterLine:  true,
		CenterLineColor: Grey,
		CenterDash:      12,
	}

	HUD = HUDConfig{
		ScoreColor:     White,
		ScoreTopMargin: 4,
		OverlayColor:   RedOverlay,
		WinTextColor:   White,
		OverlayFadeIn:  0.25,
	}

	Font = FontConfig{
		ScoreSize: 20,
		WinSize:   20,
	}

	Log = LogConfig{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}
