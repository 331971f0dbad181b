package config

import "github.com/automoto/pingpong/pong"

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	Enabled    bool
	SampleRate int
	SFXVolume  float64 // master multiplier, 0.0 - 1.0
	SFXDir     string  // directory holding sound files; empty synthesises tones
}

// ToneConfig describes a synthesised stand-in for a missing sound file
type ToneConfig struct {
	Frequency float64 // Hz
	Duration  int     // milliseconds
}

// SoundConfig maps sounds to file names and per-sound volumes
type SoundConfig struct {
	Files   map[pong.Sound]string
	Volumes map[pong.Sound]float64
	Tones   map[pong.Sound]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		Enabled:    true,
		SampleRate: 44100,
		SFXVolume:  1.0,
	}

	Sound = SoundConfig{
		Files: map[pong.Sound]string{
			pong.SoundHit:  "hit.ogg",
			pong.SoundWall: "wall.ogg",
			pong.SoundLose: "lose.ogg",
		},
		Volumes: map[pong.Sound]float64{
			pong.SoundHit:  0.5,
			pong.SoundWall: 0.5,
			pong.SoundLose: 0.2,
		},
		Tones: map[pong.Sound]ToneConfig{
			pong.SoundHit:  {Frequency: 880, Duration: 60},
			pong.SoundWall: {Frequency: 440, Duration: 50},
			pong.SoundLose: {Frequency: 196, Duration: 400},
		},
	}
}
