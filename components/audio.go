package components

import (
	"github.com/automoto/pingpong/pong"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0, 0 mutes
	PendingSFX []pong.Sound
	Err        error // first playback failure
}

var Audio = donburi.NewComponentType[AudioData]()
