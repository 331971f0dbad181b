package systems

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/automoto/pingpong/archetypes"
	"github.com/automoto/pingpong/assets"
	"github.com/automoto/pingpong/components"
	cfg "github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/pong"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioLoader *assets.AudioLoader
	audioInitOnce     sync.Once
	audioInitErr      error
)

// InitAudio creates the audio context and decodes every sound effect. Sounds
// are read from sfx, or synthesised when sfx is nil. Without a successful
// call, queued sounds are dropped.
func InitAudio(sfx fs.FS) error {
	audioInitOnce.Do(func() {
		ctx := audio.NewContext(cfg.Audio.SampleRate)
		loader := assets.NewAudioLoader(ctx)
		if err := loader.PreloadSFX(sfx); err != nil {
			audioInitErr = err
			return
		}
		globalAudioLoader = loader
	})
	return audioInitErr
}

// UpdateAudio plays pending SFX. The first playback failure is kept in
// AudioData.Err and nothing more is played after it.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, sound := range audioData.PendingSFX {
		if audioData.Err != nil {
			break
		}
		audioData.Err = playSFX(sound, audioData.SFXVolume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(sound pong.Sound, masterVolume float64) error {
	if globalAudioLoader == nil || masterVolume <= 0 {
		return nil
	}

	player, err := globalAudioLoader.LoadSFX(sound)
	if err != nil {
		return fmt.Errorf("play %s sound: %w", sound, err)
	}

	volume := masterVolume
	if mult, ok := cfg.Sound.Volumes[sound]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
	return nil
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound pong.Sound) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SFXQueue returns a pong.SoundPlayer that queues sounds on e for UpdateAudio.
func SFXQueue(e *ecs.ECS) pong.SoundPlayer {
	return pong.SoundPlayerFunc(func(s pong.Sound) error {
		PlaySFX(e, s)
		return nil
	})
}

// AudioErr returns the first playback failure, if any.
func AudioErr(e *ecs.ECS) error {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return nil
	}
	return components.Audio.Get(entry).Err
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = archetypes.Audio.Spawn(e)
		volume := cfg.Audio.SFXVolume
		if !cfg.Audio.Enabled {
			volume = 0
		}
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  volume,
			PendingSFX: make([]pong.Sound, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
