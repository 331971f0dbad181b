package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/pong"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of sound effects
type AudioLoader struct {
	sfxCache map[pong.Sound][]byte // decoded 16-bit stereo PCM
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[pong.Sound][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes every sound effect and caches it. Sounds are read from
// fsys when it is non-nil and synthesised from config.Sound.Tones otherwise.
// Call this at startup; a missing or undecodable file is an error.
func (l *AudioLoader) PreloadSFX(fsys fs.FS) error {
	for s := pong.Sound(0); s < pong.SoundCount; s++ {
		var (
			decoded []byte
			err     error
		)
		if fsys == nil {
			decoded, err = SynthesizeSFX(s, l.context.SampleRate())
		} else {
			decoded, err = DecodeSFX(fsys, config.Sound.Files[s], l.context.SampleRate())
		}
		if err != nil {
			return fmt.Errorf("failed to load %s sound: %w", s, err)
		}
		l.sfxCache[s] = decoded
	}
	return nil
}

// LoadSFX returns a new player for a preloaded sound effect.
func (l *AudioLoader) LoadSFX(s pong.Sound) (*audio.Player, error) {
	cachedBytes, ok := l.sfxCache[s]
	if !ok {
		return nil, fmt.Errorf("sound %s was not preloaded", s)
	}
	return l.context.NewPlayer(bytes.NewReader(cachedBytes))
}

// DecodeSFX reads name from fsys and decodes it to 16-bit stereo PCM at
// sampleRate. When name is missing, the same base name with the other
// supported extension is tried.
func DecodeSFX(fsys fs.FS, name string, sampleRate int) ([]byte, error) {
	data, name, err := readSFX(fsys, name)
	if err != nil {
		return nil, err
	}

	var stream io.Reader
	ext := strings.ToLower(path.Ext(name))

	switch ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", name, err)
		}
		stream = s

	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", name, err)
		}
		stream = s

	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", name, err)
	}
	return decoded, nil
}

func readSFX(fsys fs.FS, name string) ([]byte, string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err == nil {
		return data, name, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, name, fmt.Errorf("failed to read audio file %s: %w", name, err)
	}

	base := strings.TrimSuffix(name, path.Ext(name))
	alt := base + ".wav"
	if strings.EqualFold(path.Ext(name), ".wav") {
		alt = base + ".ogg"
	}
	data, altErr := fs.ReadFile(fsys, alt)
	if altErr != nil {
		return nil, name, fmt.Errorf("failed to read audio file %s: %w", name, err)
	}
	return data, alt, nil
}
