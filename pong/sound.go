package pong

import "fmt"

// Sound is a sound effect the match asks its host to play.
type Sound int

const (
	SoundHit Sound = iota
	SoundWall
	SoundLose
	SoundCount // Must be last - used for array sizing
)

func (s Sound) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundWall:
		return "wall"
	case SoundLose:
		return "lose"
	default:
		return fmt.Sprintf("sound(%d)", int(s))
	}
}

// SoundPlayer plays sound effects. Play must not block on playback finishing.
// A returned error stops the match.
type SoundPlayer interface {
	Play(s Sound) error
}

// SoundPlayerFunc adapts a function to SoundPlayer.
type SoundPlayerFunc func(s Sound) error

// Play calls f(s).
func (f SoundPlayerFunc) Play(s Sound) error {
	return f(s)
}

// Silent is a SoundPlayer that discards every sound.
var Silent SoundPlayer = SoundPlayerFunc(func(Sound) error { return nil })
