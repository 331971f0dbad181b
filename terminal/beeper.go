package terminal

import (
	"fmt"
	"math"
	"time"

	"github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/pong"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Beeper plays each sound as its configured tone on the system speaker.
type Beeper struct {
	rate   beep.SampleRate
	volume float64 // master multiplier, 0.0 - 1.0
}

// NewBeeper initialises the speaker. Call Close when done.
func NewBeeper(sampleRate int, volume float64) (*Beeper, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Beeper{rate: rate, volume: volume}, nil
}

// Play starts s without waiting for it to finish.
func (b *Beeper) Play(s pong.Sound) error {
	streamer, err := b.streamer(s)
	if err != nil {
		return err
	}
	speaker.Play(streamer)
	return nil
}

// Close releases the speaker.
func (b *Beeper) Close() {
	speaker.Close()
}

func (b *Beeper) streamer(s pong.Sound) (beep.Streamer, error) {
	tone, ok := config.Sound.Tones[s]
	if !ok {
		return nil, fmt.Errorf("no tone configured for %s", s)
	}
	sine, err := generators.SineTone(b.rate, tone.Frequency)
	if err != nil {
		return nil, fmt.Errorf("%s tone: %w", s, err)
	}
	n := b.rate.N(time.Duration(tone.Duration) * time.Millisecond)
	return newVolume(beep.Take(n, sine), b.volume*config.Sound.Volumes[s]), nil
}

// newVolume scales s linearly by vol.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
