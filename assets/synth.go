package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/pong"
)

// releaseFraction is the share of a tone spent fading out.
const releaseFraction = 0.3

// SynthesizeSFX renders the configured tone for s as 16-bit little-endian
// stereo PCM, the format audio.Context.NewPlayer expects.
func SynthesizeSFX(s pong.Sound, sampleRate int) ([]byte, error) {
	tone, ok := config.Sound.Tones[s]
	if !ok {
		return nil, fmt.Errorf("no tone configured for %s", s)
	}
	if tone.Frequency <= 0 || tone.Duration <= 0 {
		return nil, fmt.Errorf("invalid tone for %s: %+v", s, tone)
	}
	return Tone(tone.Frequency, tone.Duration, sampleRate), nil
}

// Tone renders a sine wave of freq Hz lasting ms milliseconds with a linear
// release at the end.
func Tone(freq float64, ms, sampleRate int) []byte {
	samples := sampleRate * ms / 1000
	release := int(float64(samples) * releaseFraction)
	releaseStart := samples - release

	out := make([]byte, samples*4)
	phaseInc := freq / float64(sampleRate)
	phase := 0.0

	for i := 0; i < samples; i++ {
		vol := 1.0
		if i >= releaseStart && release > 0 {
			vol = float64(samples-i) / float64(release)
		}
		v := int16(math.Sin(2*math.Pi*phase) * vol * math.MaxInt16)

		// Same sample on both channels
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return out
}
