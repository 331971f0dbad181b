package terminal

import (
	"testing"
	"time"

	"github.com/automoto/pingpong/config"
	"github.com/automoto/pingpong/pong"
	"github.com/gopxl/beep"
)

func TestBeeperStreamerLength(t *testing.T) {
	b := &Beeper{rate: beep.SampleRate(44100), volume: 1}

	for s := pong.Sound(0); s < pong.SoundCount; s++ {
		streamer, err := b.streamer(s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}

		want := b.rate.N(time.Duration(config.Sound.Tones[s].Duration) * time.Millisecond)
		total := 0
		buf := make([][2]float64, 512)
		for {
			n, ok := streamer.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		if total != want {
			t.Errorf("%s: streamed %d samples, want %d", s, total, want)
		}
	}
}

func TestBeeperMutedIsSilent(t *testing.T) {
	b := &Beeper{rate: beep.SampleRate(44100), volume: 0}

	streamer, err := b.streamer(pong.SoundHit)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([][2]float64, 256)
	n, _ := streamer.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, buf[i])
		}
	}
}

func TestBeeperUnknownSound(t *testing.T) {
	b := &Beeper{rate: beep.SampleRate(44100), volume: 1}
	if err := b.Play(pong.SoundCount); err == nil {
		t.Error("expected error for a sound without a tone")
	}
}
