package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// saveGlobals restores every setting Load can touch when the test ends
func saveGlobals(t *testing.T) {
	t.Helper()
	c, audio, log, term := *C, Audio, Log, Terminal
	t.Cleanup(func() {
		*C = c
		Audio = audio
		Log = log
		Terminal = term
	})
}

func TestLoadDefaults(t *testing.T) {
	saveGlobals(t)

	if err := Load("test", nil); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if C.Width != 800 || C.Height != 600 {
		t.Errorf("window %dx%d, want 800x600", C.Width, C.Height)
	}
	if !Audio.Enabled {
		t.Error("audio disabled by default")
	}
	if Audio.SFXVolume != 1.0 {
		t.Errorf("volume %v, want 1", Audio.SFXVolume)
	}
	if Log.Level != "info" {
		t.Errorf("log level %q, want info", Log.Level)
	}
}

func TestLoadFlags(t *testing.T) {
	saveGlobals(t)

	args := []string{"--width=1024", "--height", "768", "--mute", "--volume=2.5", "--sfx-dir=/tmp/sfx", "--key-release=450ms"}
	if err := Load("test", args); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if C.Width != 1024 || C.Height != 768 {
		t.Errorf("window %dx%d, want 1024x768", C.Width, C.Height)
	}
	if Audio.Enabled {
		t.Error("--mute did not disable audio")
	}
	if Audio.SFXVolume != 1 {
		t.Errorf("volume %v, want clamped to 1", Audio.SFXVolume)
	}
	if Audio.SFXDir != "/tmp/sfx" {
		t.Errorf("sfx dir %q", Audio.SFXDir)
	}
	if Terminal.KeyReleaseDelay != 450*time.Millisecond {
		t.Errorf("key release %v", Terminal.KeyReleaseDelay)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	saveGlobals(t)

	path := filepath.Join(t.TempDir(), "pong.yaml")
	body := "width: 640\nheight: 480\nlog-level: debug\nvolume: 0.25\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PONG_HEIGHT", "500")

	if err := Load("test", []string{"--config", path, "--log-file=pong.log"}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if C.Width != 640 {
		t.Errorf("width %d, want 640 from file", C.Width)
	}
	if C.Height != 500 {
		t.Errorf("height %d, want 500 from env", C.Height)
	}
	if Log.Level != "debug" {
		t.Errorf("log level %q, want debug from file", Log.Level)
	}
	if Log.File != "pong.log" {
		t.Errorf("log file %q, want pong.log from flag", Log.File)
	}
	if Audio.SFXVolume != 0.25 {
		t.Errorf("volume %v, want 0.25", Audio.SFXVolume)
	}
}

func TestLoadErrors(t *testing.T) {
	saveGlobals(t)

	if err := Load("test", []string{"--width=0"}); err == nil {
		t.Error("expected error for zero width")
	}
	if err := Load("test", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("expected error for missing explicit config file")
	}
	if err := Load("test", []string{"--help"}); !errors.Is(err, ErrHelp) {
		t.Errorf("--help returned %v, want ErrHelp", err)
	}
}
