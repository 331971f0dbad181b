package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrHelp is returned by Load when -h or --help was requested.
var ErrHelp = pflag.ErrHelp

// Load overrides the defaults with values from an optional config file
// (pong.yaml, pong.toml, ... in the working directory, or --config), PONG_*
// environment variables and command-line flags, in increasing precedence.
func Load(name string, args []string) error {
	fs := newFlagSet(name)
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix("PONG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if err := readConfigFile(v, cast.ToString(v.Get("config"))); err != nil {
		return err
	}
	return apply(v)
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "config file (default ./pong.{yaml,toml,json} if present)")
	fs.Int("width", C.Width, "initial window width")
	fs.Int("height", C.Height, "initial window height")
	fs.Bool("mute", !Audio.Enabled, "disable sound")
	fs.Float64("volume", Audio.SFXVolume, "sound effect volume, 0 to 1")
	fs.String("sfx-dir", Audio.SFXDir, "directory with hit, wall and lose sound files")
	fs.String("log-level", Log.Level, "log level (trace, debug, info, warn, error)")
	fs.String("log-file", Log.File, "write JSON logs to this file instead of stderr")
	fs.Int("log-max-size", Log.MaxSizeMB, "megabytes before the log file is rotated")
	fs.Duration("key-release", Terminal.KeyReleaseDelay, "terminal only: idle time before a held key counts as released")
	return fs
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pong")
		v.AddConfigPath(".")
	}

	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if path == "" && errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("read config: %w", err)
}

func apply(v *viper.Viper) error {
	width, err := cast.ToIntE(v.Get("width"))
	if err != nil {
		return fmt.Errorf("width: %w", err)
	}
	height, err := cast.ToIntE(v.Get("height"))
	if err != nil {
		return fmt.Errorf("height: %w", err)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", width, height)
	}
	volume, err := cast.ToFloat64E(v.Get("volume"))
	if err != nil {
		return fmt.Errorf("volume: %w", err)
	}
	release, err := cast.ToDurationE(v.Get("key-release"))
	if err != nil {
		return fmt.Errorf("key-release: %w", err)
	}

	C.Width = width
	C.Height = height

	Audio.Enabled = !cast.ToBool(v.Get("mute"))
	Audio.SFXVolume = clamp01(volume)
	Audio.SFXDir = cast.ToString(v.Get("sfx-dir"))

	Log.Level = cast.ToString(v.Get("log-level"))
	Log.File = cast.ToString(v.Get("log-file"))
	Log.MaxSizeMB = cast.ToInt(v.Get("log-max-size"))

	if release > 0 {
		Terminal.KeyReleaseDelay = release
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
