package config

import "time"

// TerminalConfig contains settings for the terminal host
type TerminalConfig struct {
	// Field units covered by one terminal cell
	CellWidth  float64
	CellHeight float64

	// Terminals only report presses, so a key counts as released after this
	// long without a repeat.
	KeyReleaseDelay time.Duration

	FrameInterval time.Duration
}

var Terminal TerminalConfig

func init() {
	Terminal = TerminalConfig{
		CellWidth:       8,
		CellHeight:      16,
		KeyReleaseDelay: 300 * time.Millisecond,
		FrameInterval:   time.Second / 60,
	}
}
