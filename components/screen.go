package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ScreenData is the drawable size reported by the last Layout call.
type ScreenData struct {
	Width, Height float64
}

var Screen = donburi.NewComponentType[ScreenData]()

// ClockData tracks wall time between frames.
type ClockData struct {
	Now  func() time.Time
	Last time.Time // zero before the first frame
}

var Clock = donburi.NewComponentType[ClockData]()
