package components

import (
	"github.com/automoto/pingpong/pong"
	"github.com/yohamta/donburi"
)

// MatchData wraps the simulation the scene drives.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	Match *pong.Match
	Err   error // set when an update fails; the scene stops on it
}

var Match = donburi.NewComponentType[MatchData]()
