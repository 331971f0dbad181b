package tags

import "github.com/yohamta/donburi"

var (
	Match = donburi.NewTag().SetName("Match")
)
