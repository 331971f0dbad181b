package pong

import "fmt"

// PlayerID identifies one side of the match.
type PlayerID int

const (
	PlayerOne PlayerID = iota
	PlayerTwo
)

func (p PlayerID) String() string {
	switch p {
	case PlayerOne:
		return "player one"
	case PlayerTwo:
		return "player two"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// Number returns the 1-based player number shown to users.
func (p PlayerID) Number() int {
	return int(p) + 1
}

// Direction is a vertical movement intent.
type Direction int

const (
	Up Direction = iota
	Down
)

// Key is a host-independent key identifier. Hosts translate their native key
// codes into Keys before forwarding events.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyS
	KeyArrowUp
	KeyArrowDown
)

// Intent is the player and direction a key controls.
type Intent struct {
	Player    PlayerID
	Direction Direction
}

var keyTable = map[Key]Intent{
	KeyW:         {Player: PlayerOne, Direction: Up},
	KeyS:         {Player: PlayerOne, Direction: Down},
	KeyArrowUp:   {Player: PlayerTwo, Direction: Up},
	KeyArrowDown: {Player: PlayerTwo, Direction: Down},
}

// RouteKey returns the intent bound to key. ok is false for keys that control nothing.
func RouteKey(key Key) (intent Intent, ok bool) {
	intent, ok = keyTable[key]
	return intent, ok
}
