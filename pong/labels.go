package pong

import "fmt"

// ScoreLine formats the scores as shown at the top of the field.
func (s Snapshot) ScoreLine() string {
	return fmt.Sprintf("%d | %d", s.Players[PlayerOne].Score, s.Players[PlayerTwo].Score)
}

// WinMessage is the round-over banner for winner.
func WinMessage(winner PlayerID) string {
	return fmt.Sprintf("Player %d Won!", winner.Number())
}
