package game

import (
	"fmt"
	"strings"
)

type Move uint8

const (
	Rock Move = iota
	Paper
	Scissors
	Cooperate
	Betray
	Block

	moveCount = 6
)

// Moves lists every playable move in table order.
var Moves = [moveCount]Move{Rock, Paper, Scissors, Cooperate, Betray, Block}

var moveNames = [moveCount]string{"rock", "paper", "scissors", "cooperate", "betray", "block"}

func (m Move) Valid() bool {
	return m < moveCount
}

func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("move(%d)", uint8(m))
	}
	return moveNames[m]
}

// Title is the display form used in narration ("Rock", "Betray").
func (m Move) Title() string {
	s := m.String()
	if !m.Valid() {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func ParseMove(s string) (Move, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range moveNames {
		if name == key {
			return Move(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMove, s)
}

func (m Move) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMove, uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *Move) UnmarshalText(b []byte) error {
	parsed, err := ParseMove(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
