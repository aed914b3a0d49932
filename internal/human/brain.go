// Package human seats a person at the table. Moves come from a line-oriented
// reader; everything else is left to chance.
package human

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"dilemma-arena/internal/game"
	"dilemma-arena/internal/ids"
)

var ErrInputClosed = errors.New("input_closed")

type Brain struct {
	in   *bufio.Scanner
	out  io.Writer
	rand *rand.Rand
	err  error
}

func NewBrain(in io.Reader, out io.Writer, rnd *rand.Rand) *Brain {
	return &Brain{in: bufio.NewScanner(in), out: out, rand: rnd}
}

// NewPlayer seats a human with the given name and stack. The leave rate is
// drawn from the same range as bots but checked against a larger scale.
func NewPlayer(name string, b *Brain, rules game.Rules, rnd *rand.Rand) *game.Player {
	leave := rules.LeaveRateMin
	if rules.LeaveRateMax > rules.LeaveRateMin {
		leave += rnd.Intn(rules.LeaveRateMax - rules.LeaveRateMin + 1)
	}
	return &game.Player{
		ID:        ids.New(),
		Name:      name,
		Chips:     rules.InitialChips,
		LeaveRate: leave,
		Brain:     b,
	}
}

// Err reports why the brain stopped producing moves, if it did.
func (b *Brain) Err() error {
	return b.err
}

// ChooseMove prompts until a known move is typed. When input runs out it
// returns an invalid move so the engine aborts the run; Err explains why.
func (b *Brain) ChooseMove(self, _ *game.Player) game.Move {
	fmt.Fprintf(b.out, "Your turn, %s. You have %d chips.\n", self.Name, self.Chips)
	for {
		fmt.Fprintf(b.out, "Choose your move (%s): ", moveList())
		if !b.in.Scan() {
			b.err = ErrInputClosed
			if err := b.in.Err(); err != nil {
				b.err = fmt.Errorf("%w: %v", ErrInputClosed, err)
			}
			return game.Move(255)
		}
		mv, err := game.ParseMove(strings.TrimSpace(b.in.Text()))
		if err == nil {
			return mv
		}
		fmt.Fprintln(b.out, "Invalid move. Please choose again.")
	}
}

func (b *Brain) ChooseOpponent(_ *game.Player, active []*game.Player, banned map[string]bool) int {
	return game.RandomCandidate(b.rand, active, banned)
}

func (b *Brain) CheckLeave(self *game.Player) bool {
	return b.rand.Intn(game.HumanLeaveScale)+1 < self.LeaveRate
}

func moveList() string {
	names := make([]string, 0, len(game.Moves))
	for _, m := range game.Moves {
		names = append(names, m.Title())
	}
	return strings.Join(names, ", ")
}
