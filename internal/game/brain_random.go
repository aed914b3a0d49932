package game

import (
	"fmt"
	"math/rand"

	"dilemma-arena/internal/ids"
)

const (
	BotLeaveScale   = 100
	HumanLeaveScale = 1000
)

// RandomBrain plays uniformly random moves and leaves with probability
// (LeaveRate-1)/Scale after each match.
type RandomBrain struct {
	Rand  *rand.Rand
	Scale int
}

func NewRandomBrain(rnd *rand.Rand) *RandomBrain {
	return &RandomBrain{Rand: rnd, Scale: BotLeaveScale}
}

func (b *RandomBrain) ChooseMove(_, _ *Player) Move {
	return Moves[b.Rand.Intn(len(Moves))]
}

func (b *RandomBrain) ChooseOpponent(_ *Player, active []*Player, banned map[string]bool) int {
	return RandomCandidate(b.Rand, active, banned)
}

func (b *RandomBrain) CheckLeave(self *Player) bool {
	scale := b.Scale
	if scale <= 0 {
		scale = BotLeaveScale
	}
	return b.Rand.Intn(scale)+1 < self.LeaveRate
}

// RandomCandidate picks a uniform non-banned index, or -1 when none exists.
func RandomCandidate(rnd *rand.Rand, active []*Player, banned map[string]bool) int {
	c := Candidates(active, banned)
	if len(c) == 0 {
		return -1
	}
	return c[rnd.Intn(len(c))]
}

// NewRandomPlayers seats n bots named "Opponent 1".."Opponent n".
func NewRandomPlayers(n int, rules Rules, rnd *rand.Rand) []*Player {
	n = max(n, 0)
	players := make([]*Player, 0, n)
	for i := 1; i <= n; i++ {
		players = append(players, &Player{
			ID:        ids.New(),
			Name:      fmt.Sprintf("Opponent %d", i),
			Chips:     rules.drawChips(rnd),
			LeaveRate: rules.drawLeaveRate(rnd),
			Brain:     NewRandomBrain(rnd),
		})
	}
	return players
}
