package game

import "fmt"

// Brain supplies every decision a seat makes. Implementations must return
// valid values; the engine aborts the run when they do not.
type Brain interface {
	ChooseMove(self, opponent *Player) Move
	// ChooseOpponent returns an index into active whose ID is not banned.
	ChooseOpponent(self *Player, active []*Player, banned map[string]bool) int
	CheckLeave(self *Player) bool
}

// RoundObserver is implemented by brains that learn from past rounds.
type RoundObserver interface {
	ObserveRound(obs Observation)
}

// Observation is what every seated player sees after each round.
type Observation struct {
	MatchID       string  `json:"match_id"`
	Round         int     `json:"round"`
	PlayerCount   int     `json:"player_count"`
	Player1ID     string  `json:"player1_id"`
	Player2ID     string  `json:"player2_id"`
	Player1Action Move    `json:"player1_action"`
	Player2Action Move    `json:"player2_action"`
	Reward        float64 `json:"reward"`
}

type Player struct {
	ID        string
	Name      string
	Chips     int64
	LeaveRate int
	History   []Observation
	Brain     Brain
}

func (p *Player) RecordRound(obs Observation) {
	p.History = append(p.History, obs)
	if o, ok := p.Brain.(RoundObserver); ok {
		o.ObserveRound(obs)
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("Player %s with %d chips.", p.Name, p.Chips)
}

// Reward is the pot-normalized score of a player at a table of n players.
func Reward(chips, pot int64, n int) float64 {
	if n <= 0 {
		return float64(chips)
	}
	return (float64(chips) + float64(pot)/float64(n)) * float64(n)
}

// Candidates returns the indexes of active players that are not banned.
func Candidates(active []*Player, banned map[string]bool) []int {
	out := make([]int, 0, len(active))
	for i, p := range active {
		if !banned[p.ID] {
			out = append(out, i)
		}
	}
	return out
}

func chooseMove(p, opponent *Player) (Move, error) {
	m := p.Brain.ChooseMove(p, opponent)
	if !m.Valid() {
		return 0, fmt.Errorf("%w: player %s returned %s", ErrInvalidMove, p.Name, m)
	}
	return m, nil
}

func chooseOpponent(p *Player, active []*Player, banned map[string]bool) (int, error) {
	if len(Candidates(active, banned)) == 0 {
		return 0, fmt.Errorf("%w: player %s has nobody to challenge", ErrNoOpponent, p.Name)
	}
	idx := p.Brain.ChooseOpponent(p, active, banned)
	if idx < 0 || idx >= len(active) || banned[active[idx].ID] {
		return 0, fmt.Errorf("%w: player %s picked index %d", ErrInvalidOpponent, p.Name, idx)
	}
	return idx, nil
}
