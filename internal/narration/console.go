package narration

import (
	"fmt"
	"io"

	"dilemma-arena/internal/game"
)

// Console writes a play-by-play for people watching a terminal.
type Console struct {
	w     io.Writer
	names map[string]string
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w, names: map[string]string{}}
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.w, format, args...)
}

func (c *Console) name(ref game.PlayerRef) string {
	c.names[ref.ID] = ref.Name
	return ref.Name
}

func (c *Console) MatchStarted(info game.MatchInfo) {
	c.printf("\nNew match, Match %d: %s challenges %s!\n", info.Number, c.name(info.Challenger), c.name(info.Opponent))
}

func (c *Console) RoundPlayed(r game.RoundReport) {
	p1, p2 := c.name(r.Player1), c.name(r.Player2)
	c.printf("\nRound %d! Rock, Paper, Scissors, Cooperate, Betray, Block, SHOOT!\n", r.Round)
	c.printf("%s chooses %s.\n", p1, r.Move1.Title())
	c.printf("%s chooses %s.\n", p2, r.Move2.Title())

	t := r.Transfer
	switch t.Outcome {
	case game.OutcomeTie:
		c.printf("It's a tie!\n")
	case game.OutcomeWin:
		c.printf("%s wins this round taking %d chip(s)!\n", p1, t.DeltaA)
	case game.OutcomeLose:
		c.printf("%s wins this round taking %d chip(s)!\n", p2, t.DeltaB)
	case game.OutcomeWinTriple:
		c.printf("%s betrays %s and takes %d chips!\n", p1, p2, t.DeltaA)
	case game.OutcomeLoseTriple:
		c.printf("%s betrays %s and takes %d chips!\n", p2, p1, t.DeltaB)
	case game.OutcomeShare:
		c.printf("%s and %s share %d chips from the pot! (%d each)\n", p1, p2, t.DeltaA+t.DeltaB, t.DeltaA)
	case game.OutcomeDoubleBetray:
		c.printf("%s and %s both betray! Each puts %d chips in the pot!\n", p1, p2, -t.DeltaA)
	}
	c.printf("Pot: %d chips.\nPlayer %s with %d chips.\nPlayer %s with %d chips.\n", r.Pot, p1, r.Player1.Chips, p2, r.Player2.Chips)
}

func (c *Console) OverrideFired(o game.OverrideReport) {
	switch o.Kind {
	case game.OverrideDoubleBlock:
		c.printf("%s tried blocking twice in a row!\n", c.name(o.Player))
	case game.OverrideBetrayAfterBlock:
		c.printf("%s tried to betray after being blocked!\n", c.name(o.Player))
	}
}

func (c *Console) MatchEnded(game.MatchResult) {}

func (c *Console) PlayerLeft(d game.Departure) {
	switch d.Reason {
	case game.DepartureBust:
		c.printf("\n%s has no more chips and leaves the game.\n", c.name(d.Player))
	default:
		c.printf("\n%s leaves with what they have.\n", c.name(d.Player))
	}
}

func (c *Console) TournamentEnded(r game.Result) {
	for _, st := range r.Standings {
		if _, ok := c.names[st.ID]; !ok && st.ID != "" {
			c.names[st.ID] = st.Name
		}
	}
	finalists := make([]string, 0, len(r.Finalists))
	for _, id := range r.Finalists {
		finalists = append(finalists, c.names[id])
	}
	switch len(finalists) {
	case 0:
	case 1:
		c.printf("\nEnd of game, %s wins the last %d chips!\n", finalists[0], r.FinalPot)
	default:
		c.printf("\nEnd of game, %s win and split the last %d chips!\n", joinNames(finalists), r.FinalPot)
	}
	for _, s := range r.Standings {
		c.printf("Player %s with %d chips.\n", s.Name, s.Chips)
	}
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	out := names[0]
	for _, n := range names[1 : len(names)-1] {
		out += ", " + n
	}
	return out + " and " + names[len(names)-1]
}
