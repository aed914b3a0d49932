package game

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"dilemma-arena/internal/ids"
	"dilemma-arena/internal/ledger"
)

type Standing struct {
	Rank  int    `json:"rank"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Chips int64  `json:"chips"`
}

type Result struct {
	TournamentID string     `json:"tournament_id"`
	Matches      int        `json:"matches"`
	Rounds       int        `json:"rounds"`
	FinalPot     int64      `json:"final_pot"`
	SplitEach    int64      `json:"split_each"`
	Remainder    int64      `json:"remainder"`
	Finalists    []string   `json:"finalists"`
	Standings    []Standing `json:"standings"`
}

// Tournament owns the player pool and the shared pot. Only one match is live
// at a time, so nothing here is synchronized.
type Tournament struct {
	ID       string
	Rules    Rules
	Active   []*Player
	Past     []*Player
	Pot      int64
	Matches  int
	Rounds   int
	Rand     *rand.Rand
	Narrator Narrator
	Ledger   *ledger.Ledger

	finished bool
}

func NewTournament(players []*Player, rules Rules, rnd *rand.Rand) (*Tournament, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: %d seated", ErrTooFewPlayers, len(players))
	}
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if p == nil || p.Brain == nil {
			return nil, fmt.Errorf("%w: player without a brain", ErrInvalidRules)
		}
		if p.ID == "" {
			p.ID = ids.New()
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: duplicate player id %s", ErrInvalidRules, p.ID)
		}
		seen[p.ID] = true
	}
	if rnd == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidRules)
	}
	active := make([]*Player, len(players))
	copy(active, players)
	return &Tournament{
		ID:       ids.New(),
		Rules:    rules,
		Active:   active,
		Pot:      rules.SeedPot + int64(len(players))*rules.EntryStake,
		Rand:     rnd,
		Narrator: NopNarrator{},
	}, nil
}

// AttachLedger books the opening balances and routes every later chip
// movement through l.
func (t *Tournament) AttachLedger(l *ledger.Ledger) {
	t.Ledger = l
	l.Transfer(ledger.EntrySeedPot, ledger.HouseAccount, ledger.PotAccount, t.Rules.SeedPot, "tournament", t.ID)
	for _, p := range t.Active {
		l.Transfer(ledger.EntrySeatChips, ledger.HouseAccount, p.ID, p.Chips, "tournament", t.ID)
		l.Transfer(ledger.EntryStake, ledger.HouseAccount, ledger.PotAccount, t.Rules.EntryStake, "player", p.ID)
	}
}

func (t *Tournament) narrator() Narrator {
	if t.Narrator == nil {
		return NopNarrator{}
	}
	return t.Narrator
}

func (t *Tournament) shouldContinue() bool {
	if t.Rules.MaxMatches > 0 && t.Matches >= t.Rules.MaxMatches {
		return false
	}
	return len(t.Active) > 2 && t.Pot > t.Rules.ContinueThreshold()
}

// Run plays matches until fewer than three players remain or the pot runs
// dry, then splits what is left among the survivors.
func (t *Tournament) Run(ctx context.Context) (Result, error) {
	if t.finished {
		return Result{}, fmt.Errorf("%w: tournament %s already finished", ErrInvalidRules, t.ID)
	}
	challenger := t.Active[t.Rand.Intn(len(t.Active))]
	banned := map[string]bool{challenger.ID: true}

	for t.shouldContinue() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		idx, err := chooseOpponent(challenger, t.Active, banned)
		if err != nil {
			return Result{}, err
		}
		opponent := t.Active[idx]

		t.Matches++
		m := NewMatch(challenger, opponent, t.Pot, t.Rules)
		m.TournamentID = t.ID
		m.Number = t.Matches
		m.Observers = t.Active
		m.Narrator = t.narrator()
		m.Ledger = t.Ledger
		t.narrator().MatchStarted(MatchInfo{
			TournamentID: t.ID,
			MatchID:      m.ID,
			Number:       m.Number,
			Challenger:   refOf(challenger),
			Opponent:     refOf(opponent),
			Pot:          t.Pot,
		})

		res, err := m.Play(ctx)
		t.Pot = m.Pot
		t.Rounds += res.Rounds
		if err != nil {
			return Result{}, err
		}

		challengerOut := false
		if challenger.Chips <= 0 || challenger.Brain.CheckLeave(challenger) {
			t.eliminate(challenger)
			challengerOut = true
			// A double betray can bust both sides at once; nobody stays seated below zero.
			if opponent.Chips <= 0 {
				t.eliminate(opponent)
			}
		} else if opponent.Chips <= 0 || (t.Pot > t.Rules.EntryStake && opponent.Brain.CheckLeave(opponent)) {
			t.eliminate(opponent)
		}

		switch {
		case !challengerOut:
		case t.isActive(opponent):
			challenger = opponent
		case len(t.Active) > 0:
			challenger = t.Active[t.Rand.Intn(len(t.Active))]
		}
		banned = map[string]bool{challenger.ID: true}
		if !challengerOut && t.isActive(opponent) && len(t.Active) > 2 {
			banned[opponent.ID] = true
		}
	}

	res := t.finish()
	t.narrator().TournamentEnded(res)
	return res, nil
}

// eliminate archives p. A bust player's debt is covered by the pot as far as
// the pot allows; a player leaving with chips takes back up to one stake.
func (t *Tournament) eliminate(p *Player) {
	d := Departure{TournamentID: t.ID}
	if p.Chips <= 0 {
		d.Reason = DepartureBust
		debt := -p.Chips
		covered := min(debt, t.Pot)
		t.Pot -= covered
		d.Absorbed = covered
		t.Ledger.Transfer(ledger.EntryBustAbsorb, ledger.PotAccount, p.ID, covered, "tournament", t.ID)
		t.Ledger.Transfer(ledger.EntryDebtWriteOff, ledger.HouseAccount, p.ID, debt-covered, "tournament", t.ID)
		p.Chips = 0
	} else {
		d.Reason = DepartureLeave
		refund := max(min(t.Rules.EntryStake, t.Pot), 0)
		p.Chips += refund
		t.Pot -= refund
		d.Refund = refund
		t.Ledger.Transfer(ledger.EntryLeaveRefund, ledger.PotAccount, p.ID, refund, "tournament", t.ID)
	}
	t.archive(p)
	d.Player = refOf(p)
	d.Pot = t.Pot
	t.narrator().PlayerLeft(d)
}

func (t *Tournament) archive(p *Player) {
	for i, a := range t.Active {
		if a.ID == p.ID {
			t.Active = append(t.Active[:i:i], t.Active[i+1:]...)
			break
		}
	}
	t.Past = append(t.Past, p)
}

func (t *Tournament) isActive(p *Player) bool {
	for _, a := range t.Active {
		if a.ID == p.ID {
			return true
		}
	}
	return false
}

func (t *Tournament) finish() Result {
	res := Result{
		TournamentID: t.ID,
		Matches:      t.Matches,
		Rounds:       t.Rounds,
		FinalPot:     t.Pot,
	}
	if n := int64(len(t.Active)); n > 0 && t.Pot > 0 {
		res.SplitEach = t.Pot / n
		res.Remainder = t.Pot - res.SplitEach*n
		for _, p := range t.Active {
			p.Chips += res.SplitEach
			t.Ledger.Transfer(ledger.EntryFinalSplit, ledger.PotAccount, p.ID, res.SplitEach, "tournament", t.ID)
		}
		t.Ledger.Transfer(ledger.EntrySplitRemainder, ledger.PotAccount, ledger.HouseAccount, res.Remainder, "tournament", t.ID)
	}
	t.Pot = 0

	for _, p := range t.Active {
		res.Finalists = append(res.Finalists, p.ID)
	}
	t.Past = append(t.Past, t.Active...)
	t.Active = nil
	sort.SliceStable(t.Past, func(i, j int) bool { return t.Past[i].Chips > t.Past[j].Chips })

	res.Standings = make([]Standing, 0, len(t.Past))
	for i, p := range t.Past {
		res.Standings = append(res.Standings, Standing{Rank: i + 1, ID: p.ID, Name: p.Name, Chips: p.Chips})
	}
	t.finished = true
	return res
}
