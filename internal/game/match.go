package game

import (
	"context"
	"fmt"

	"dilemma-arena/internal/ids"
	"dilemma-arena/internal/ledger"
)

type EndReason string

const (
	EndBust     EndReason = "bust"
	EndTie      EndReason = "tie"
	EndRoundCap EndReason = "round_cap"
	EndCanceled EndReason = "canceled"
)

type MatchResult struct {
	ID          string    `json:"id"`
	Number      int       `json:"number"`
	Player1     PlayerRef `json:"player1"`
	Player2     PlayerRef `json:"player2"`
	Rounds      int       `json:"rounds"`
	Pot         int64     `json:"pot"`
	LastOutcome Outcome   `json:"last_outcome"`
	Reason      EndReason `json:"reason"`
}

// Match is one pairing. It borrows both players from the tournament pool and
// mutates their chips in place; the tournament reads Pot back when it ends.
type Match struct {
	ID           string
	TournamentID string
	Number       int
	Players      [2]*Player
	Pot          int64
	Round        int
	Payoffs      Payoffs
	MaxRounds    int

	// Observers receive an observation every round. Defaults to both players.
	Observers []*Player
	Narrator  Narrator
	Ledger    *ledger.Ledger

	last        [2]Move
	hasLast     bool
	lastOutcome Outcome
}

func NewMatch(p1, p2 *Player, pot int64, rules Rules) *Match {
	return &Match{
		ID:        ids.New(),
		Players:   [2]*Player{p1, p2},
		Pot:       pot,
		Payoffs:   rules.Payoffs,
		MaxRounds: rules.MaxRounds,
		Observers: []*Player{p1, p2},
		Narrator:  NopNarrator{},
	}
}

// LastMoves returns the moves of the previous round, if any.
func (m *Match) LastMoves() ([2]Move, bool) {
	return m.last, m.hasLast
}

// PlayRound collects both moves, resolves them and applies the payoff.
func (m *Match) PlayRound(ctx context.Context) (RoundReport, error) {
	if err := ctx.Err(); err != nil {
		return RoundReport{}, err
	}
	a, b := m.Players[0], m.Players[1]
	m.Round++

	mv1, err := chooseMove(a, b)
	if err != nil {
		return RoundReport{}, err
	}
	mv2, err := chooseMove(b, a)
	if err != nil {
		return RoundReport{}, err
	}

	base := Resolve(mv1, mv2)
	outcome, fired := m.applyOverrides(mv1, mv2, base)
	override := OverrideNone
	if len(fired) > 0 {
		override = fired[len(fired)-1].Kind
	}

	transfer, pot := m.Payoffs.Apply(outcome, a, b, m.Pot)
	m.Pot = pot
	m.book(transfer)

	n := len(m.Observers)
	for _, p := range m.Observers {
		p.RecordRound(Observation{
			MatchID:       m.ID,
			Round:         m.Round,
			PlayerCount:   n,
			Player1ID:     a.ID,
			Player2ID:     b.ID,
			Player1Action: mv1,
			Player2Action: mv2,
			Reward:        Reward(p.Chips, m.Pot, n),
		})
	}

	m.last = [2]Move{mv1, mv2}
	m.hasLast = true
	m.lastOutcome = outcome

	report := RoundReport{
		MatchID:  m.ID,
		Round:    m.Round,
		Player1:  refOf(a),
		Player2:  refOf(b),
		Move1:    mv1,
		Move2:    mv2,
		Base:     base,
		Override: override,
		Transfer: transfer,
		Pot:      m.Pot,
	}
	m.narrator().RoundPlayed(report)
	for _, o := range fired {
		m.narrator().OverrideFired(o)
	}
	return report, nil
}

// applyOverrides checks the two-round patterns in a fixed order. When more
// than one fires, the last one decides the outcome. Firings are returned in
// order so they can be narrated after the round itself.
func (m *Match) applyOverrides(mv1, mv2 Move, base Outcome) (Outcome, []OverrideReport) {
	prev, ok := m.LastMoves()
	if !ok {
		return base, nil
	}
	outcome := base
	var fired []OverrideReport
	fire := func(idx int, kind Override, o Outcome) {
		outcome = o
		fired = append(fired, OverrideReport{
			MatchID: m.ID,
			Round:   m.Round,
			Player:  refOf(m.Players[idx]),
			Kind:    kind,
		})
	}
	if mv1 == Block && prev[0] == Block && mv2 == Betray {
		fire(0, OverrideDoubleBlock, OutcomeLoseTriple)
	}
	if mv2 == Block && prev[1] == Block && mv1 == Betray {
		fire(1, OverrideDoubleBlock, OutcomeWinTriple)
	}
	if mv1 == Betray && prev[0] == Betray && prev[1] == Block {
		fire(0, OverrideBetrayAfterBlock, OutcomeLose)
	}
	if mv2 == Betray && prev[1] == Betray && prev[0] == Block {
		fire(1, OverrideBetrayAfterBlock, OutcomeWin)
	}
	return outcome, fired
}

func (m *Match) done() (EndReason, bool) {
	switch {
	case m.Players[0].Chips <= 0 || m.Players[1].Chips <= 0:
		return EndBust, true
	case m.lastOutcome == OutcomeTie && m.Round > 1:
		return EndTie, true
	case m.MaxRounds > 0 && m.Round >= m.MaxRounds:
		return EndRoundCap, true
	}
	return "", false
}

// Play runs rounds until a player is bust or a tie happens after the first
// round. A first-round tie never ends the match.
func (m *Match) Play(ctx context.Context) (MatchResult, error) {
	reason, over := m.done()
	for !over {
		if _, err := m.PlayRound(ctx); err != nil {
			var why EndReason
			if ctx.Err() != nil {
				why = EndCanceled
			}
			return m.result(why), fmt.Errorf("match %d round %d: %w", m.Number, m.Round, err)
		}
		reason, over = m.done()
	}
	res := m.result(reason)
	m.narrator().MatchEnded(res)
	return res, nil
}

func (m *Match) result(reason EndReason) MatchResult {
	return MatchResult{
		ID:          m.ID,
		Number:      m.Number,
		Player1:     refOf(m.Players[0]),
		Player2:     refOf(m.Players[1]),
		Rounds:      m.Round,
		Pot:         m.Pot,
		LastOutcome: m.lastOutcome,
		Reason:      reason,
	}
}

func (m *Match) book(t Transfer) {
	if m.Ledger == nil {
		return
	}
	a, b := m.Players[0].ID, m.Players[1].ID
	switch t.Outcome {
	case OutcomeWin, OutcomeLose, OutcomeWinTriple, OutcomeLoseTriple:
		m.Ledger.Transfer(ledger.EntryRoundPayoff, b, a, t.DeltaA, "match", m.ID)
	case OutcomeShare:
		m.Ledger.Transfer(ledger.EntryShareDraw, ledger.PotAccount, a, t.DeltaA, "match", m.ID)
		m.Ledger.Transfer(ledger.EntryShareDraw, ledger.PotAccount, b, t.DeltaB, "match", m.ID)
	case OutcomeDoubleBetray:
		m.Ledger.Transfer(ledger.EntryDoubleBetray, a, ledger.PotAccount, -t.DeltaA, "match", m.ID)
		m.Ledger.Transfer(ledger.EntryDoubleBetray, b, ledger.PotAccount, -t.DeltaB, "match", m.ID)
		if extra := t.PotDelta + t.DeltaA + t.DeltaB; extra != 0 {
			m.Ledger.Transfer(ledger.EntryDoubleBetray, ledger.HouseAccount, ledger.PotAccount, extra, "match", m.ID)
		}
	}
}

func (m *Match) narrator() Narrator {
	if m.Narrator == nil {
		return NopNarrator{}
	}
	return m.Narrator
}
