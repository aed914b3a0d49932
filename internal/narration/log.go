package narration

import (
	"dilemma-arena/internal/game"

	"github.com/rs/zerolog"
)

// Log emits one structured event per narration call. Rounds are logged at
// debug so info level stays readable for long tournaments.
type Log struct {
	logger zerolog.Logger
}

func NewLog(logger zerolog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) MatchStarted(info game.MatchInfo) {
	l.logger.Info().
		Str("tournament_id", info.TournamentID).
		Str("match_id", info.MatchID).
		Int("match", info.Number).
		Str("challenger", info.Challenger.Name).
		Str("opponent", info.Opponent.Name).
		Int64("pot", info.Pot).
		Msg("match started")
}

func (l *Log) RoundPlayed(r game.RoundReport) {
	l.logger.Debug().
		Str("match_id", r.MatchID).
		Int("round", r.Round).
		Stringer("move1", r.Move1).
		Stringer("move2", r.Move2).
		Str("base", string(r.Base)).
		Str("outcome", string(r.Transfer.Outcome)).
		Int64("delta1", r.Transfer.DeltaA).
		Int64("delta2", r.Transfer.DeltaB).
		Int64("pot", r.Pot).
		Msg("round played")
}

func (l *Log) OverrideFired(o game.OverrideReport) {
	l.logger.Info().
		Str("match_id", o.MatchID).
		Int("round", o.Round).
		Str("player", o.Player.Name).
		Str("override", string(o.Kind)).
		Msg("override fired")
}

func (l *Log) MatchEnded(r game.MatchResult) {
	l.logger.Info().
		Str("match_id", r.ID).
		Int("match", r.Number).
		Int("rounds", r.Rounds).
		Str("reason", string(r.Reason)).
		Int64("chips1", r.Player1.Chips).
		Int64("chips2", r.Player2.Chips).
		Int64("pot", r.Pot).
		Msg("match ended")
}

func (l *Log) PlayerLeft(d game.Departure) {
	l.logger.Info().
		Str("tournament_id", d.TournamentID).
		Str("player", d.Player.Name).
		Str("reason", string(d.Reason)).
		Int64("chips", d.Player.Chips).
		Int64("refund", d.Refund).
		Int64("absorbed", d.Absorbed).
		Int64("pot", d.Pot).
		Msg("player left")
}

func (l *Log) TournamentEnded(r game.Result) {
	ev := l.logger.Info().
		Str("tournament_id", r.TournamentID).
		Int("matches", r.Matches).
		Int("rounds", r.Rounds).
		Int64("final_pot", r.FinalPot).
		Int64("split_each", r.SplitEach)
	if r.Remainder > 0 {
		ev = ev.Int64("dropped_remainder", r.Remainder)
	}
	if len(r.Standings) > 0 {
		ev = ev.Str("leader", r.Standings[0].Name).Int64("leader_chips", r.Standings[0].Chips)
	}
	ev.Msg("tournament ended")
}
