package config

import (
	"dilemma-arena/internal/game"

	"github.com/caarlos0/env/v11"
)

type TournamentConfig struct {
	SeedPot         int64 `env:"SEED_POT" envDefault:"100"`
	EntryStake      int64 `env:"ENTRY_STAKE" envDefault:"5"`
	InitialChips    int64 `env:"INITIAL_CHIPS" envDefault:"10"`
	InitialChipsMax int64 `env:"INITIAL_CHIPS_MAX" envDefault:"0"`
	MaxRounds       int   `env:"MAX_ROUNDS_PER_MATCH" envDefault:"0"`
	MaxMatches      int   `env:"MAX_MATCHES" envDefault:"0"`
	Seed            int64 `env:"SEED" envDefault:"0"`

	PayoffWin             int64 `env:"PAYOFF_WIN" envDefault:"1"`
	PayoffTriple          int64 `env:"PAYOFF_TRIPLE" envDefault:"3"`
	PayoffShare           int64 `env:"PAYOFF_SHARE" envDefault:"3"`
	PayoffDoubleBetray    int64 `env:"PAYOFF_DOUBLE_BETRAY" envDefault:"4"`
	PayoffDoubleBetrayPot int64 `env:"PAYOFF_DOUBLE_BETRAY_POT" envDefault:"8"`

	HumanPlayer string `env:"HUMAN_PLAYER"`
	Narration   string `env:"NARRATION" envDefault:"console"`
}

func LoadTournament() (TournamentConfig, error) {
	var cfg TournamentConfig
	err := env.Parse(&cfg)
	return cfg, err
}

// Rules converts the tournament and bot settings into engine rules.
func (c TournamentConfig) Rules(bots BotConfig) game.Rules {
	return game.Rules{
		SeedPot:         c.SeedPot,
		EntryStake:      c.EntryStake,
		InitialChips:    c.InitialChips,
		InitialChipsMax: c.InitialChipsMax,
		LeaveRateMin:    bots.LeaveRateMin,
		LeaveRateMax:    bots.LeaveRateMax,
		MaxRounds:       c.MaxRounds,
		MaxMatches:      c.MaxMatches,
		Payoffs: game.Payoffs{
			Win:             c.PayoffWin,
			Triple:          c.PayoffTriple,
			Share:           c.PayoffShare,
			DoubleBetray:    c.PayoffDoubleBetray,
			DoubleBetrayPot: c.PayoffDoubleBetrayPot,
		},
	}
}
