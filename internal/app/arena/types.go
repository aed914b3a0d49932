package arena

import (
	"dilemma-arena/internal/game"
	"dilemma-arena/internal/ledger"
	"dilemma-arena/internal/narration"
)

// RunRequest describes one simulated tournament. Nil pointers fall back to
// the server defaults.
type RunRequest struct {
	Players         int           `json:"players"`
	Names           []string      `json:"names,omitempty"`
	Seed            *int64        `json:"seed,omitempty"`
	SeedPot         *int64        `json:"seed_pot,omitempty"`
	EntryStake      *int64        `json:"entry_stake,omitempty"`
	InitialChips    *int64        `json:"initial_chips,omitempty"`
	InitialChipsMax *int64        `json:"initial_chips_max,omitempty"`
	MaxRounds       int           `json:"max_rounds,omitempty"`
	MaxMatches      int           `json:"max_matches,omitempty"`
	Payoffs         *game.Payoffs `json:"payoffs,omitempty"`
	IncludeRounds   bool          `json:"include_rounds"`
}

type RunResponse struct {
	TournamentID string            `json:"tournament_id"`
	Seed         int64             `json:"seed"`
	Rules        game.Rules        `json:"rules"`
	Matches      int               `json:"matches"`
	Rounds       int               `json:"rounds"`
	FinalPot     int64             `json:"final_pot"`
	SplitEach    int64             `json:"split_each"`
	Remainder    int64             `json:"remainder"`
	Finalists    []string          `json:"finalists"`
	Standings    []game.Standing   `json:"standings"`
	Events       []narration.Event `json:"events"`
	Ledger       LedgerSummary     `json:"ledger"`
}

type LedgerSummary struct {
	Entries int                `json:"entries"`
	House   int64              `json:"house"`
	Totals  []ledger.TypeTotal `json:"totals"`
}

type RulesResponse struct {
	Moves    []game.Move                              `json:"moves"`
	Outcomes map[game.Move]map[game.Move]game.Outcome `json:"outcomes"`
	Defaults game.Rules                               `json:"defaults"`
	Limits   Limits                                   `json:"limits"`
}

// Limits bound what a single request may ask for.
type Limits struct {
	MaxPlayers       int `json:"max_players"`
	MaxMatches       int `json:"max_matches"`
	MaxRounds        int `json:"max_rounds"`
	MaxBatch         int `json:"max_batch"`
	BatchConcurrency int `json:"batch_concurrency"`
}
