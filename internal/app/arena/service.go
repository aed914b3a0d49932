package arena

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"dilemma-arena/internal/game"
	"dilemma-arena/internal/ledger"
	"dilemma-arena/internal/narration"
)

type Service struct {
	limits   Limits
	defaults game.Rules
	now      func() time.Time
}

func NewService(limits Limits, defaults game.Rules) *Service {
	return &Service{limits: limits, defaults: defaults, now: time.Now}
}

func (s *Service) Rules() *RulesResponse {
	outcomes := make(map[game.Move]map[game.Move]game.Outcome, len(game.Moves))
	for _, a := range game.Moves {
		row := make(map[game.Move]game.Outcome, len(game.Moves))
		for _, b := range game.Moves {
			row[b] = game.Resolve(a, b)
		}
		outcomes[a] = row
	}
	return &RulesResponse{
		Moves:    game.Moves[:],
		Outcomes: outcomes,
		Defaults: s.defaults,
		Limits:   s.limits,
	}
}

// Run plays one bot-only tournament to completion and returns its full
// record. Every call is independent; nothing is kept afterwards.
func (s *Service) Run(ctx context.Context, req RunRequest) (*RunResponse, error) {
	return s.RunWithEvents(ctx, req, nil)
}

// RunWithEvents is Run with onEvent called for every narration event while
// the tournament is still in progress.
func (s *Service) RunWithEvents(ctx context.Context, req RunRequest, onEvent func(narration.Event)) (*RunResponse, error) {
	rules, err := s.rulesFor(req)
	if err != nil {
		return nil, err
	}
	if req.Players < 2 || (s.limits.MaxPlayers > 0 && req.Players > s.limits.MaxPlayers) {
		return nil, fmt.Errorf("%w: players must be 2..%d", ErrInvalidRequest, s.limits.MaxPlayers)
	}
	if len(req.Names) > req.Players {
		return nil, fmt.Errorf("%w: %d names for %d players", ErrInvalidRequest, len(req.Names), req.Players)
	}

	seed := s.now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rnd := rand.New(rand.NewSource(seed))
	players := game.NewRandomPlayers(req.Players, rules, rnd)
	for i, name := range req.Names {
		if name = strings.TrimSpace(name); name != "" {
			players[i].Name = name
		}
	}

	t, err := game.NewTournament(players, rules, rnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	rec := &narration.Recorder{SkipRounds: !req.IncludeRounds, OnEvent: onEvent}
	led := ledger.New()
	t.Narrator = rec
	t.AttachLedger(led)

	res, err := t.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrTournamentFail, err)
	}
	return &RunResponse{
		TournamentID: res.TournamentID,
		Seed:         seed,
		Rules:        rules,
		Matches:      res.Matches,
		Rounds:       res.Rounds,
		FinalPot:     res.FinalPot,
		SplitEach:    res.SplitEach,
		Remainder:    res.Remainder,
		Finalists:    res.Finalists,
		Standings:    res.Standings,
		Events:       rec.Events(),
		Ledger: LedgerSummary{
			Entries: len(led.Entries()),
			House:   led.Balance(ledger.HouseAccount),
			Totals:  led.Totals(),
		},
	}, nil
}

func (s *Service) rulesFor(req RunRequest) (game.Rules, error) {
	rules := s.defaults
	if req.SeedPot != nil {
		rules.SeedPot = *req.SeedPot
	}
	if req.EntryStake != nil {
		rules.EntryStake = *req.EntryStake
	}
	if req.InitialChips != nil {
		rules.InitialChips = *req.InitialChips
	}
	if req.InitialChipsMax != nil {
		rules.InitialChipsMax = *req.InitialChipsMax
	}
	if req.Payoffs != nil {
		rules.Payoffs = *req.Payoffs
	}
	if req.MaxRounds < 0 || req.MaxMatches < 0 {
		return game.Rules{}, fmt.Errorf("%w: negative cap", ErrInvalidRequest)
	}
	rules.MaxRounds = capAt(req.MaxRounds, s.limits.MaxRounds)
	rules.MaxMatches = capAt(req.MaxMatches, s.limits.MaxMatches)
	if err := rules.Validate(); err != nil {
		return game.Rules{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return rules, nil
}

// capAt applies a server limit to a requested cap where 0 means "as much as
// allowed".
func capAt(v, limit int) int {
	if limit <= 0 {
		return v
	}
	if v == 0 || v > limit {
		return limit
	}
	return v
}
