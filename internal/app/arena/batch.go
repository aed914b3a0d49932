package arena

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// BatchRequest runs the same tournament setup Runs times. With a seed, run i
// uses seed+i so the whole batch is reproducible.
type BatchRequest struct {
	Runs    int        `json:"runs"`
	Request RunRequest `json:"request"`
}

type BatchResponse struct {
	Runs       []RunSummary   `json:"runs"`
	WinsByName map[string]int `json:"wins_by_name"`
	AvgMatches float64        `json:"avg_matches"`
	AvgRounds  float64        `json:"avg_rounds"`
}

type RunSummary struct {
	TournamentID string `json:"tournament_id"`
	Seed         int64  `json:"seed"`
	Matches      int    `json:"matches"`
	Rounds       int    `json:"rounds"`
	Winner       string `json:"winner"`
	WinnerChips  int64  `json:"winner_chips"`
}

// RunBatch plays independent tournaments concurrently, at most
// Limits.BatchConcurrency at a time. The first failure cancels the rest.
func (s *Service) RunBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error) {
	if req.Runs < 1 || (s.limits.MaxBatch > 0 && req.Runs > s.limits.MaxBatch) {
		return nil, fmt.Errorf("%w: runs must be 1..%d", ErrInvalidRequest, s.limits.MaxBatch)
	}
	base := s.now().UnixNano()
	if req.Request.Seed != nil {
		base = *req.Request.Seed
	}

	summaries := make([]RunSummary, req.Runs)
	g, gCtx := errgroup.WithContext(ctx)
	if s.limits.BatchConcurrency > 0 {
		g.SetLimit(s.limits.BatchConcurrency)
	}
	for i := 0; i < req.Runs; i++ {
		run := req.Request
		seed := base + int64(i)
		run.Seed = &seed
		run.IncludeRounds = false
		g.Go(func() error {
			resp, err := s.Run(gCtx, run)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			sum := RunSummary{
				TournamentID: resp.TournamentID,
				Seed:         resp.Seed,
				Matches:      resp.Matches,
				Rounds:       resp.Rounds,
			}
			if len(resp.Standings) > 0 {
				sum.Winner = resp.Standings[0].Name
				sum.WinnerChips = resp.Standings[0].Chips
			}
			summaries[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &BatchResponse{Runs: summaries, WinsByName: map[string]int{}}
	for _, sum := range summaries {
		out.WinsByName[sum.Winner]++
		out.AvgMatches += float64(sum.Matches)
		out.AvgRounds += float64(sum.Rounds)
	}
	out.AvgMatches /= float64(len(summaries))
	out.AvgRounds /= float64(len(summaries))
	return out, nil
}
