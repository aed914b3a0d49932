package game

import (
	"fmt"
	"math/rand"
)

// Rules is everything a tournament reads at construction time.
type Rules struct {
	SeedPot         int64   `json:"seed_pot"`
	EntryStake      int64   `json:"entry_stake"`
	InitialChips    int64   `json:"initial_chips"`
	InitialChipsMax int64   `json:"initial_chips_max"`
	LeaveRateMin    int     `json:"leave_rate_min"`
	LeaveRateMax    int     `json:"leave_rate_max"`
	MaxRounds       int     `json:"max_rounds"`
	MaxMatches      int     `json:"max_matches"`
	Payoffs         Payoffs `json:"payoffs"`
}

func DefaultRules() Rules {
	return Rules{
		SeedPot:      100,
		EntryStake:   5,
		InitialChips: 10,
		LeaveRateMin: 1,
		LeaveRateMax: 25,
		Payoffs:      DefaultPayoffs(),
	}
}

func (r Rules) Validate() error {
	if err := r.Payoffs.Validate(); err != nil {
		return err
	}
	switch {
	case r.SeedPot < 0:
		return fmt.Errorf("%w: seed pot %d", ErrInvalidRules, r.SeedPot)
	case r.EntryStake < 0:
		return fmt.Errorf("%w: entry stake %d", ErrInvalidRules, r.EntryStake)
	case r.InitialChips <= 0:
		return fmt.Errorf("%w: initial chips %d", ErrInvalidRules, r.InitialChips)
	case r.InitialChipsMax != 0 && r.InitialChipsMax < r.InitialChips:
		return fmt.Errorf("%w: initial chips range %d..%d", ErrInvalidRules, r.InitialChips, r.InitialChipsMax)
	case r.LeaveRateMin < 0 || r.LeaveRateMax < r.LeaveRateMin:
		return fmt.Errorf("%w: leave rate range %d..%d", ErrInvalidRules, r.LeaveRateMin, r.LeaveRateMax)
	case r.MaxRounds < 0:
		return fmt.Errorf("%w: max rounds %d", ErrInvalidRules, r.MaxRounds)
	case r.MaxMatches < 0:
		return fmt.Errorf("%w: max matches %d", ErrInvalidRules, r.MaxMatches)
	}
	return nil
}

// ContinueThreshold is the pot a tournament needs to start another match:
// one full share payout plus an entry stake.
func (r Rules) ContinueThreshold() int64 {
	return 2*r.Payoffs.Share + r.EntryStake
}

func (r Rules) drawChips(rnd *rand.Rand) int64 {
	if r.InitialChipsMax <= r.InitialChips {
		return r.InitialChips
	}
	return r.InitialChips + rnd.Int63n(r.InitialChipsMax-r.InitialChips+1)
}

func (r Rules) drawLeaveRate(rnd *rand.Rand) int {
	if r.LeaveRateMax <= r.LeaveRateMin {
		return r.LeaveRateMin
	}
	return r.LeaveRateMin + rnd.Intn(r.LeaveRateMax-r.LeaveRateMin+1)
}
