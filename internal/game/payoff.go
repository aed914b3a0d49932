package game

import "fmt"

// Payoffs holds the chip magnitudes for every outcome. Win/Triple/Share are
// paid to (or taken from) each player; DoubleBetray is taken from each player
// and DoubleBetrayPot is what the pot gains from it.
type Payoffs struct {
	Win             int64 `json:"win"`
	Triple          int64 `json:"triple"`
	Share           int64 `json:"share"`
	DoubleBetray    int64 `json:"double_betray"`
	DoubleBetrayPot int64 `json:"double_betray_pot"`
}

func DefaultPayoffs() Payoffs {
	return Payoffs{
		Win:             1,
		Triple:          3,
		Share:           3,
		DoubleBetray:    4,
		DoubleBetrayPot: 8,
	}
}

func (p Payoffs) Validate() error {
	if p.Win <= 0 || p.Triple <= 0 || p.Share <= 0 || p.DoubleBetray <= 0 || p.DoubleBetrayPot < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidPayoffs, p)
	}
	return nil
}

// Deltas returns the nominal chip change for player A and player B.
func (p Payoffs) Deltas(o Outcome) (int64, int64) {
	switch o {
	case OutcomeWin:
		return p.Win, -p.Win
	case OutcomeLose:
		return -p.Win, p.Win
	case OutcomeWinTriple:
		return p.Triple, -p.Triple
	case OutcomeLoseTriple:
		return -p.Triple, p.Triple
	case OutcomeShare:
		return p.Share, p.Share
	case OutcomeDoubleBetray:
		return -p.DoubleBetray, -p.DoubleBetray
	default:
		return 0, 0
	}
}

// PotDelta is the nominal pot change for an outcome.
func (p Payoffs) PotDelta(o Outcome) int64 {
	if o == OutcomeDoubleBetray {
		return p.DoubleBetrayPot
	}
	a, b := p.Deltas(o)
	return -(a + b)
}

// Transfer is the chip movement actually applied by one resolution.
type Transfer struct {
	Outcome  Outcome `json:"outcome"`
	DeltaA   int64   `json:"delta_a"`
	DeltaB   int64   `json:"delta_b"`
	PotDelta int64   `json:"pot_delta"`
}

// Apply mutates both players' chips and returns the transfer with the new pot.
// A share draw is capped at pot/2 per player so the pot never goes negative;
// an odd chip stays in the pot.
func (p Payoffs) Apply(o Outcome, a, b *Player, pot int64) (Transfer, int64) {
	da, db := p.Deltas(o)
	potDelta := p.PotDelta(o)
	if o == OutcomeShare {
		each := p.Share
		if half := pot / 2; half < each {
			each = max(half, 0)
		}
		da, db = each, each
		potDelta = -2 * each
	}
	a.Chips += da
	b.Chips += db
	return Transfer{Outcome: o, DeltaA: da, DeltaB: db, PotDelta: potDelta}, pot + potDelta
}
