package game

// Override names the two-round pattern that replaced a base outcome.
type Override string

const (
	OverrideNone             Override = ""
	OverrideDoubleBlock      Override = "double_block"
	OverrideBetrayAfterBlock Override = "betray_after_block"
)

type PlayerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Chips int64  `json:"chips"`
}

func refOf(p *Player) PlayerRef {
	return PlayerRef{ID: p.ID, Name: p.Name, Chips: p.Chips}
}

type MatchInfo struct {
	TournamentID string    `json:"tournament_id"`
	MatchID      string    `json:"match_id"`
	Number       int       `json:"number"`
	Challenger   PlayerRef `json:"challenger"`
	Opponent     PlayerRef `json:"opponent"`
	Pot          int64     `json:"pot"`
}

type RoundReport struct {
	MatchID  string    `json:"match_id"`
	Round    int       `json:"round"`
	Player1  PlayerRef `json:"player1"`
	Player2  PlayerRef `json:"player2"`
	Move1    Move      `json:"move1"`
	Move2    Move      `json:"move2"`
	Base     Outcome   `json:"base"`
	Override Override  `json:"override,omitempty"`
	Transfer Transfer  `json:"transfer"`
	Pot      int64     `json:"pot"`
}

type OverrideReport struct {
	MatchID string    `json:"match_id"`
	Round   int       `json:"round"`
	Player  PlayerRef `json:"player"`
	Kind    Override  `json:"kind"`
}

type DepartureReason string

const (
	DepartureBust  DepartureReason = "bust"
	DepartureLeave DepartureReason = "leave"
)

type Departure struct {
	TournamentID string          `json:"tournament_id"`
	Player       PlayerRef       `json:"player"`
	Reason       DepartureReason `json:"reason"`
	Refund       int64           `json:"refund,omitempty"`
	Absorbed     int64           `json:"absorbed,omitempty"`
	Pot          int64           `json:"pot"`
}

// Narrator is a write-only sink for tournament progress. It must not mutate
// anything it is handed.
type Narrator interface {
	MatchStarted(info MatchInfo)
	RoundPlayed(r RoundReport)
	OverrideFired(o OverrideReport)
	MatchEnded(r MatchResult)
	PlayerLeft(d Departure)
	TournamentEnded(r Result)
}

type NopNarrator struct{}

func (NopNarrator) MatchStarted(MatchInfo) {}
func (NopNarrator) RoundPlayed(RoundReport) {}
func (NopNarrator) OverrideFired(OverrideReport) {}
func (NopNarrator) MatchEnded(MatchResult) {}
func (NopNarrator) PlayerLeft(Departure) {}
func (NopNarrator) TournamentEnded(Result) {}
