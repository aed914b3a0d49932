package narration

import "dilemma-arena/internal/game"

type EventType string

const (
	EventMatchStarted    EventType = "match_started"
	EventRoundPlayed     EventType = "round_played"
	EventOverrideFired   EventType = "override_fired"
	EventMatchEnded      EventType = "match_ended"
	EventPlayerLeft      EventType = "player_left"
	EventTournamentEnded EventType = "tournament_ended"
)

// Event is one entry of a tournament replay. Seq starts at 1.
type Event struct {
	Seq     int       `json:"seq"`
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
}

// Recorder keeps every event in memory, optionally skipping rounds.
// OnEvent, when set, sees each event as soon as it is recorded.
type Recorder struct {
	SkipRounds bool
	OnEvent    func(Event)
	events     []Event
}

func (r *Recorder) add(typ EventType, payload any) {
	ev := Event{Seq: len(r.events) + 1, Type: typ, Payload: payload}
	r.events = append(r.events, ev)
	if r.OnEvent != nil {
		r.OnEvent(ev)
	}
}

func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) MatchStarted(info game.MatchInfo) { r.add(EventMatchStarted, info) }

func (r *Recorder) RoundPlayed(rep game.RoundReport) {
	if r.SkipRounds {
		return
	}
	r.add(EventRoundPlayed, rep)
}

func (r *Recorder) OverrideFired(o game.OverrideReport) { r.add(EventOverrideFired, o) }
func (r *Recorder) MatchEnded(res game.MatchResult) { r.add(EventMatchEnded, res) }
func (r *Recorder) PlayerLeft(d game.Departure) { r.add(EventPlayerLeft, d) }
func (r *Recorder) TournamentEnded(res game.Result) { r.add(EventTournamentEnded, res) }

// Multi fans every call out to each narrator in order.
type Multi []game.Narrator

func (m Multi) MatchStarted(info game.MatchInfo) {
	for _, n := range m {
		n.MatchStarted(info)
	}
}

func (m Multi) RoundPlayed(r game.RoundReport) {
	for _, n := range m {
		n.RoundPlayed(r)
	}
}

func (m Multi) OverrideFired(o game.OverrideReport) {
	for _, n := range m {
		n.OverrideFired(o)
	}
}

func (m Multi) MatchEnded(r game.MatchResult) {
	for _, n := range m {
		n.MatchEnded(r)
	}
}

func (m Multi) PlayerLeft(d game.Departure) {
	for _, n := range m {
		n.PlayerLeft(d)
	}
}

func (m Multi) TournamentEnded(r game.Result) {
	for _, n := range m {
		n.TournamentEnded(r)
	}
}
