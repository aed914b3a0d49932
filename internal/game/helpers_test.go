package game

type scriptBrain struct {
	moves      []Move
	next       int
	leave      bool
	leaveCalls int
	pick       func(active []*Player, banned map[string]bool) int
}

func (b *scriptBrain) ChooseMove(_, _ *Player) Move {
	m := b.moves[b.next%len(b.moves)]
	b.next++
	return m
}

func (b *scriptBrain) ChooseOpponent(_ *Player, active []*Player, banned map[string]bool) int {
	if b.pick != nil {
		return b.pick(active, banned)
	}
	c := Candidates(active, banned)
	if len(c) == 0 {
		return -1
	}
	return c[0]
}

func (b *scriptBrain) CheckLeave(_ *Player) bool {
	b.leaveCalls++
	return b.leave
}

func scripted(id string, chips int64, moves ...Move) *Player {
	return &Player{ID: id, Name: id, Chips: chips, Brain: &scriptBrain{moves: moves}}
}

type recordingNarrator struct {
	NopNarrator
	matches    []MatchInfo
	rounds     []RoundReport
	overrides  []OverrideReport
	ended      []MatchResult
	departures []Departure
	results    []Result
	calls      []string
}

func (r *recordingNarrator) MatchStarted(info MatchInfo) { r.matches = append(r.matches, info) }
func (r *recordingNarrator) RoundPlayed(rep RoundReport) {
	r.rounds = append(r.rounds, rep)
	r.calls = append(r.calls, "round")
}

func (r *recordingNarrator) OverrideFired(o OverrideReport) {
	r.overrides = append(r.overrides, o)
	r.calls = append(r.calls, "override")
}

func (r *recordingNarrator) MatchEnded(res MatchResult) { r.ended = append(r.ended, res) }
func (r *recordingNarrator) PlayerLeft(d Departure) { r.departures = append(r.departures, d) }
func (r *recordingNarrator) TournamentEnded(res Result) { r.results = append(r.results, res) }
