package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"dilemma-arena/internal/ledger"
)

func TestNewTournamentSeedsPotWithStakes(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	players := NewRandomPlayers(4, DefaultRules(), rnd)
	tr, err := NewTournament(players, DefaultRules(), rnd)
	if err != nil {
		t.Fatalf("new tournament: %v", err)
	}
	if tr.Pot != 120 {
		t.Fatalf("Pot = %d, want 120", tr.Pot)
	}
}

func TestNewTournamentRejectsBadInput(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	if _, err := NewTournament([]*Player{scripted("a", 10, Rock)}, DefaultRules(), rnd); !errors.Is(err, ErrTooFewPlayers) {
		t.Fatalf("expected ErrTooFewPlayers, got %v", err)
	}
	dup := []*Player{scripted("a", 10, Rock), scripted("a", 10, Rock)}
	if _, err := NewTournament(dup, DefaultRules(), rnd); !errors.Is(err, ErrInvalidRules) {
		t.Fatalf("expected ErrInvalidRules for duplicate ids, got %v", err)
	}
	rules := DefaultRules()
	rules.InitialChips = 0
	if _, err := NewTournament(NewRandomPlayers(3, DefaultRules(), rnd), rules, rnd); !errors.Is(err, ErrInvalidRules) {
		t.Fatalf("expected ErrInvalidRules, got %v", err)
	}
}

func TestRandomTournamentsTerminateAndBalance(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		rules := DefaultRules()
		rules.InitialChipsMax = 20
		players := NewRandomPlayers(6, rules, rnd)
		tr, err := NewTournament(players, rules, rnd)
		if err != nil {
			t.Fatalf("seed %d: new tournament: %v", seed, err)
		}
		led := ledger.New()
		tr.AttachLedger(led)

		res, err := tr.Run(context.Background())
		if err != nil {
			t.Fatalf("seed %d: run: %v", seed, err)
		}
		if len(tr.Active) != 0 || len(tr.Past) != 6 || tr.Pot != 0 {
			t.Fatalf("seed %d: active=%d past=%d pot=%d", seed, len(tr.Active), len(tr.Past), tr.Pot)
		}
		for i := 1; i < len(tr.Past); i++ {
			if tr.Past[i-1].Chips < tr.Past[i].Chips {
				t.Fatalf("seed %d: archive not sorted at %d", seed, i)
			}
		}
		for _, p := range tr.Past {
			if p.Chips < 0 {
				t.Fatalf("seed %d: %s ended with %d chips", seed, p.Name, p.Chips)
			}
			if got := led.Balance(p.ID); got != p.Chips {
				t.Fatalf("seed %d: ledger balance %d != chips %d for %s", seed, got, p.Chips, p.Name)
			}
		}
		if led.Balance(ledger.PotAccount) != 0 || led.Net() != 0 {
			t.Fatalf("seed %d: pot balance %d net %d", seed, led.Balance(ledger.PotAccount), led.Net())
		}
		if len(res.Standings) != 6 || res.Standings[0].Rank != 1 {
			t.Fatalf("seed %d: unexpected standings %+v", seed, res.Standings)
		}
	}
}

func TestSameSeedSameTournament(t *testing.T) {
	run := func() []int64 {
		rnd := rand.New(rand.NewSource(42))
		tr, err := NewTournament(NewRandomPlayers(5, DefaultRules(), rnd), DefaultRules(), rnd)
		if err != nil {
			t.Fatalf("new tournament: %v", err)
		}
		if _, err := tr.Run(context.Background()); err != nil {
			t.Fatalf("run: %v", err)
		}
		out := make([]int64, 0, len(tr.Past))
		for _, p := range tr.Past {
			out = append(out, p.Chips)
		}
		return out
	}
	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("runs diverged at %d: %v vs %v", i, first, second)
		}
	}
}

func TestVoluntaryLeaveRefundsStake(t *testing.T) {
	players := make([]*Player, 0, 4)
	for _, id := range []string{"a", "b", "c", "d"} {
		p := scripted(id, 10, Rock)
		p.Brain.(*scriptBrain).leave = true
		players = append(players, p)
	}
	tr, err := NewTournament(players, DefaultRules(), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("new tournament: %v", err)
	}
	rec := &recordingNarrator{}
	tr.Narrator = rec

	res, err := tr.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Matches != 2 || len(rec.departures) != 2 {
		t.Fatalf("matches=%d departures=%d, want 2/2", res.Matches, len(rec.departures))
	}
	for _, d := range rec.departures {
		if d.Reason != DepartureLeave || d.Refund != 5 || d.Player.Chips != 15 {
			t.Fatalf("unexpected departure: %+v", d)
		}
	}
	// 120 - 2*5 = 110 split between the last two
	if res.SplitEach != 55 || res.Remainder != 0 {
		t.Fatalf("split=%d remainder=%d", res.SplitEach, res.Remainder)
	}
	want := []int64{65, 65, 15, 15}
	for i, s := range res.Standings {
		if s.Chips != want[i] {
			t.Fatalf("standing %d chips = %d, want %d", i, s.Chips, want[i])
		}
	}
}

func TestOpponentLeaveIgnoredWhenPotAtStake(t *testing.T) {
	players := []*Player{scripted("a", 10, Cooperate), scripted("b", 10, Cooperate), scripted("c", 10, Cooperate)}
	for _, p := range players {
		p.Brain.(*scriptBrain).leave = true
	}
	// The first challenger is drawn from the seeded source; keep it seated so
	// only the opponent's check is in play.
	first := players[rand.New(rand.NewSource(9)).Intn(len(players))]
	first.Brain.(*scriptBrain).leave = false

	rules := DefaultRules()
	rules.SeedPot = 10
	rules.MaxRounds = 4
	tr, err := NewTournament(players, rules, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("new tournament: %v", err)
	}
	rec := &recordingNarrator{}
	tr.Narrator = rec

	res, err := tr.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// pot 25 -> 19 -> 13 -> 7 -> 1 over four shares, which is below the stake
	if res.Matches != 1 || len(rec.departures) != 0 {
		t.Fatalf("matches=%d departures=%+v", res.Matches, rec.departures)
	}
	if len(res.Finalists) != 3 || res.SplitEach != 0 || res.Remainder != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	for _, p := range players {
		if p == first {
			continue
		}
		if calls := p.Brain.(*scriptBrain).leaveCalls; calls != 0 {
			t.Fatalf("%s leave checked %d times with pot at stake", p.ID, calls)
		}
	}
}

func TestDoubleBustRemovesBothPlayers(t *testing.T) {
	players := []*Player{scripted("a", 4, Betray), scripted("b", 4, Betray), scripted("c", 4, Betray)}
	tr, err := NewTournament(players, DefaultRules(), rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("new tournament: %v", err)
	}
	res, err := tr.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Matches != 1 || len(res.Finalists) != 1 {
		t.Fatalf("matches=%d finalists=%v", res.Matches, res.Finalists)
	}
	// 115 seeded + 8 from the double betray, all to the last player seated
	if res.Standings[0].Chips != 127 || res.Standings[1].Chips != 0 || res.Standings[2].Chips != 0 {
		t.Fatalf("unexpected standings: %+v", res.Standings)
	}
}

func TestBustDebtIsCoveredByPot(t *testing.T) {
	a := scripted("a", -2, Rock)
	b := scripted("b", -3, Rock)
	c := scripted("c", 10, Rock)
	tr, err := NewTournament([]*Player{a, b, c}, DefaultRules(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("new tournament: %v", err)
	}
	led := ledger.New()
	tr.Ledger = led
	tr.Pot = 3

	tr.eliminate(a)
	if tr.Pot != 1 || a.Chips != 0 {
		t.Fatalf("after a: pot=%d chips=%d", tr.Pot, a.Chips)
	}
	tr.eliminate(b)
	if tr.Pot != 0 || b.Chips != 0 {
		t.Fatalf("after b: pot=%d chips=%d", tr.Pot, b.Chips)
	}
	if len(tr.Active) != 1 || len(tr.Past) != 2 {
		t.Fatalf("active=%d past=%d", len(tr.Active), len(tr.Past))
	}
	if led.Balance(ledger.HouseAccount) != -2 {
		t.Fatalf("house wrote off %d, want 2", -led.Balance(ledger.HouseAccount))
	}
}

func TestInvalidOpponentAbortsRun(t *testing.T) {
	bad := func(active []*Player, banned map[string]bool) int { return len(active) }
	players := make([]*Player, 0, 3)
	for _, id := range []string{"a", "b", "c"} {
		p := scripted(id, 10, Rock)
		p.Brain.(*scriptBrain).pick = bad
		players = append(players, p)
	}
	tr, err := NewTournament(players, DefaultRules(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("new tournament: %v", err)
	}
	if _, err := tr.Run(context.Background()); !errors.Is(err, ErrInvalidOpponent) {
		t.Fatalf("expected ErrInvalidOpponent, got %v", err)
	}
}

func TestTwoPlayersSplitWithoutPlaying(t *testing.T) {
	a := scripted("a", 10, Rock)
	b := scripted("b", 12, Rock)
	rules := DefaultRules()
	rules.SeedPot = 11
	tr, err := NewTournament([]*Player{a, b}, rules, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("new tournament: %v", err)
	}
	res, err := tr.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Matches != 0 || res.SplitEach != 10 || res.Remainder != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Standings[0].ID != "b" || res.Standings[0].Chips != 22 {
		t.Fatalf("unexpected leader: %+v", res.Standings[0])
	}
	if _, err := tr.Run(context.Background()); !errors.Is(err, ErrInvalidRules) {
		t.Fatalf("second run should fail, got %v", err)
	}
}

func TestMatchCapEndsRockOnlyTournament(t *testing.T) {
	players := []*Player{scripted("a", 10, Rock), scripted("b", 10, Rock), scripted("c", 10, Rock)}
	rules := DefaultRules()
	rules.MaxMatches = 5
	tr, err := NewTournament(players, rules, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("new tournament: %v", err)
	}
	res, err := tr.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Matches != 5 || res.Rounds != 10 {
		t.Fatalf("matches=%d rounds=%d, want 5/10", res.Matches, res.Rounds)
	}
}

// firstChallenger mirrors the tournament's opening draw for a fresh source.
func firstChallenger(players []*Player, seed int64) *Player {
	return players[rand.New(rand.NewSource(seed)).Intn(len(players))]
}

func pairings(rec *recordingNarrator) [][2]string {
	out := make([][2]string, 0, len(rec.matches))
	for _, m := range rec.matches {
		out = append(out, [2]string{m.Challenger.ID, m.Opponent.ID})
	}
	return out
}

func TestChallengerKeepsSeatAndRotatesOpponents(t *testing.T) {
	players := []*Player{scripted("a", 50, Rock), scripted("b", 50, Rock), scripted("c", 50, Rock), scripted("d", 50, Rock)}
	first := firstChallenger(players, 2)
	var others []string
	for _, p := range players {
		if p != first {
			others = append(others, p.ID)
		}
	}

	rules := DefaultRules()
	rules.MaxMatches = 4
	tr, err := NewTournament(players, rules, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("new tournament: %v", err)
	}
	rec := &recordingNarrator{}
	tr.Narrator = rec
	if _, err := tr.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	// the previous opponent is banned, so the lowest pick alternates
	want := [][2]string{
		{first.ID, others[0]},
		{first.ID, others[1]},
		{first.ID, others[0]},
		{first.ID, others[1]},
	}
	got := pairings(rec)
	if len(got) != len(want) {
		t.Fatalf("pairings = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pairings = %v, want %v", got, want)
		}
	}
}

func TestOpponentTakesOverWhenChallengerLeaves(t *testing.T) {
	players := []*Player{scripted("a", 50, Rock), scripted("b", 50, Rock), scripted("c", 50, Rock), scripted("d", 50, Rock)}
	first := firstChallenger(players, 4)
	first.Brain.(*scriptBrain).leave = true
	var others []string
	for _, p := range players {
		if p != first {
			others = append(others, p.ID)
		}
	}

	rules := DefaultRules()
	rules.MaxMatches = 3
	tr, err := NewTournament(players, rules, rand.New(rand.NewSource(4)))
	if err != nil {
		t.Fatalf("new tournament: %v", err)
	}
	rec := &recordingNarrator{}
	tr.Narrator = rec
	if _, err := tr.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	// once the challenger leaves, nobody but the new challenger is banned
	want := [][2]string{
		{first.ID, others[0]},
		{others[0], others[1]},
		{others[0], others[2]},
	}
	got := pairings(rec)
	if len(got) != len(want) {
		t.Fatalf("pairings = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pairings = %v, want %v", got, want)
		}
	}
	if len(rec.departures) != 1 || rec.departures[0].Player.ID != first.ID || rec.departures[0].Reason != DepartureLeave {
		t.Fatalf("unexpected departures: %+v", rec.departures)
	}
}

func TestNewRandomPlayersIgnoresNegativeCount(t *testing.T) {
	if got := NewRandomPlayers(-1, DefaultRules(), rand.New(rand.NewSource(1))); len(got) != 0 {
		t.Fatalf("got %d players, want 0", len(got))
	}
}
