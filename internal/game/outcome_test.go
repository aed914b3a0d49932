package game

import (
	"errors"
	"testing"
)

func TestResolveDiagonal(t *testing.T) {
	want := map[Move]Outcome{
		Rock:      OutcomeTie,
		Paper:     OutcomeTie,
		Scissors:  OutcomeTie,
		Cooperate: OutcomeShare,
		Betray:    OutcomeDoubleBetray,
		Block:     OutcomeTie,
	}
	for m, o := range want {
		got := Resolve(m, m)
		if got != o {
			t.Fatalf("Resolve(%s, %s) = %s, want %s", m, m, got, o)
		}
		if !got.Mutual() {
			t.Fatalf("%s should be mutual", got)
		}
	}
	for _, o := range []Outcome{OutcomeWin, OutcomeLose, OutcomeWinTriple, OutcomeLoseTriple} {
		if o.Mutual() {
			t.Fatalf("%s should not be mutual", o)
		}
	}
}

func TestResolveIsAntisymmetric(t *testing.T) {
	for _, a := range Moves {
		for _, b := range Moves {
			got := Resolve(a, b)
			if got == "" {
				t.Fatalf("Resolve(%s, %s) undefined", a, b)
			}
			if back := Resolve(b, a); back != got.Mirror() {
				t.Fatalf("Resolve(%s, %s) = %s but Resolve(%s, %s) = %s", a, b, got, b, a, back)
			}
		}
	}
}

func TestResolveSpecialPairs(t *testing.T) {
	tests := []struct {
		a, b Move
		want Outcome
	}{
		{Cooperate, Betray, OutcomeLoseTriple},
		{Betray, Cooperate, OutcomeWinTriple},
		{Betray, Block, OutcomeLose},
		{Block, Cooperate, OutcomeLose},
		{Rock, Cooperate, OutcomeWin},
		{Scissors, Block, OutcomeTie},
		{Paper, Betray, OutcomeLose},
	}
	for _, tt := range tests {
		if got := Resolve(tt.a, tt.b); got != tt.want {
			t.Fatalf("Resolve(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("  BeTrAy ")
	if err != nil || m != Betray {
		t.Fatalf("ParseMove = %v, %v; want betray", m, err)
	}
	if _, err := ParseMove("lizard"); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	if Block.Title() != "Block" {
		t.Fatalf("Title() = %q, want Block", Block.Title())
	}
	if Move(7).Valid() {
		t.Fatal("move 7 should be invalid")
	}
}
