package game

type Outcome string

const (
	OutcomeTie          Outcome = "tie"
	OutcomeWin          Outcome = "win"
	OutcomeLose         Outcome = "lose"
	OutcomeWinTriple    Outcome = "win_triple"
	OutcomeLoseTriple   Outcome = "lose_triple"
	OutcomeShare        Outcome = "share"
	OutcomeDoubleBetray Outcome = "double_betray"
)

// outcomeTable[mover][opponent] is the result from the mover's side.
var outcomeTable = [moveCount][moveCount]Outcome{
	Rock:      {OutcomeTie, OutcomeLose, OutcomeWin, OutcomeWin, OutcomeLose, OutcomeTie},
	Paper:     {OutcomeWin, OutcomeTie, OutcomeLose, OutcomeWin, OutcomeLose, OutcomeTie},
	Scissors:  {OutcomeLose, OutcomeWin, OutcomeTie, OutcomeWin, OutcomeLose, OutcomeTie},
	Cooperate: {OutcomeLose, OutcomeLose, OutcomeLose, OutcomeShare, OutcomeLoseTriple, OutcomeWin},
	Betray:    {OutcomeWin, OutcomeWin, OutcomeWin, OutcomeWinTriple, OutcomeDoubleBetray, OutcomeLose},
	Block:     {OutcomeTie, OutcomeTie, OutcomeTie, OutcomeLose, OutcomeWin, OutcomeTie},
}

// Resolve looks up the outcome of mover against opponent. Both moves must be valid.
func Resolve(mover, opponent Move) Outcome {
	return outcomeTable[mover][opponent]
}

// Mirror returns the same result seen from the other side.
func (o Outcome) Mirror() Outcome {
	switch o {
	case OutcomeWin:
		return OutcomeLose
	case OutcomeLose:
		return OutcomeWin
	case OutcomeWinTriple:
		return OutcomeLoseTriple
	case OutcomeLoseTriple:
		return OutcomeWinTriple
	default:
		return o
	}
}

// Mutual reports whether the outcome treats both players alike.
func (o Outcome) Mutual() bool {
	return o == OutcomeTie || o == OutcomeShare || o == OutcomeDoubleBetray
}
