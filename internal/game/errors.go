package game

import "errors"

var (
	ErrInvalidMove     = errors.New("invalid_move")
	ErrInvalidOpponent = errors.New("invalid_opponent")
	ErrNoOpponent      = errors.New("no_opponent")
	ErrTooFewPlayers   = errors.New("too_few_players")
	ErrInvalidPayoffs  = errors.New("invalid_payoffs")
	ErrInvalidRules    = errors.New("invalid_rules")
)
