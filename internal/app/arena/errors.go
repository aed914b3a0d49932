package arena

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrTournamentFail = errors.New("tournament_failed")
)
