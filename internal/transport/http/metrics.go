package httptransport

import "expvar"

var (
	metricTournamentsRunTotal    = expvar.NewInt("tournaments_run_total")
	metricTournamentsErrorsTotal = expvar.NewInt("tournaments_errors_total")
	metricMatchesPlayedTotal     = expvar.NewInt("matches_played_total")
	metricRoundsPlayedTotal      = expvar.NewInt("rounds_played_total")
	metricTournamentLastMS       = expvar.NewInt("tournament_last_ms")
	metricStreamsActive          = expvar.NewInt("tournament_streams_active")
	metricBatchRunsTotal         = expvar.NewInt("batch_runs_total")
)
