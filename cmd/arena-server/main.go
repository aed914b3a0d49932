package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dilemma-arena/internal/app/arena"
	"dilemma-arena/internal/config"
	"dilemma-arena/internal/logging"
	httptransport "dilemma-arena/internal/transport/http"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	if err := logging.Init(logCfg); err != nil {
		panic(err)
	}
	defer logging.Close()

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config failed")
	}
	tournamentCfg, err := config.LoadTournament()
	if err != nil {
		log.Fatal().Err(err).Msg("load tournament config failed")
	}
	botCfg, err := config.LoadBot()
	if err != nil {
		log.Fatal().Err(err).Msg("load bot config failed")
	}

	svc := newService(cfg, tournamentCfg, botCfg)
	r := httptransport.NewRouter(svc, cfg)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server stopped")
}

func newService(cfg config.ServerConfig, tournamentCfg config.TournamentConfig, botCfg config.BotConfig) *arena.Service {
	limits := arena.Limits{
		MaxPlayers: cfg.MaxPlayers,
		MaxMatches: cfg.MaxMatches,
		MaxRounds:  cfg.MaxRounds,

		MaxBatch:         cfg.MaxBatch,
		BatchConcurrency: cfg.BatchConcurrency,
	}
	return arena.NewService(limits, tournamentCfg.Rules(botCfg))
}
