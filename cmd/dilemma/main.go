package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"dilemma-arena/internal/config"
	"dilemma-arena/internal/game"
	"dilemma-arena/internal/human"
	"dilemma-arena/internal/logging"
	"dilemma-arena/internal/narration"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}
	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	if err := logging.Init(cfg.Log); err != nil {
		panic(err)
	}
	defer logging.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("tournament aborted")
		os.Exit(1)
	}
}

// run seats the configured bots (and an optional human reading from in),
// plays one tournament and narrates it to out.
func run(ctx context.Context, cfg config.AppConfig, in io.Reader, out io.Writer) (game.Result, error) {
	seed := cfg.Tournament.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	rules := cfg.Tournament.Rules(cfg.Bots)

	if cfg.Bots.Count < 0 {
		return game.Result{}, fmt.Errorf("BOT_COUNT must not be negative, got %d", cfg.Bots.Count)
	}
	players := game.NewRandomPlayers(cfg.Bots.Count, rules, rnd)
	for i, name := range cfg.Bots.Names {
		if i >= len(players) {
			break
		}
		if name = strings.TrimSpace(name); name != "" {
			players[i].Name = name
		}
	}
	var seat *human.Brain
	if name := strings.TrimSpace(cfg.Tournament.HumanPlayer); name != "" {
		seat = human.NewBrain(in, out, rnd)
		players = append(players, human.NewPlayer(name, seat, rules, rnd))
	}

	t, err := game.NewTournament(players, rules, rnd)
	if err != nil {
		return game.Result{}, err
	}
	narrator, err := newNarrator(cfg.Tournament.Narration, out)
	if err != nil {
		return game.Result{}, err
	}
	t.Narrator = narrator

	log.Info().
		Str("tournament_id", t.ID).
		Int64("seed", seed).
		Int("players", len(players)).
		Int64("pot", t.Pot).
		Msg("tournament starting")
	res, err := t.Run(ctx)
	if err != nil {
		if seat != nil && seat.Err() != nil {
			err = errors.Join(err, seat.Err())
		}
		return game.Result{}, err
	}
	return res, nil
}

func newNarrator(kind string, out io.Writer) (game.Narrator, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "console":
		return narration.NewConsole(out), nil
	case "log":
		return narration.NewLog(log.Logger), nil
	case "both":
		return narration.Multi{narration.NewConsole(out), narration.NewLog(log.Logger)}, nil
	case "none":
		return game.NopNarrator{}, nil
	}
	return nil, fmt.Errorf("unknown narration %q", kind)
}
