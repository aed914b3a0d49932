package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Tournament TournamentConfig
	Bots       BotConfig
	Log        LogConfig
}

// LoadDotEnv reads the given .env files (or ./.env) into the environment
// without overriding variables that are already set. Missing files are fine.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	tournamentCfg, err := LoadTournament()
	if err != nil {
		return AppConfig{}, err
	}
	botCfg, err := LoadBot()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Tournament: tournamentCfg,
		Bots:       botCfg,
		Log:        logCfg,
	}, nil
}
