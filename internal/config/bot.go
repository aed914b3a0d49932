package config

import "github.com/caarlos0/env/v11"

type BotConfig struct {
	Count        int      `env:"BOT_COUNT" envDefault:"4"`
	Names        []string `env:"BOT_NAMES" envSeparator:","`
	LeaveRateMin int      `env:"LEAVE_RATE_MIN" envDefault:"1"`
	LeaveRateMax int      `env:"LEAVE_RATE_MAX" envDefault:"25"`
}

func LoadBot() (BotConfig, error) {
	var cfg BotConfig
	err := env.Parse(&cfg)
	return cfg, err
}
