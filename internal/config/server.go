package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr    string   `env:"HTTP_ADDR" envDefault:":8080"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	MaxPlayers    int `env:"ARENA_MAX_PLAYERS" envDefault:"64"`
	MaxMatches    int `env:"ARENA_MAX_MATCHES" envDefault:"10000"`
	MaxRounds     int `env:"ARENA_MAX_ROUNDS_PER_MATCH" envDefault:"1000"`
	MaxBodyBytes  int `env:"ARENA_MAX_BODY_BYTES" envDefault:"65536"`
	CaptureBodies int `env:"LOG_CAPTURE_BODY_BYTES" envDefault:"4096"`

	MaxBatch         int `env:"ARENA_MAX_BATCH" envDefault:"100"`
	BatchConcurrency int `env:"ARENA_BATCH_CONCURRENCY" envDefault:"4"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
