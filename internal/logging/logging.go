package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"dilemma-arena/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	mu     sync.RWMutex
	writer io.Writer = os.Stdout
	closer io.Closer
)

// Init configures the global logger. When cfg.File is set, output is teed
// into a size-limited file next to stdout.
func Init(cfg config.LogConfig) error {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	var out io.Writer = os.Stdout
	var fileCloser io.Closer
	if cfg.File != "" {
		fw, err := newSizeLimitedWriter(cfg.File, cfg.MaxMB)
		if err != nil {
			return err
		}
		out = io.MultiWriter(os.Stdout, fw)
		fileCloser = fw
	}

	var output io.Writer = out
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(level)
	ctx := zerolog.New(output).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	logger := ctx.Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger

	mu.Lock()
	prev := closer
	writer, closer = out, fileCloser
	mu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// Writer returns the raw destination chosen by Init, for handlers that
// encode their own records (slog, httplog).
func Writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// Close releases the log file, if any.
func Close() error {
	mu.Lock()
	c := closer
	closer = nil
	writer = os.Stdout
	mu.Unlock()
	if c == nil {
		return nil
	}
	return c.Close()
}
