package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dilemma-arena/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitTeesIntoLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.log")
	err := Init(config.LogConfig{Level: "debug", File: path, MaxMB: 1, Service: "test"})
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	defer Close()

	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Fatalf("global level = %s, want debug", zerolog.GlobalLevel())
	}
	log.Info().Str("k", "v").Msg("hello file")
	if _, err := Writer().Write([]byte("raw line\n")); err != nil {
		t.Fatalf("write through Writer(): %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(b)
	if !strings.Contains(got, `"message":"hello file"`) || !strings.Contains(got, `"service":"test"`) {
		t.Fatalf("log file missing record: %s", got)
	}
	if !strings.Contains(got, "raw line") {
		t.Fatalf("log file missing raw write: %s", got)
	}
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	if err := Init(config.LogConfig{Level: "loud"}); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer Close()
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("global level = %s, want info", zerolog.GlobalLevel())
	}
	if Writer() != os.Stdout {
		t.Fatal("Writer() should be stdout without a log file")
	}
}

func TestInitFailsOnUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "arena.log")
	if err := Init(config.LogConfig{File: path}); err == nil {
		t.Fatal("expected error for unwritable log path")
	}
}
