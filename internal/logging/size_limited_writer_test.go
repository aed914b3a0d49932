package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSizeLimitedWriterRotates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.log")
	writer, err := newSizeLimitedWriter(path, 1)
	if err != nil {
		t.Fatalf("create writer: %v", err)
	}
	defer writer.Close()

	first := bytes.Repeat([]byte("a"), 700*1024)
	second := bytes.Repeat([]byte("b"), 700*1024)
	if _, err := writer.Write(first); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if _, err := writer.Write(second); err != nil {
		t.Fatalf("write second: %v", err)
	}

	cur, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read current: %v", err)
	}
	if !bytes.Equal(cur, second) {
		t.Fatalf("current log has %d bytes, want only the second chunk", len(cur))
	}
	old, err := os.ReadFile(path + ".1")
	if err != nil {
		t.Fatalf("read rotated: %v", err)
	}
	if !bytes.Equal(old, first) {
		t.Fatalf("rotated log has %d bytes, want the first chunk", len(old))
	}
}

func TestSizeLimitedWriterResumesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.log")
	if err := os.WriteFile(path, []byte("earlier\n"), 0o644); err != nil {
		t.Fatalf("seed log: %v", err)
	}
	writer, err := newSizeLimitedWriter(path, 1)
	if err != nil {
		t.Fatalf("create writer: %v", err)
	}
	if _, err := writer.Write([]byte("later\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "earlier\nlater\n" {
		t.Fatalf("log = %q", b)
	}
}
