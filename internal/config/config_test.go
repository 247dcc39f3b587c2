package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "bytesift.yaml", "threads: 4\nmax_bytes: 123\nmin_confidence: 0.7\nsample_bytes: 2048\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Threads == nil || *cfg.Threads != 4 {
		t.Fatalf("expected threads=4, got %#v", cfg.Threads)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 123 {
		t.Fatalf("expected max_bytes=123, got %#v", cfg.MaxBytes)
	}
	if cfg.MinConfidence == nil || *cfg.MinConfidence != 0.7 {
		t.Fatalf("expected min_confidence=0.7, got %#v", cfg.MinConfidence)
	}
	if cfg.SampleBytes == nil || *cfg.SampleBytes != 2048 {
		t.Fatalf("expected sample_bytes=2048, got %#v", cfg.SampleBytes)
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "bytesift.yaml", "threads: 1\n")
	writeTemp(t, dir, ".bytesift.yaml", "threads: 7\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.Threads == nil || *cfg.Threads != 7 {
		t.Fatalf("expected threads=7 from .bytesift.yaml, got %#v", cfg.Threads)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	if _, err := LoadLocal(t.TempDir()); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "bytesift")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yml"), []byte("threads: 9\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.Threads == nil || *cfg.Threads != 9 {
		t.Fatalf("expected threads=9 from global config, got %#v", cfg.Threads)
	}
}
