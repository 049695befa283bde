package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Addr)
	}
	if cfg.QuestionCount != 5 {
		t.Errorf("question count = %d, want 5", cfg.QuestionCount)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("token ttl = %s, want 24h", cfg.TokenTTL)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("addr: \":9090\"\njwt_secret: file-secret\nquestion_count: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("addr = %q, want :9090", cfg.Addr)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Errorf("jwt secret = %q", cfg.JWTSecret)
	}
	if cfg.QuestionCount != 3 {
		t.Errorf("question count = %d, want 3", cfg.QuestionCount)
	}
	// Unset fields keep their defaults.
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("token ttl = %s, want default 24h", cfg.TokenTTL)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PREPWISE_ADDR", ":7070")
	t.Setenv("PREPWISE_JWT_SECRET", "env-secret")
	t.Setenv("PREPWISE_TOKEN_TTL", "1h")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("env should override file: addr = %q", cfg.Addr)
	}
	if cfg.JWTSecret != "env-secret" {
		t.Errorf("jwt secret = %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("token ttl = %s, want 1h", cfg.TokenTTL)
	}
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q, want default", cfg.Addr)
	}
}

func TestLoad_InvalidQuestionCount(t *testing.T) {
	t.Setenv("PREPWISE_QUESTION_COUNT", "0")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for question count 0")
	}
}
