package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":5000" {
		t.Fatalf("unexpected addr: %s", cfg.Addr)
	}
	if !cfg.SeedData {
		t.Fatal("seed data should default to true")
	}
	if cfg.AI.Model != "gpt-4o" || cfg.AI.Timeout != 30*time.Second {
		t.Fatalf("unexpected AI defaults: %+v", cfg.AI)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DASHBOARD_ADDR", ":8080")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("AI_TIMEOUT", "10s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("addr override ignored: %s", cfg.Addr)
	}
	if cfg.SeedData {
		t.Fatal("seed data override ignored")
	}
	if cfg.AI.APIKey != "sk-test" || cfg.AI.Model != "gpt-4o-mini" || cfg.AI.Timeout != 10*time.Second {
		t.Fatalf("AI overrides ignored: %+v", cfg.AI)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins not parsed: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("SEED_DATA", "maybe")
	if _, err := Load(""); err == nil {
		t.Fatal("invalid SEED_DATA accepted")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("addr: \":9090\"\nai:\n  model: custom-model\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("file addr ignored: %s", cfg.Addr)
	}
	if cfg.AI.Model != "custom-model" {
		t.Fatalf("file model ignored: %s", cfg.AI.Model)
	}
	// Untouched fields keep their defaults.
	if cfg.AI.Timeout != 30*time.Second {
		t.Fatalf("default timeout lost: %v", cfg.AI.Timeout)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
}
