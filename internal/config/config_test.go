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
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Env != "dev" || cfg.App.LogLevel != "info" {
		t.Fatalf("unexpected app defaults: %+v", cfg.App)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr)
	}
	if cfg.Storage.Driver != "postgres" {
		t.Fatalf("unexpected driver %q", cfg.Storage.Driver)
	}
	if cfg.AccessTTL() != 24*time.Hour {
		t.Fatalf("unexpected TTL %v", cfg.AccessTTL())
	}
	if cfg.Rate.Auth.Limit != 10 || cfg.Rate.Email.Limit != 5 {
		t.Fatalf("unexpected rate defaults: %+v", cfg.Rate)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
app:
  env: prod
  log_level: warn
server:
  addr: ":9090"
storage:
  driver: memory
jwt:
  issuer: facturador
  access_ttl: 12h
smtp:
  host: smtp.example.cl
  from: no-reply@example.cl
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Env != "prod" || cfg.Server.Addr != ":9090" {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
	if cfg.Storage.Driver != "memory" {
		t.Fatalf("unexpected driver %q", cfg.Storage.Driver)
	}
	if cfg.JWT.Issuer != "facturador" || cfg.AccessTTL() != 12*time.Hour {
		t.Fatalf("jwt section not applied: %+v", cfg.JWT)
	}
	// default que el YAML no toca
	if cfg.SMTP.Port != 587 {
		t.Fatalf("unexpected smtp port %d", cfg.SMTP.Port)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("GESTION_JWT_SECRET", "desde-el-entorno")
	t.Setenv("RATE_ENABLED", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Fatalf("env override not applied: %q", cfg.Server.Addr)
	}
	if cfg.JWT.Secret != "desde-el-entorno" {
		t.Fatal("jwt secret env not applied")
	}
	if !cfg.Rate.Enabled {
		t.Fatal("rate enabled env not applied")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/no/existe/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAccessTTL_InvalidFallsBack(t *testing.T) {
	cfg := &Config{}
	cfg.JWT.AccessTTL = "no-es-duración"
	if cfg.AccessTTL() != 24*time.Hour {
		t.Fatalf("want 24h fallback, got %v", cfg.AccessTTL())
	}
}

func TestRateWindow(t *testing.T) {
	if d := RateWindow("30s", time.Minute); d != 30*time.Second {
		t.Fatalf("want 30s, got %v", d)
	}
	if d := RateWindow("basura", time.Minute); d != time.Minute {
		t.Fatalf("want fallback 1m, got %v", d)
	}
}
