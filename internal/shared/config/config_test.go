package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
# comment
server:
  port: 8080

storage:
  driver: file
  path: data/db.json
  host: localhost
  db_port: 5432
  user: postgres
  password: secret
  database: greenwheels

auth:
  secret: hush
  token_ttl_minutes: 120
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("server port = %q", cfg.Server.Port)
	}
	if cfg.Storage.Driver != "file" || cfg.Storage.Path != "data/db.json" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Storage.Port != "5432" || cfg.Storage.Database != "greenwheels" {
		t.Errorf("storage db = %+v", cfg.Storage)
	}
	if cfg.Auth.Secret != "hush" || cfg.Auth.TokenTTLMinutes != "120" {
		t.Errorf("auth = %+v", cfg.Auth)
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("GW_TEST_PORT", "9999")

	path := writeConfig(t, `
server:
  port: ${GW_TEST_PORT:-8080}

auth:
  secret: ${GW_TEST_MISSING:-fallback}
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("port = %q, want env override 9999", cfg.Server.Port)
	}
	if cfg.Auth.Secret != "fallback" {
		t.Errorf("secret = %q, want fallback", cfg.Auth.Secret)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("LoadConfig accepted a missing file")
	}
}
