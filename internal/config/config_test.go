package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Ensure envs are clean to use defaults
	os.Unsetenv("DB_DRIVER")
	os.Unsetenv("DB_PATH")
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("HTTP_ADDRESS")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Driver != "sqlite3" || cfg.Database.Path == "" || cfg.HTTP.Address == "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_PostgresRequiresURL(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	t.Setenv("DB_DRIVER", "postgres")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DATABASE_URL is not set")
	}
	// When set, it should succeed
	t.Setenv("DATABASE_URL", "postgres://localhost/todos")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with DATABASE_URL set: %v", err)
	}
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("driver mismatch: %+v", cfg)
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestString_MasksURL(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://user:secret@db/todos")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := cfg.String()
	if s == "" {
		t.Fatalf("empty String()")
	}
	if strings.Contains(s, "secret") {
		t.Fatalf("String() leaks credentials: %s", s)
	}
}
