package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func chdirTemp(t *testing.T) {
	t.Helper()

	// Switch to a temp directory to avoid loading a real .env
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("could not chdir to temp dir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("could not chdir back to original dir: %v", err)
		}
	})
}

func TestLoad_Success(t *testing.T) {
	chdirTemp(t)

	envs := map[string]string{
		"SERVER_PORT":          "8080",
		"CANTO_DOMAIN":         "acme.canto.com",
		"CANTO_APP_TOKEN":      "secret-token",
		"REDIS_ADDR":           "localhost:6379",
		"HTTP_TIMEOUT_SECONDS": "10",
	}
	for k, v := range envs {
		t.Setenv(k, v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort: expected %d, got %d", 8080, cfg.ServerPort)
	}
	if cfg.CantoDomain != envs["CANTO_DOMAIN"] {
		t.Errorf("CantoDomain: expected %q, got %q", envs["CANTO_DOMAIN"], cfg.CantoDomain)
	}
	if cfg.CantoAppToken != envs["CANTO_APP_TOKEN"] {
		t.Errorf("CantoAppToken: expected %q, got %q", envs["CANTO_APP_TOKEN"], cfg.CantoAppToken)
	}
	if cfg.RedisAddr != envs["REDIS_ADDR"] {
		t.Errorf("RedisAddr: expected %q, got %q", envs["REDIS_ADDR"], cfg.RedisAddr)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout: expected %v, got %v", 10*time.Second, cfg.HTTPTimeout)
	}
}

func TestLoad_TimeoutDefault(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SERVER_PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout: expected %v, got %v", 30*time.Second, cfg.HTTPTimeout)
	}
}

func TestLoad_MissingServerPort(t *testing.T) {
	chdirTemp(t)
	os.Unsetenv("SERVER_PORT")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "SERVER_PORT is required") {
		t.Fatalf("expected SERVER_PORT error, got %v", err)
	}
}

func TestLoad_CantoCredentialsOptional(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SERVER_PORT", "8080")
	os.Unsetenv("CANTO_DOMAIN")
	os.Unsetenv("CANTO_APP_TOKEN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("missing upstream credentials must not fail boot, got %v", err)
	}
	if cfg.CantoDomain != "" || cfg.CantoAppToken != "" {
		t.Errorf("expected empty credentials, got %q / %q", cfg.CantoDomain, cfg.CantoAppToken)
	}
}

func TestLoad_SchemeDomainAccepted(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("CANTO_DOMAIN", "http://acme.canto.test:8081")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("scheme-prefixed domain must be accepted, got %v", err)
	}
	if cfg.CantoDomain != "http://acme.canto.test:8081" {
		t.Errorf("CantoDomain = %q", cfg.CantoDomain)
	}
}

func TestLoad_InvalidDomain(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("CANTO_DOMAIN", "not a domain")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for malformed domain")
	}
}
