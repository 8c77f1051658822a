package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.App.Port)
	}
	if cfg.Store.Driver != StoreDriverFile {
		t.Errorf("driver = %q, want %q", cfg.Store.Driver, StoreDriverFile)
	}
	if cfg.Store.DataDir != "data" {
		t.Errorf("data dir = %q, want data", cfg.Store.DataDir)
	}
	if cfg.Auth.Username != "practitioner" {
		t.Errorf("auth username = %q", cfg.Auth.Username)
	}
	if cfg.Auth.Enabled() {
		t.Error("auth should be disabled without a password hash")
	}
	if cfg.JWT.AccessExpiry != 15*time.Minute {
		t.Errorf("access expiry = %v", cfg.JWT.AccessExpiry)
	}
	if cfg.JWT.RefreshExpiry != 7*24*time.Hour {
		t.Errorf("refresh expiry = %v", cfg.JWT.RefreshExpiry)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_DRIVER", StoreDriverMemory)
	t.Setenv("AUTH_PASSWORD_HASH", "$2a$10$example")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.App.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.App.Port)
	}
	if cfg.Store.Driver != StoreDriverMemory {
		t.Errorf("driver = %q, want %q", cfg.Store.Driver, StoreDriverMemory)
	}
	if !cfg.Auth.Enabled() {
		t.Error("auth should be enabled with a password hash")
	}
	if cfg.JWT.AccessExpiry != 30*time.Minute {
		t.Errorf("access expiry = %v, want 30m", cfg.JWT.AccessExpiry)
	}
}

func TestLoadConfigBadExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY", "not-a-duration")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.JWT.AccessExpiry != 15*time.Minute {
		t.Errorf("access expiry = %v, want fallback 15m", cfg.JWT.AccessExpiry)
	}
}
