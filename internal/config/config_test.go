package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.RedisURL != "localhost:6379" {
		t.Errorf("expected default redis url, got %s", cfg.RedisURL)
	}
	if cfg.StartingBalance != 10000 {
		t.Errorf("expected starting balance 10000, got %f", cfg.StartingBalance)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected 24h session TTL, got %s", cfg.SessionTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("MIN_BET", "5")
	t.Setenv("MAX_BET", "500")
	t.Setenv("SESSION_TTL", "2h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Port != "9999" {
		t.Errorf("expected port 9999, got %s", cfg.Port)
	}
	if cfg.MinBet != 5 || cfg.MaxBet != 500 {
		t.Errorf("expected bet limits 5/500, got %f/%f", cfg.MinBet, cfg.MaxBet)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("expected 2h TTL, got %s", cfg.SessionTTL)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("unparseable number", func(t *testing.T) {
		t.Setenv("MIN_BET", "lots")
		if _, err := Load(); err == nil {
			t.Error("expected error for non-numeric MIN_BET")
		}
	})

	t.Run("inverted limits", func(t *testing.T) {
		t.Setenv("MIN_BET", "100")
		t.Setenv("MAX_BET", "10")
		if _, err := Load(); err == nil {
			t.Error("expected error for max below min")
		}
	})

	t.Run("missing secret outside development", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("JWT_SECRET", "")
		if _, err := Load(); err == nil {
			t.Error("expected error for missing JWT secret in production")
		}
	})
}
