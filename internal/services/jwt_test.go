package services_test

import (
	"testing"
	"time"

	"fairmines/internal/config"
	"fairmines/internal/services"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		SessionTTL: time.Hour,
	}
}

func TestJWTService(t *testing.T) {
	jwtService := services.NewJWTService(testConfig())

	token, err := jwtService.IssueToken("session-abc")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.SessionID != "session-abc" {
		t.Errorf("expected session-abc, got %s", claims.SessionID)
	}

	t.Run("garbage token rejected", func(t *testing.T) {
		if _, err := jwtService.ValidateToken("not-a-token"); err == nil {
			t.Error("garbage token should not validate")
		}
	})

	t.Run("token from another secret rejected", func(t *testing.T) {
		other := services.NewJWTService(&config.Config{JWTSecret: "other", SessionTTL: time.Hour})
		foreign, err := other.IssueToken("session-abc")
		if err != nil {
			t.Fatalf("failed to issue token: %v", err)
		}
		if _, err := jwtService.ValidateToken(foreign); err == nil {
			t.Error("token signed with a different secret should not validate")
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := services.NewJWTService(&config.Config{JWTSecret: "test-secret", SessionTTL: -time.Minute})
		token, err := expired.IssueToken("session-abc")
		if err != nil {
			t.Fatalf("failed to issue token: %v", err)
		}
		if _, err := jwtService.ValidateToken(token); err == nil {
			t.Error("expired token should not validate")
		}
	})
}
