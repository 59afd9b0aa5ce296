package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DBL_TOKEN", "listing-token")
	t.Setenv("DISCORD_TOKEN", "gateway-token")
	t.Setenv("POST_INTERVAL", "60")
	t.Setenv("DBL_BASE_URL", "http://localhost:8080/api")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DBLToken != "listing-token" {
		t.Fatalf("unexpected dbl token: %q", cfg.DBLToken)
	}
	if cfg.PostInterval != time.Minute {
		t.Fatalf("unexpected post interval: %v", cfg.PostInterval)
	}
	if cfg.DBLBaseURL != "http://localhost:8080/api" {
		t.Fatalf("unexpected base url: %q", cfg.DBLBaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected default log level: %q", cfg.LogLevel)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Fatalf("unexpected default request timeout: %v", cfg.RequestTimeout)
	}
}

func TestLoadMissingDBLToken(t *testing.T) {
	t.Setenv("DBL_TOKEN", "")
	t.Setenv("DISCORD_TOKEN", "gateway-token")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "dbl_token") {
		t.Fatalf("expected dbl_token error, got %v", err)
	}
}

func TestLoadMissingDiscordToken(t *testing.T) {
	t.Setenv("DBL_TOKEN", "listing-token")
	t.Setenv("DISCORD_TOKEN", "")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "discord_token") {
		t.Fatalf("expected discord_token error, got %v", err)
	}
}

func TestLoadInvalidInterval(t *testing.T) {
	t.Setenv("DBL_TOKEN", "listing-token")
	t.Setenv("DISCORD_TOKEN", "gateway-token")
	t.Setenv("POST_INTERVAL", "0")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "post_interval") {
		t.Fatalf("expected post_interval error, got %v", err)
	}
}
