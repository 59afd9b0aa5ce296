package app

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dbl-hq/go-dbl/internal/config"
)

func TestNewPosterNilConfig(t *testing.T) {
	if _, err := NewPoster(nil, zap.NewNop().Sugar()); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestNewPoster(t *testing.T) {
	cfg := &config.Config{
		DBLToken:       "listing-token",
		DiscordToken:   "gateway-token",
		DBLBaseURL:     "http://localhost:8080/api",
		PostInterval:   time.Minute,
		RequestTimeout: 5 * time.Second,
	}
	p, err := NewPoster(cfg, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("NewPoster: %v", err)
	}
	if p.session == nil || p.client == nil {
		t.Fatalf("poster not fully initialized")
	}
}
