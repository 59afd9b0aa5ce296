package discordhost

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func readySession(t *testing.T) *discordgo.Session {
	t.Helper()
	state := discordgo.NewState()
	state.User = &discordgo.User{ID: "42", Bot: true}
	if err := state.GuildAdd(&discordgo.Guild{ID: "100"}); err != nil {
		t.Fatalf("seed guild: %v", err)
	}
	if err := state.GuildAdd(&discordgo.Guild{ID: "200"}); err != nil {
		t.Fatalf("seed guild: %v", err)
	}
	return &discordgo.Session{State: state}
}

func TestSessionAlreadyReady(t *testing.T) {
	h := New(readySession(t))
	select {
	case <-h.Ready():
	default:
		t.Fatalf("adapter should be ready when session state has a user")
	}
	if got := h.BotID(); got != "42" {
		t.Fatalf("unexpected bot id: %q", got)
	}
	if got := h.ServerCount(); got != 2 {
		t.Fatalf("unexpected server count: %d", got)
	}
}

func TestSessionNotReady(t *testing.T) {
	s := &discordgo.Session{State: discordgo.NewState()}
	h := New(s)
	select {
	case <-h.Ready():
		t.Fatalf("adapter should not be ready before the ready event")
	default:
	}
	if got := h.BotID(); got != "" {
		t.Fatalf("expected empty bot id before ready, got %q", got)
	}
}
