// Package discordhost adapts a discordgo session to the dbl.Host interface, so
// a bot built on discordgo can hand its session to the listing client and have
// identity and guild count read from session state.
package discordhost

import (
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/dbl-hq/go-dbl/pkg/dbl"
)

// Session wraps a *discordgo.Session. Attach it before or after the session
// opens; the ready signal fires either on the gateway READY event or, if the
// session state already carries a user, immediately.
type Session struct {
	s     *discordgo.Session
	ready chan struct{}
	once  sync.Once
}

var _ dbl.Host = (*Session)(nil)

// New wraps the given session.
func New(s *discordgo.Session) *Session {
	h := &Session{s: s, ready: make(chan struct{})}
	s.AddHandler(func(_ *discordgo.Session, _ *discordgo.Ready) {
		h.signalReady()
	})
	if s.State != nil && s.State.User != nil {
		h.signalReady()
	}
	return h
}

func (h *Session) signalReady() {
	h.once.Do(func() { close(h.ready) })
}

// ServerCount returns the number of guilds in session state.
func (h *Session) ServerCount() int {
	h.s.State.RLock()
	defer h.s.State.RUnlock()
	return len(h.s.State.Guilds)
}

// BotID returns the id of the session's own user, or an empty string before
// the session has identified.
func (h *Session) BotID() string {
	h.s.State.RLock()
	defer h.s.State.RUnlock()
	if h.s.State.User == nil {
		return ""
	}
	return h.s.State.User.ID
}

// Ready implements dbl.Host.
func (h *Session) Ready() <-chan struct{} { return h.ready }
