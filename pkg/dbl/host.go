package dbl

// ServerCounter reports how many guilds/servers the bot is currently a member
// of. Hosts built on older platform APIs that call guilds "servers" implement
// the same method; the distinction stays inside the adapter.
type ServerCounter interface {
	ServerCount() int
}

// Host is the running bot process the client reports for.
type Host interface {
	ServerCounter

	// BotID returns the bot's own identifier. Only valid once Ready has fired.
	BotID() string

	// Ready returns a channel that is closed once the host knows its identity.
	// Client methods that default the bot id wait on it before touching BotID.
	Ready() <-chan struct{}
}

var alwaysReady = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// StaticHost is a Host with a fixed identifier and a caller-supplied count
// function. It is ready from the start. Useful in tests and for processes that
// track their own guild count.
type StaticHost struct {
	ID    string
	Count func() int
}

func (h *StaticHost) BotID() string { return h.ID }

func (h *StaticHost) ServerCount() int {
	if h.Count == nil {
		return 0
	}
	return h.Count()
}

func (h *StaticHost) Ready() <-chan struct{} { return alwaysReady }
