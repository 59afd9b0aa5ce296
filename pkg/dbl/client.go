// Package dbl is a client for the discordbots.org bot-listing API. It posts a
// bot's server count and reads listing metadata (bot info, votes, users) over
// HTTPS, and builds widget image URLs. It is a transport and mapping layer
// only: no retries, no caching, no scheduling.
package dbl

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultBaseURL is the production endpoint of the listing service.
const DefaultBaseURL = "https://discordbots.org/api"

// Client talks to the bot-listing service. The zero value is not usable; create
// one with New. A Client is safe for concurrent use: the underlying session
// pools connections, the resolved bot id is written once, and Close is
// idempotent.
type Client struct {
	host Host
	api  *apiClient
	log  *zap.SugaredLogger

	// botID holds the host's identifier once its ready signal has fired.
	botID  atomic.Value
	closed atomic.Bool
}

type clientOptions struct {
	baseURL string
	rc      *resty.Client
	timeout time.Duration
	log     *zap.SugaredLogger
}

// Option configures a Client.
type Option func(*clientOptions)

// WithBaseURL points the client at a different API host, e.g. a mock server in
// tests. Default: DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) { o.baseURL = baseURL }
}

// WithHTTPClient supplies an externally owned resty session. Timeouts,
// transports and proxies configured on it are used as-is; WithTimeout is
// ignored when a session is supplied.
func WithHTTPClient(rc *resty.Client) Option {
	return func(o *clientOptions) { o.rc = rc }
}

// WithTimeout sets the request timeout of the internally created session.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithLogger attaches a logger. The client is silent without one.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *clientOptions) { o.log = log }
}

// New creates a client for the given API token. host supplies the bot's
// identity and guild count; it may be nil when every call passes an explicit id
// and PostServerCount is never used.
func New(token string, host Host, opts ...Option) *Client {
	cfg := clientOptions{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = zap.NewNop().Sugar()
	}

	c := &Client{
		host: host,
		api:  newAPIClient(token, cfg.baseURL, cfg.rc, cfg.timeout, cfg.log),
		log:  cfg.log,
	}

	if host != nil {
		go func() {
			<-host.Ready()
			c.botID.Store(host.BotID())
			c.log.Debugw("host ready", "bot_id", host.BotID())
		}()
	}
	return c
}

// selfID returns the host's identifier, waiting for the host's ready signal if
// it has not fired yet.
func (c *Client) selfID(ctx context.Context) (string, error) {
	if id, ok := c.botID.Load().(string); ok && id != "" {
		return id, nil
	}
	if c.host == nil {
		return "", fmt.Errorf("dbl: no bot id given and no host configured")
	}
	select {
	case <-c.host.Ready():
		return c.host.BotID(), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// resolveID defaults an empty id to the host's own identifier.
func (c *Client) resolveID(ctx context.Context, botID string) (string, error) {
	if botID != "" {
		return botID, nil
	}
	return c.selfID(ctx)
}

// resolvedID is the non-blocking variant used by the pure URL builders. It
// returns an empty string while the host has not signalled readiness.
func (c *Client) resolvedID() string {
	if id, ok := c.botID.Load().(string); ok {
		return id
	}
	if c.host == nil {
		return ""
	}
	select {
	case <-c.host.Ready():
		return c.host.BotID()
	default:
		return ""
	}
}

type postStats struct {
	ServerCount int  `json:"server_count"`
	ShardCount  *int `json:"shard_count,omitempty"`
	ShardNo     *int `json:"shard_no,omitempty"`
}

// PostOption adds optional fields to a server-count report.
type PostOption func(*postStats)

// WithShard reports the count for one shard. shardNo is zero-based.
func WithShard(shardNo, shardCount int) PostOption {
	return func(p *postStats) {
		p.ShardNo = &shardNo
		p.ShardCount = &shardCount
	}
}

// PostServerCount reports the host's current server count for the resolved bot
// id. It waits for the host's ready signal if the identity is not yet known.
func (c *Client) PostServerCount(ctx context.Context, opts ...PostOption) error {
	id, err := c.selfID(ctx)
	if err != nil {
		return err
	}
	stats := postStats{ServerCount: c.host.ServerCount()}
	for _, opt := range opts {
		opt(&stats)
	}
	c.log.Infow("posting server count", "bot_id", id, "server_count", stats.ServerCount)
	return c.api.post(ctx, "/bots/"+id+"/stats", stats)
}

// GetServerCount fetches the statistics object of a bot. An empty botID means
// the host's own bot.
func (c *Client) GetServerCount(ctx context.Context, botID string) (*BotStats, error) {
	id, err := c.resolveID(ctx, botID)
	if err != nil {
		return nil, err
	}
	var stats BotStats
	if err := c.api.get(ctx, "/bots/"+id+"/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetUpvoteInfo fetches who upvoted a bot. The service restricts this endpoint
// to the bot's owner; a non-owner gets ErrUnauthorized back unmodified. days
// limits the window and defaults to 31 when non-positive. With onlyIDs the
// result carries bare ids instead of user objects.
func (c *Client) GetUpvoteInfo(ctx context.Context, botID string, onlyIDs bool, days int) (*VoteInfo, error) {
	id, err := c.resolveID(ctx, botID)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		days = 31
	}
	query := map[string]string{"days": strconv.Itoa(days)}
	if onlyIDs {
		query["onlyIds"] = "true"
	}

	info := &VoteInfo{}
	path := "/bots/" + id + "/votes"
	if onlyIDs {
		err = c.api.get(ctx, path, query, &info.IDs)
	} else {
		err = c.api.get(ctx, path, query, &info.Voters)
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}

// GetBotInfo fetches the full metadata of a listed bot. An empty botID means
// the host's own bot.
func (c *Client) GetBotInfo(ctx context.Context, botID string) (*BotInfo, error) {
	id, err := c.resolveID(ctx, botID)
	if err != nil {
		return nil, err
	}
	var info BotInfo
	if err := c.api.get(ctx, "/bots/"+id, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetBots fetches one page of the bot listing. limit defaults to 50 when
// non-positive; both values otherwise pass through unchecked, bounds are the
// service's business.
func (c *Client) GetBots(ctx context.Context, limit, offset int) (*BotsPage, error) {
	if limit <= 0 {
		limit = 50
	}
	query := map[string]string{"limit": strconv.Itoa(limit)}
	if offset > 0 {
		query["offset"] = strconv.Itoa(offset)
	}
	var page BotsPage
	if err := c.api.get(ctx, "/bots", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetUserInfo fetches the metadata of a site user.
func (c *Client) GetUserInfo(ctx context.Context, userID string) (*UserInfo, error) {
	var info UserInfo
	if err := c.api.get(ctx, "/users/"+userID, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Close releases the HTTP session. Calling it again is a no-op.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.api.close()
	return nil
}
