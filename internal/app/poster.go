package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/dbl-hq/go-dbl/internal/config"
	"github.com/dbl-hq/go-dbl/pkg/dbl"
	"github.com/dbl-hq/go-dbl/pkg/dbl/discordhost"
)

// Poster keeps the bot's server count on the listing service up to date. It
// owns the gateway session and the listing client; the library itself carries
// no scheduler, the interval loop lives here.
type Poster struct {
	cfg     *config.Config
	session *discordgo.Session
	client  *dbl.Client
	log     *zap.SugaredLogger
}

// NewPoster builds the runtime: a discordgo session and a listing client
// reading identity and guild count from that session.
func NewPoster(cfg *config.Config, log *zap.SugaredLogger) (*Poster, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	opts := []dbl.Option{
		dbl.WithTimeout(cfg.RequestTimeout),
		dbl.WithLogger(log),
	}
	if cfg.DBLBaseURL != "" {
		opts = append(opts, dbl.WithBaseURL(cfg.DBLBaseURL))
	}
	client := dbl.New(cfg.DBLToken, discordhost.New(session), opts...)

	return &Poster{
		cfg:     cfg,
		session: session,
		client:  client,
		log:     log,
	}, nil
}

// Run opens the gateway session and posts the server count every interval
// until the context is cancelled.
func (p *Poster) Run(ctx context.Context) error {
	if err := p.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer p.close()

	p.log.Infow("stats poster starting",
		"post_interval", p.cfg.PostInterval.String(),
		"shard_count", p.cfg.ShardCount,
	)

	if err := p.postOnce(ctx); err != nil {
		p.log.Errorw("initial server count post failed", "error", err)
	}

	ticker := time.NewTicker(p.cfg.PostInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Infow("stats poster exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := p.postOnce(ctx); err != nil {
				p.log.Errorw("scheduled server count post failed", "error", err)
			}
		}
	}
}

// postOnce sends a single report. Rate limiting is logged and left alone; the
// next tick simply tries again.
func (p *Poster) postOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.RequestTimeout)
	defer cancel()

	var opts []dbl.PostOption
	if p.cfg.ShardCount > 0 {
		opts = append(opts, dbl.WithShard(p.cfg.ShardNo, p.cfg.ShardCount))
	}

	err := p.client.PostServerCount(ctx, opts...)
	if errors.Is(err, dbl.ErrRateLimited) {
		p.log.Warnw("listing service rate limited, skipping until next tick")
		return nil
	}
	return err
}

func (p *Poster) close() {
	if err := p.client.Close(); err != nil {
		p.log.Warnw("close listing client", "error", err)
	}
	if err := p.session.Close(); err != nil {
		p.log.Warnw("close discord session", "error", err)
	}
}
