package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the statsposter configuration loaded from the environment.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	// DBLToken authenticates against the bot-listing API.
	DBLToken string `mapstructure:"dbl_token"`
	// DBLBaseURL overrides the listing API host; empty means production.
	DBLBaseURL string `mapstructure:"dbl_base_url"`
	// DiscordToken opens the gateway session the guild count is read from.
	DiscordToken string `mapstructure:"discord_token"`

	PostIntervalSeconds   int64         `mapstructure:"post_interval"`
	PostInterval          time.Duration `mapstructure:"-"`
	RequestTimeoutSeconds int64         `mapstructure:"request_timeout"`
	RequestTimeout        time.Duration `mapstructure:"-"`

	// Shard metadata to attach to each report. ShardNo is zero-based and only
	// sent when ShardCount is positive.
	ShardCount int `mapstructure:"shard_count"`
	ShardNo    int `mapstructure:"shard_no"`
}

// Load reads configuration from environment variables, with configs/.env as an
// optional local override file.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "dbl-statsposter")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("post_interval", 1800) // seconds
	v.SetDefault("request_timeout", 15) // seconds
	// Keys without a meaningful default still need one registered, or
	// AutomaticEnv will not surface them during Unmarshal.
	v.SetDefault("dbl_token", "")
	v.SetDefault("dbl_base_url", "")
	v.SetDefault("discord_token", "")
	v.SetDefault("shard_count", 0)
	v.SetDefault("shard_no", 0)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DBLToken == "" {
		return nil, fmt.Errorf("dbl_token is required")
	}
	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("discord_token is required")
	}
	if cfg.PostIntervalSeconds <= 0 {
		return nil, fmt.Errorf("invalid post_interval (must be positive seconds)")
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid request_timeout (must be positive seconds)")
	}
	cfg.PostInterval = time.Duration(cfg.PostIntervalSeconds) * time.Second
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	return &cfg, nil
}
