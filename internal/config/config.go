// Package config loads runtime settings from the environment, with a
// .env file picked up in development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting for the bot
type Config struct {
	// DiscordToken authenticates the bot with Discord
	DiscordToken string `env:"DISCORD_TOKEN,notEmpty"`

	// CommandPrefix marks messages as commands
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`

	// RedisAddr is the host:port of the Redis instance
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is empty for unauthenticated instances
	RedisPassword string `env:"REDIS_PASSWORD"`

	// HTTPAddr is where the keep-alive server listens
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// SessionIdleTimeout before an untouched game expires
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"2m"`

	// JanitorInterval between expiry sweeps
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL" envDefault:"15s"`

	// MinWager and MaxWager bound bets on wagered games
	MinWager int64 `env:"MIN_WAGER" envDefault:"10"`
	MaxWager int64 `env:"MAX_WAGER" envDefault:"1000"`

	// LogLevel is a zerolog level name
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Pretty switches to the console writer for development
	Pretty bool `env:"LOG_PRETTY" envDefault:"false"`
}

// Load reads the .env file if present, then parses the environment
func Load() (*Config, error) {
	// missing .env just means we're not in development
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
