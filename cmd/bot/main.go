package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/playroom-bot/playroom/internal/common/clock"
	"github.com/playroom-bot/playroom/internal/common/uuid"
	"github.com/playroom-bot/playroom/internal/config"
	"github.com/playroom-bot/playroom/internal/handlers/discord"
	"github.com/playroom-bot/playroom/internal/handlers/web"
	"github.com/playroom-bot/playroom/internal/registry"
	accountRepo "github.com/playroom-bot/playroom/internal/repositories/account"
	statsRepo "github.com/playroom-bot/playroom/internal/repositories/stats"
	"github.com/playroom-bot/playroom/internal/rng"
	"github.com/playroom-bot/playroom/internal/services/arcade"
	"github.com/playroom-bot/playroom/internal/services/ledger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setupLogging(cfg)

	// Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect to Redis")
	}

	// Repositories
	accounts, err := accountRepo.NewRedis(&accountRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create account repository")
	}

	records, err := statsRepo.NewRedis(&statsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create stats repository")
	}

	clk := clock.New()
	roller := rng.New(&rng.Config{})

	// Services
	ledgerSvc, err := ledger.New(&ledger.Config{
		AccountRepo: accounts,
		Clock:       clk,
		Roller:      roller,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create ledger service")
	}

	sessions, err := registry.New(&registry.Config{
		Clock:       clk,
		IdleTimeout: cfg.SessionIdleTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session registry")
	}

	arcadeSvc, err := arcade.New(&arcade.Config{
		Registry:  sessions,
		Ledger:    ledgerSvc,
		StatsRepo: records,
		Roller:    roller,
		UUID:      uuid.New(),
		MinWager:  cfg.MinWager,
		MaxWager:  cfg.MaxWager,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create arcade service")
	}

	// Expiry janitor
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go sessions.RunJanitor(janitorCtx, cfg.JanitorInterval, func(entry *registry.Entry) {
		arcadeSvc.ExpireEntry(context.Background(), entry)
	})

	// Keep-alive server
	webServer, err := web.New(&web.Config{
		Addr:        cfg.HTTPAddr,
		RedisClient: redisClient,
		Arcade:      arcadeSvc,
		Clock:       clk,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create web server")
	}
	go func() {
		if err := webServer.Start(); err != nil {
			log.Error().Err(err).Msg("web server stopped")
		}
	}()

	// Discord bot
	bot, err := discord.New(&discord.Config{
		Token:     cfg.DiscordToken,
		Prefix:    cfg.CommandPrefix,
		Arcade:    arcadeSvc,
		Ledger:    ledgerSvc,
		StatsRepo: records,
		MinWager:  cfg.MinWager,
		MaxWager:  cfg.MaxWager,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Info().Msg("shutting down")
	stopJanitor()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := webServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error stopping web server")
	}

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	log.Info().Msg("bot has been shut down")
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
