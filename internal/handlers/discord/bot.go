package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/playroom-bot/playroom/internal/repositories/stats"
	"github.com/playroom-bot/playroom/internal/services/arcade"
	"github.com/playroom-bot/playroom/internal/services/ledger"
)

// Bot represents the Discord bot instance
type Bot struct {
	session   *discordgo.Session
	prefix    string
	arcade    arcade.Service
	ledger    ledger.Service
	statsRepo stats.Repository
	commands  map[string]*Command
	ordered   []*Command
	minWager  int64
	maxWager  int64
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Prefix that marks a message as a command, e.g. "!"
	Prefix string

	// Arcade service running the game sessions
	Arcade arcade.Service

	// Ledger service for the economy commands
	Ledger ledger.Service

	// Stats repository for win/loss records
	StatsRepo stats.Repository

	// Wager bounds quoted in error messages; these should match the
	// bounds the arcade service enforces
	MinWager int64
	MaxWager int64
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Arcade == nil {
		return nil, errors.New("arcade service cannot be nil")
	}

	if cfg.Ledger == nil {
		return nil, errors.New("ledger service cannot be nil")
	}

	if cfg.StatsRepo == nil {
		return nil, errors.New("stats repository cannot be nil")
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "!"
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:   session,
		prefix:    prefix,
		arcade:    cfg.Arcade,
		ledger:    cfg.Ledger,
		statsRepo: cfg.StatsRepo,
		minWager:  cfg.MinWager,
		maxWager:  cfg.MaxWager,
	}
	if bot.minWager == 0 {
		bot.minWager = arcade.DefaultMinWager
	}
	if bot.maxWager == 0 {
		bot.maxWager = arcade.DefaultMaxWager
	}
	bot.commands = bot.commandTable()

	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	session.AddHandler(bot.handleMessage)

	return bot, nil
}

// Start opens the websocket connection to Discord
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Info().Str("prefix", b.prefix).Msg("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

// handleMessage dispatches prefixed messages to commands and routes bare
// messages to the author's active game session, if any.
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	content := strings.TrimSpace(m.Content)
	if content == "" {
		return
	}

	ctx := context.Background()

	if !strings.HasPrefix(content, b.prefix) {
		b.handleGameInput(ctx, s, m, content)
		return
	}

	fields := strings.Fields(strings.TrimPrefix(content, b.prefix))
	if len(fields) == 0 {
		return
	}

	name := strings.ToLower(fields[0])
	cmd, ok := b.commands[name]
	if !ok {
		return
	}

	req := &Request{
		ChannelID: m.ChannelID,
		UserID:    m.Author.ID,
		Username:  m.Author.Username,
		Args:      fields[1:],
	}

	resp, err := cmd.Run(ctx, req)
	if err != nil {
		log.Debug().
			Err(err).
			Str("command", name).
			Str("user_id", req.UserID).
			Msg("command failed")
		resp = b.errorResponse(err)
	}

	b.send(s, m.ChannelID, resp)
}

// handleGameInput feeds an unprefixed message to the author's session.
// Users without an active session chat freely, so lookup misses are
// ignored.
func (b *Bot) handleGameInput(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, content string) {
	out, err := b.arcade.Advance(ctx, &arcade.AdvanceInput{
		ChannelID: m.ChannelID,
		UserID:    m.Author.ID,
		Input:     content,
	})
	if err != nil {
		if errors.Is(err, arcade.ErrSessionNotFound) {
			return
		}
		b.send(s, m.ChannelID, b.errorResponse(err))
		return
	}

	b.send(s, m.ChannelID, renderAdvance(m.Author.Username, out))
}

func (b *Bot) send(s *discordgo.Session, channelID string, resp *Response) {
	if resp == nil {
		return
	}

	msg := &discordgo.MessageSend{Content: resp.Content}
	if resp.Embed != nil {
		msg.Embeds = []*discordgo.MessageEmbed{resp.Embed}
	}

	if _, err := s.ChannelMessageSendComplex(channelID, msg); err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("failed to send message")
	}
}
