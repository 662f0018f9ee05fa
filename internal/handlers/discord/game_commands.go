package discord

import (
	"context"
	"fmt"
	"strconv"

	"github.com/playroom-bot/playroom/internal/games"
	"github.com/playroom-bot/playroom/internal/services/arcade"
)

func (b *Bot) gameCommands() []*Command {
	return []*Command{
		{
			Name:        "trivia",
			Usage:       "trivia [easy|medium|hard]",
			Description: "Answer a trivia question for XP",
			Category:    "Games",
			Run:         b.startCommand(games.VariantTrivia),
		},
		{
			Name:        "hangman",
			Usage:       "hangman [category]",
			Description: "Guess the hidden word letter by letter",
			Category:    "Games",
			Run:         b.startCommand(games.VariantHangman),
		},
		{
			Name:        "guess",
			Usage:       "guess [easy|normal|hard|expert]",
			Description: "Find the secret number from higher/lower hints",
			Category:    "Games",
			Run:         b.startCommand(games.VariantNumberGuess),
		},
		{
			Name:        "memory",
			Usage:       "memory [easy|normal|hard]",
			Description: "Match the hidden symbol pairs",
			Category:    "Games",
			Run:         b.startCommand(games.VariantMemoryMatch),
		},
		{
			Name:        "rps",
			Usage:       "rps [wager]",
			Description: "Rock-paper-scissors, optionally for coins",
			Category:    "Games",
			Run:         b.wagerCommand(games.VariantRPS, false),
		},
		{
			Name:        "blackjack",
			Usage:       "blackjack <bet>",
			Description: "Play a hand of blackjack against the house",
			Category:    "Games",
			Run:         b.wagerCommand(games.VariantBlackjack, true),
		},
		{
			Name:        "quit",
			Usage:       "quit",
			Description: "Give up your current game",
			Category:    "Games",
			Run:         b.runQuit,
		},
	}
}

// startCommand builds a handler that starts a session with the first
// argument as the game option
func (b *Bot) startCommand(variant games.Variant) func(ctx context.Context, req *Request) (*Response, error) {
	return func(ctx context.Context, req *Request) (*Response, error) {
		option := ""
		if len(req.Args) > 0 {
			option = req.Args[0]
		}

		out, err := b.arcade.StartGame(ctx, &arcade.StartGameInput{
			ChannelID: req.ChannelID,
			UserID:    req.UserID,
			Variant:   variant,
			Option:    option,
		})
		if err != nil {
			return nil, err
		}

		return renderStart(req.Username, out), nil
	}
}

// wagerCommand builds a handler that starts a wagered session with the
// first argument as the stake
func (b *Bot) wagerCommand(variant games.Variant, required bool) func(ctx context.Context, req *Request) (*Response, error) {
	return func(ctx context.Context, req *Request) (*Response, error) {
		var wager int64
		if len(req.Args) > 0 {
			parsed, err := strconv.ParseInt(req.Args[0], 10, 64)
			if err != nil || parsed <= 0 {
				return &Response{Content: fmt.Sprintf("That's not a bet I can take. Try `%s%s <amount>`.", b.prefix, variant)}, nil
			}
			wager = parsed
		} else if required {
			return &Response{Content: fmt.Sprintf("You need to put coins down: `%s%s <amount>`.", b.prefix, variant)}, nil
		}

		out, err := b.arcade.StartGame(ctx, &arcade.StartGameInput{
			ChannelID: req.ChannelID,
			UserID:    req.UserID,
			Variant:   variant,
			Wager:     wager,
		})
		if err != nil {
			return nil, err
		}

		return renderStart(req.Username, out), nil
	}
}

func (b *Bot) runQuit(ctx context.Context, req *Request) (*Response, error) {
	out, err := b.arcade.Forfeit(ctx, &arcade.ForfeitInput{
		ChannelID: req.ChannelID,
		UserID:    req.UserID,
	})
	if err != nil {
		return nil, err
	}

	return renderForfeit(req.Username, out), nil
}
