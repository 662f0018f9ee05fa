package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/playroom-bot/playroom/internal/games"
	"github.com/playroom-bot/playroom/internal/repositories/stats"
	"github.com/playroom-bot/playroom/internal/services/ledger"
)

const leaderboardSize = 10

func (b *Bot) economyCommands() []*Command {
	return []*Command{
		{
			Name:        "rank",
			Usage:       "rank",
			Description: "Show your balance, XP and level",
			Category:    "Economy",
			Run:         b.runRank,
		},
		{
			Name:        "daily",
			Usage:       "daily",
			Description: "Claim your daily coins, streaks pay extra",
			Category:    "Economy",
			Run:         b.runDaily,
		},
		{
			Name:        "work",
			Usage:       "work",
			Description: "Earn a few coins, once an hour",
			Category:    "Economy",
			Run:         b.runWork,
		},
		{
			Name:        "top",
			Usage:       "top",
			Description: "Show the richest players",
			Category:    "Economy",
			Run:         b.runTop,
		},
		{
			Name:        "stats",
			Usage:       "stats <game>",
			Description: "Show your win/loss record for a game",
			Category:    "Economy",
			Run:         b.runStats,
		},
	}
}

func (b *Bot) runRank(ctx context.Context, req *Request) (*Response, error) {
	out, err := b.ledger.GetAccount(ctx, &ledger.GetAccountInput{UserID: req.UserID})
	if err != nil {
		return nil, err
	}

	return renderRank(req.Username, out.Account), nil
}

func (b *Bot) runDaily(ctx context.Context, req *Request) (*Response, error) {
	out, err := b.ledger.ClaimDaily(ctx, &ledger.ClaimDailyInput{UserID: req.UserID})
	if err != nil {
		return nil, err
	}

	return renderDaily(req.Username, out), nil
}

func (b *Bot) runWork(ctx context.Context, req *Request) (*Response, error) {
	out, err := b.ledger.Work(ctx, &ledger.WorkInput{UserID: req.UserID})
	if err != nil {
		return nil, err
	}

	return renderWork(req.Username, out), nil
}

func (b *Bot) runTop(ctx context.Context, req *Request) (*Response, error) {
	out, err := b.ledger.GetTopBalances(ctx, &ledger.GetTopBalancesInput{Limit: leaderboardSize})
	if err != nil {
		return nil, err
	}

	return renderTop(out.Accounts), nil
}

func (b *Bot) runStats(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Args) == 0 {
		names := make([]string, 0, len(games.Variants))
		for _, v := range games.Variants {
			names = append(names, string(v))
		}
		return &Response{
			Content: fmt.Sprintf("Which game? Try `%sstats <%s>`.", b.prefix, strings.Join(names, "|")),
		}, nil
	}

	variant, ok := games.ParseVariant(strings.ToLower(req.Args[0]))
	if !ok {
		return &Response{Content: fmt.Sprintf("I don't run a game called %q.", req.Args[0])}, nil
	}

	record, err := b.statsRepo.GetStats(ctx, &stats.GetStatsInput{
		Variant: string(variant),
		UserID:  req.UserID,
	})
	if err != nil {
		return nil, err
	}

	winners, err := b.statsRepo.GetTopWinners(ctx, &stats.GetTopWinnersInput{
		Variant: string(variant),
		Limit:   3,
	})
	if err != nil {
		return nil, err
	}

	return renderStats(req.Username, variant, record, winners.Stats), nil
}

func (b *Bot) helpCommand() *Command {
	return &Command{
		Name:        "help",
		Usage:       "help",
		Description: "Show this command list",
		Category:    "Economy",
		Run: func(ctx context.Context, req *Request) (*Response, error) {
			return renderHelp(b.prefix, b.ordered), nil
		},
	}
}
