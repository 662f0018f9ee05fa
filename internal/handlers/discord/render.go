package discord

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/playroom-bot/playroom/internal/games"
	"github.com/playroom-bot/playroom/internal/games/blackjack"
	"github.com/playroom-bot/playroom/internal/games/hangman"
	"github.com/playroom-bot/playroom/internal/games/memory"
	"github.com/playroom-bot/playroom/internal/games/numguess"
	"github.com/playroom-bot/playroom/internal/games/rps"
	"github.com/playroom-bot/playroom/internal/games/trivia"
	"github.com/playroom-bot/playroom/internal/models"
	"github.com/playroom-bot/playroom/internal/services/arcade"
	"github.com/playroom-bot/playroom/internal/services/ledger"
)

// Embed colors
const (
	colorPlaying = 0x3498db
	colorWin     = 0x2ecc71
	colorLoss    = 0xe74c3c
	colorNeutral = 0x95a5a6
	colorCoins   = 0xf1c40f
)

var gameTitles = map[games.Variant]string{
	games.VariantTrivia:      "Trivia",
	games.VariantHangman:     "Hangman",
	games.VariantRPS:         "Rock Paper Scissors",
	games.VariantNumberGuess: "Number Guess",
	games.VariantMemoryMatch: "Memory Match",
	games.VariantBlackjack:   "Blackjack",
}

var workFlavors = []string{
	"You walked the neighbor's dog",
	"You fixed a stranger's printer",
	"You busked outside the arcade",
	"You cleaned the casino tables",
	"You delivered a mysterious package",
	"You debugged someone's spaghetti code",
}

// errorResponse maps a service error to a player-facing message
func (b *Bot) errorResponse(err error) *Response {
	var msg string
	switch {
	case errors.Is(err, arcade.ErrAlreadyActive):
		msg = "You already have a game going in this channel. Finish it or `quit` first."
	case errors.Is(err, arcade.ErrSessionNotFound):
		msg = "You don't have a game going in this channel."
	case errors.Is(err, arcade.ErrInsufficientFunds):
		msg = "You don't have enough coins for that."
	case errors.Is(err, arcade.ErrInvalidInput):
		msg = "That move doesn't work here. Check the game message for what I'm expecting."
	case errors.Is(err, arcade.ErrInvalidState):
		msg = "That game has already finished."
	case errors.Is(err, arcade.ErrWagerOutOfRange):
		msg = fmt.Sprintf("Bets have to be between %d and %d coins.", b.minWager, b.maxWager)
	case errors.Is(err, arcade.ErrWagerNotAllowed):
		msg = "That game is played for XP, not coins."
	case errors.Is(err, arcade.ErrWagerRequired):
		msg = "That game needs a bet to start."
	case errors.Is(err, arcade.ErrUnknownVariant):
		msg = "I don't run a game by that name."
	case errors.Is(err, arcade.ErrStorageUnavailable):
		msg = "The vault is jammed right now. Try again in a moment."
	case errors.Is(err, trivia.ErrUnknownDifficulty),
		errors.Is(err, numguess.ErrUnknownDifficulty),
		errors.Is(err, memory.ErrUnknownDifficulty):
		msg = "I don't know that difficulty."
	case errors.Is(err, hangman.ErrUnknownCategory):
		msg = "I don't have a word list for that category."
	default:
		msg = "Something went wrong on my end."
	}

	return &Response{
		Embed: &discordgo.MessageEmbed{
			Description: msg,
			Color:       colorLoss,
		},
	}
}

func renderStart(username string, out *arcade.StartGameOutput) *Response {
	if out.Settled {
		return renderSettled(username, out.Snapshot, out.Wager, out.Settlement, out.LeveledUp, out.Level)
	}

	embed := snapshotEmbed(out.Snapshot, out.Wager)
	embed.Title = fmt.Sprintf("%s — %s", gameTitles[out.Snapshot.Variant], username)
	return &Response{Embed: embed}
}

func renderAdvance(username string, out *arcade.AdvanceOutput) *Response {
	if out.Settled {
		return renderSettled(username, out.Snapshot, out.Wager, out.Settlement, out.LeveledUp, out.Level)
	}

	embed := snapshotEmbed(out.Snapshot, out.Wager)
	embed.Title = fmt.Sprintf("%s — %s", gameTitles[out.Snapshot.Variant], username)
	return &Response{Embed: embed}
}

func renderForfeit(username string, out *arcade.ForfeitOutput) *Response {
	embed := snapshotEmbed(out.Snapshot, out.Wager)
	title := gameTitles[out.Snapshot.Variant]

	switch out.Snapshot.Status {
	case games.StatusLost:
		embed.Title = fmt.Sprintf("%s — %s gave up", title, username)
		embed.Color = colorLoss
	default:
		embed.Title = fmt.Sprintf("%s — cancelled", title)
		embed.Color = colorNeutral
		if out.Settlement != nil && out.Settlement.Payout > 0 {
			embed.Footer = &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Your %d coin stake is back in your pocket.", out.Settlement.Payout),
			}
		}
	}

	return &Response{Embed: embed}
}

func renderSettled(username string, snap *games.Snapshot, wager int64, settlement *games.Settlement, leveledUp bool, level int) *Response {
	embed := snapshotEmbed(snap, wager)
	title := gameTitles[snap.Variant]

	switch snap.Status {
	case games.StatusWon:
		embed.Title = fmt.Sprintf("%s — %s wins!", title, username)
		embed.Color = colorWin
	case games.StatusLost:
		embed.Title = fmt.Sprintf("%s — %s loses", title, username)
		embed.Color = colorLoss
	case games.StatusExpired:
		embed.Title = fmt.Sprintf("%s — timed out", title)
		embed.Color = colorNeutral
	default:
		embed.Title = fmt.Sprintf("%s — push", title)
		embed.Color = colorNeutral
	}

	var lines []string
	if settlement != nil && settlement.Payout > 0 {
		lines = append(lines, fmt.Sprintf("💰 %d coins", settlement.Payout))
	}
	if settlement != nil && settlement.Experience > 0 {
		lines = append(lines, fmt.Sprintf("✨ %d XP", settlement.Experience))
	}
	if leveledUp {
		lines = append(lines, fmt.Sprintf("🎉 Level up! You're now level %d.", level))
	}
	if len(lines) > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: strings.Join(lines, "  ")}
	}

	return &Response{Embed: embed}
}

// snapshotEmbed renders the game state itself; callers set the title,
// color and footer
func snapshotEmbed(snap *games.Snapshot, wager int64) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{Color: colorPlaying}

	switch view := snap.Detail.(type) {
	case *trivia.View:
		renderTrivia(embed, view)
	case *hangman.View:
		renderHangman(embed, view, snap.Status)
	case *rps.View:
		renderRPS(embed, view, snap.Status)
	case *numguess.View:
		renderNumguess(embed, view, snap.Status)
	case *memory.View:
		renderMemory(embed, view)
	case *blackjack.View:
		renderBlackjack(embed, view)
	default:
		embed.Description = "..."
	}

	if wager > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Wager",
			Value:  fmt.Sprintf("%d coins", wager),
			Inline: true,
		})
	}

	return embed
}

func renderTrivia(embed *discordgo.MessageEmbed, view *trivia.View) {
	var sb strings.Builder
	sb.WriteString(view.Prompt)
	sb.WriteString("\n\n")
	for i, choice := range view.Choices {
		sb.WriteString(fmt.Sprintf("**%c)** %s\n", 'A'+i, choice))
	}
	embed.Description = sb.String()
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Category", Value: view.Category, Inline: true},
		&discordgo.MessageEmbedField{Name: "Difficulty", Value: view.Difficulty, Inline: true},
	)
}

func renderHangman(embed *discordgo.MessageEmbed, view *hangman.View, status games.Status) {
	masked := strings.Join(strings.Split(view.Masked, ""), " ")
	embed.Description = fmt.Sprintf("`%s`", masked)
	if status.Terminal() && view.Word != "" {
		embed.Description = fmt.Sprintf("The word was **%s**.", view.Word)
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Category", Value: view.Category, Inline: true},
		&discordgo.MessageEmbedField{
			Name:   "Misses",
			Value:  fmt.Sprintf("%d / %d", view.Misses, view.MaxMisses),
			Inline: true,
		},
	)
	if len(view.Guessed) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Guessed",
			Value: strings.Join(view.Guessed, " "),
		})
	}
}

func renderRPS(embed *discordgo.MessageEmbed, view *rps.View, status games.Status) {
	if view.PlayerChoice == "" {
		embed.Description = "Throw your hand: **rock**, **paper** or **scissors**."
		return
	}

	embed.Description = fmt.Sprintf("You threw **%s**, I threw **%s**.", view.PlayerChoice, view.BotChoice)
	if status == games.StatusActive {
		embed.Description += "\nA tie! Go again."
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Round",
		Value:  fmt.Sprintf("%d / %d", view.Round, view.MaxRounds),
		Inline: true,
	})
}

func renderNumguess(embed *discordgo.MessageEmbed, view *numguess.View, status games.Status) {
	switch {
	case status.Terminal():
		embed.Description = fmt.Sprintf("The number was **%d**.", view.Target)
	case view.LastHint == numguess.HintHigher:
		embed.Description = "Higher ⬆️"
	case view.LastHint == numguess.HintLower:
		embed.Description = "Lower ⬇️"
	default:
		embed.Description = fmt.Sprintf("I'm thinking of a number between %d and %d.", view.Min, view.Max)
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Attempts",
		Value:  fmt.Sprintf("%d / %d", view.Attempts, view.MaxAttempts),
		Inline: true,
	})
}

func renderMemory(embed *discordgo.MessageEmbed, view *memory.View) {
	var sb strings.Builder
	sb.WriteString("`   ")
	for c := 1; c <= view.Cols; c++ {
		sb.WriteString(fmt.Sprintf("%2d ", c))
	}
	sb.WriteString("`\n")

	for r := 0; r < view.Rows; r++ {
		sb.WriteString(fmt.Sprintf("`%c` ", 'a'+r))
		for c := 0; c < view.Cols; c++ {
			cell := view.Cells[r*view.Cols+c]
			if cell.Matched || cell.Revealed {
				sb.WriteString(cell.Symbol + " ")
			} else {
				sb.WriteString("🔳 ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nPick two cells, e.g. `a1 b3`.")
	embed.Description = sb.String()

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Moves", Value: fmt.Sprintf("%d", view.Moves), Inline: true},
		&discordgo.MessageEmbedField{Name: "Pairs left", Value: fmt.Sprintf("%d", view.PairsLeft), Inline: true},
	)
}

func renderBlackjack(embed *discordgo.MessageEmbed, view *blackjack.View) {
	dealer := formatHand(view.DealerHand)
	if view.HoleHidden {
		dealer += " 🂠"
	} else {
		dealer += fmt.Sprintf("  (%d)", view.DealerValue)
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:  "Your hand",
			Value: fmt.Sprintf("%s  (%d)", formatHand(view.PlayerHand), view.PlayerValue),
		},
		&discordgo.MessageEmbedField{Name: "Dealer", Value: dealer},
	)

	if view.HoleHidden {
		embed.Description = "**hit** or **stand**?"
	}
	if view.Natural {
		embed.Description = "Blackjack!"
	}
}

func formatHand(hand []blackjack.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func renderRank(username string, acct *models.Account) *Response {
	next := models.ExperienceForLevel(acct.Level + 1)

	return &Response{Embed: &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's standing", username),
		Color: colorCoins,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: fmt.Sprintf("%d coins", acct.Balance), Inline: true},
			{Name: "Level", Value: fmt.Sprintf("%d", acct.Level), Inline: true},
			{Name: "XP", Value: fmt.Sprintf("%d / %d", acct.Experience, next), Inline: true},
		},
	}}
}

func renderDaily(username string, out *ledger.ClaimDailyOutput) *Response {
	if !out.Claimed {
		wait := time.Until(out.NextClaimAt).Round(time.Minute)
		return &Response{Embed: &discordgo.MessageEmbed{
			Description: fmt.Sprintf("You've already claimed today. Come back in %s.", wait),
			Color:       colorNeutral,
		}}
	}

	desc := fmt.Sprintf("%s claimed **%d coins**!", username, out.Amount)
	if out.Streak > 1 {
		desc += fmt.Sprintf(" That's a %d-day streak. 🔥", out.Streak)
	}

	return &Response{Embed: &discordgo.MessageEmbed{
		Description: desc,
		Color:       colorCoins,
	}}
}

func renderWork(username string, out *ledger.WorkOutput) *Response {
	if !out.Worked {
		wait := time.Until(out.NextShiftAt).Round(time.Minute)
		return &Response{Embed: &discordgo.MessageEmbed{
			Description: fmt.Sprintf("You're worn out. Next shift in %s.", wait),
			Color:       colorNeutral,
		}}
	}

	flavor := workFlavors[int(out.Amount)%len(workFlavors)]
	return &Response{Embed: &discordgo.MessageEmbed{
		Description: fmt.Sprintf("%s and earned **%d coins**.", flavor, out.Amount),
		Color:       colorCoins,
	}}
}

func renderTop(accounts []*models.Account) *Response {
	if len(accounts) == 0 {
		return &Response{Content: "Nobody has any coins yet. Be the first: try `daily`."}
	}

	var sb strings.Builder
	for i, acct := range accounts {
		medal := fmt.Sprintf("%d.", i+1)
		switch i {
		case 0:
			medal = "🥇"
		case 1:
			medal = "🥈"
		case 2:
			medal = "🥉"
		}
		sb.WriteString(fmt.Sprintf("%s <@%s> — %d coins (level %d)\n", medal, acct.UserID, acct.Balance, acct.Level))
	}

	return &Response{Embed: &discordgo.MessageEmbed{
		Title:       "Richest players",
		Description: sb.String(),
		Color:       colorCoins,
	}}
}

func renderStats(username string, variant games.Variant, record *models.GameStats, winners []*models.GameStats) *Response {
	total := record.Wins + record.Losses
	if total == 0 {
		return &Response{Content: fmt.Sprintf("%s hasn't finished a game of %s yet.", username, gameTitles[variant])}
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s — %s", gameTitles[variant], username),
		Color: colorPlaying,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Wins", Value: fmt.Sprintf("%d", record.Wins), Inline: true},
			{Name: "Losses", Value: fmt.Sprintf("%d", record.Losses), Inline: true},
			{Name: "Win rate", Value: fmt.Sprintf("%.0f%%", record.WinRate()), Inline: true},
		},
	}

	if len(winners) > 0 {
		var sb strings.Builder
		for _, w := range winners {
			sb.WriteString(fmt.Sprintf("<@%s> — %d wins\n", w.UserID, w.Wins))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Most wins",
			Value: sb.String(),
		})
	}

	return &Response{Embed: embed}
}

func renderHelp(prefix string, commands []*Command) *Response {
	byCategory := make(map[string][]*Command)
	var order []string
	for _, cmd := range commands {
		if _, ok := byCategory[cmd.Category]; !ok {
			order = append(order, cmd.Category)
		}
		byCategory[cmd.Category] = append(byCategory[cmd.Category], cmd)
	}

	embed := &discordgo.MessageEmbed{
		Title: "Playroom commands",
		Color: colorPlaying,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "While a game is running, just type your move in the channel.",
		},
	}

	for _, category := range order {
		var sb strings.Builder
		for _, cmd := range byCategory[category] {
			sb.WriteString(fmt.Sprintf("`%s%s` — %s\n", prefix, cmd.Usage, cmd.Description))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  category,
			Value: sb.String(),
		})
	}

	return &Response{Embed: embed}
}
