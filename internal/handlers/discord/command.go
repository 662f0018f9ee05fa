package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Request carries everything a command handler needs from the message
type Request struct {
	ChannelID string
	UserID    string
	Username  string

	// Args are the whitespace-split words after the command name
	Args []string
}

// Response is what a command hands back for sending
type Response struct {
	Content string
	Embed   *discordgo.MessageEmbed
}

// Command is one prefix command
type Command struct {
	// Name the command is dispatched under
	Name string

	// Usage shown in help, without the prefix
	Usage string

	// Description shown in help
	Description string

	// Category groups commands in help
	Category string

	// Run executes the command
	Run func(ctx context.Context, req *Request) (*Response, error)
}

// commandTable builds the dispatch map in declaration order; ordered keeps
// that order for help
func (b *Bot) commandTable() map[string]*Command {
	b.ordered = append(b.ordered, b.gameCommands()...)
	b.ordered = append(b.ordered, b.economyCommands()...)
	b.ordered = append(b.ordered, b.helpCommand())

	table := make(map[string]*Command, len(b.ordered))
	for _, cmd := range b.ordered {
		table[cmd.Name] = cmd
	}
	return table
}
