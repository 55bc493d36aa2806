package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "start",
			Description: "Learn what the Secret Santa bot can do",
		},
		{
			Name:        "createbox",
			Description: "Create a new Secret Santa box (continues in DMs)",
		},
		{
			Name:        "joinbox",
			Description: "Join a Secret Santa box (continues in DMs)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "box_id",
					Description: "ID of the box to join (I will ask if omitted)",
					Required:    false,
				},
			},
		},
		{
			Name:        "myboxes",
			Description: "Show the boxes you own and the boxes you joined",
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
