package common

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// InteractionUserID extracts the numeric Discord user ID from an
// interaction, which carries Member in guilds and User in DMs.
func InteractionUserID(i *discordgo.InteractionCreate) (int64, error) {
	var id string
	if i.Member != nil && i.Member.User != nil {
		id = i.Member.User.ID
	} else if i.User != nil {
		id = i.User.ID
	} else {
		return 0, fmt.Errorf("interaction has no user")
	}

	userID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse user ID %q: %w", id, err)
	}
	return userID, nil
}

// InteractionUsername returns the Discord username behind an interaction
func InteractionUsername(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return ""
}

// RespondWithText sends a plain text interaction response
func RespondWithText(s *discordgo.Session, i *discordgo.InteractionCreate, content string, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Content: content,
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondWithEmbed sends an embed as an interaction response
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	if len(components) > 0 {
		data.Components = components
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondWithSuccess sends a success message
func RespondWithSuccess(s *discordgo.Session, i *discordgo.InteractionCreate, message string, ephemeral bool) error {
	return RespondWithText(s, i, "✅ "+message, ephemeral)
}

// UpdateMessage updates the message a component interaction came from
func UpdateMessage(s *discordgo.Session, i *discordgo.InteractionCreate, content string, components []discordgo.MessageComponent) error {
	data := &discordgo.InteractionResponseData{
		Content: content,
	}
	if components != nil {
		data.Components = components
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: data,
	})
}

// SendDM sends a direct message to a user, creating the DM channel if needed
func SendDM(s *discordgo.Session, userID int64, content string) error {
	channel, err := s.UserChannelCreate(strconv.FormatInt(userID, 10))
	if err != nil {
		return fmt.Errorf("failed to create DM channel with %d: %w", userID, err)
	}

	if _, err := s.ChannelMessageSend(channel.ID, content); err != nil {
		return fmt.Errorf("failed to send DM to %d: %w", userID, err)
	}
	return nil
}

// SendDMComplex sends a direct message with embeds or components
func SendDMComplex(s *discordgo.Session, userID int64, message *discordgo.MessageSend) error {
	channel, err := s.UserChannelCreate(strconv.FormatInt(userID, 10))
	if err != nil {
		return fmt.Errorf("failed to create DM channel with %d: %w", userID, err)
	}

	if _, err := s.ChannelMessageSendComplex(channel.ID, message); err != nil {
		return fmt.Errorf("failed to send DM to %d: %w", userID, err)
	}
	return nil
}

// SendDMFile sends a direct message with an attached file
func SendDMFile(s *discordgo.Session, userID int64, content, filename string, file io.Reader) error {
	return SendDMComplex(s, userID, &discordgo.MessageSend{
		Content: content,
		Files: []*discordgo.File{
			{Name: filename, Reader: file},
		},
	})
}

// TrySendDM sends a DM and only logs on failure, for best-effort notifications
func TrySendDM(s *discordgo.Session, userID int64, content string) {
	if err := SendDM(s, userID, content); err != nil {
		log.WithFields(log.Fields{
			"userID": userID,
		}).WithError(err).Warn("Failed to deliver DM")
	}
}
