package common

import (
	"errors"
	"fmt"

	"santabox/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// BotError represents a structured error with user-facing and internal messages
type BotError struct {
	UserMessage string // Message shown to Discord user
	LogMessage  string // Internal message for logging
	Ephemeral   bool   // Whether the error message should be ephemeral
	Err         error  // Underlying error
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.LogMessage, e.Err)
	}
	return e.LogMessage
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// NewUserError creates an error for user-caused issues (validation, not the owner, etc)
func NewUserError(userMessage string, logMessage string) *BotError {
	return &BotError{
		UserMessage: userMessage,
		LogMessage:  logMessage,
		Ephemeral:   true,
	}
}

// NewSystemError creates an error for system issues (database, unexpected state, etc)
func NewSystemError(err error, logMessage string) *BotError {
	return &BotError{
		UserMessage: "❌ Something went wrong. Please try again later.",
		LogMessage:  logMessage,
		Ephemeral:   true,
		Err:         err,
	}
}

// UserMessageFor maps domain errors to the message shown to the user. Errors
// outside the domain taxonomy get a generic message so internals never leak.
func UserMessageFor(err error) string {
	switch {
	case errors.Is(err, services.ErrBoxNotFound):
		return "That box does not exist. Check the ID and try again."
	case errors.Is(err, services.ErrParticipantNotFound):
		return "You are not a participant of that box."
	case errors.Is(err, services.ErrAlreadyParticipant):
		return "You already joined that box."
	case errors.Is(err, services.ErrNotBoxOwner):
		return "Only the box owner can do that."
	case errors.Is(err, services.ErrNotEnoughParticipants):
		return "At least two participants are needed before drawing names."
	case errors.Is(err, services.ErrDrawFailed):
		return "The draw could not be completed. Please try again."
	default:
		return "Something went wrong. Please try again later."
	}
}

// RespondWithError sends an error message as an interaction response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// HandleError processes an error and responds to the interaction
func HandleError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	var botErr *BotError
	if errors.As(err, &botErr) {
		log.WithFields(log.Fields{
			"error": botErr.Error(),
		}).Warn("Handled bot error")
		RespondWithError(s, i, botErr.UserMessage)
		return
	}

	log.WithError(err).Error("Unexpected error handling interaction")
	RespondWithError(s, i, UserMessageFor(err))
}
