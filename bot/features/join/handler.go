package join

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"santabox/bot/common"
	"santabox/bot/flow"
	"santabox/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleJoinBox(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		log.WithError(err).Error("Failed to resolve user for joinbox")
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	// Optional box_id option lets users skip the ID step. The flow can also
	// start from a menu button, which carries no options.
	var boxID int64
	if i.Type == discordgo.InteractionApplicationCommand {
		if opts := i.ApplicationCommandData().Options; len(opts) > 0 {
			boxID = opts[0].IntValue()
		}
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to begin transaction"))
		return
	}
	defer uow.Rollback()

	svcs := common.BuildServices(uow)
	if _, err := svcs.Users.GetOrCreateUser(ctx, userID, common.InteractionUsername(i)); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to register user"))
		return
	}

	var box *entities.Box
	if boxID != 0 {
		box, err = svcs.Boxes.GetBox(ctx, boxID)
		if err != nil {
			common.RespondWithError(s, i, common.UserMessageFor(err))
			return
		}
		joined, err := svcs.Participants.IsParticipant(ctx, userID, boxID)
		if err != nil {
			common.HandleError(s, i, common.NewSystemError(err, "failed to check participation"))
			return
		}
		if joined {
			common.RespondWithError(s, i, "You already joined that box.")
			return
		}
	}

	if err := uow.Commit(); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to commit"))
		return
	}

	var prompt string
	if box != nil {
		state := f.flows.Begin(userID, flow.StepJoinName)
		state.BoxID = box.ID
		prompt = fmt.Sprintf(
			"🎄 Joining **%s**!\n%s\n\nWhat name should the others see?", box.Name, box.Description)
	} else {
		f.flows.Begin(userID, flow.StepJoinBoxID)
		prompt = "🎄 Which box do you want to join? Send me its ID."
	}

	if err := common.SendDM(s, userID, prompt); err != nil {
		f.flows.Clear(userID)
		common.RespondWithError(s, i, "I could not DM you. Please allow direct messages and try again.")
		return
	}
	if box != nil {
		common.TrySendBoxPhoto(s, f.photos, userID, box)
	}

	if err := common.RespondWithSuccess(s, i, "Check your DMs to finish joining.", true); err != nil {
		log.WithError(err).Error("Failed to respond to joinbox")
	}
}

func (f *Feature) handleBoxIDStep(s *discordgo.Session, m *discordgo.MessageCreate, state *flow.State) {
	ctx := context.Background()

	boxID, err := strconv.ParseInt(strings.TrimSpace(m.Content), 10, 64)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "That does not look like a box ID. Send just the number.")
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		s.ChannelMessageSend(m.ChannelID, "Something went wrong. Please try again.")
		return
	}
	defer uow.Rollback()

	svcs := common.BuildServices(uow)
	box, err := svcs.Boxes.GetBox(ctx, boxID)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, common.UserMessageFor(err))
		return
	}
	joined, err := svcs.Participants.IsParticipant(ctx, state.UserID, boxID)
	if err != nil {
		log.WithError(err).Error("Failed to check participation")
		s.ChannelMessageSend(m.ChannelID, "Something went wrong. Please try again.")
		return
	}
	uow.Rollback()

	if joined {
		f.flows.Clear(state.UserID)
		s.ChannelMessageSend(m.ChannelID, "You already joined that box.")
		return
	}

	state.BoxID = box.ID
	f.flows.Advance(state, flow.StepJoinName)
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf(
		"Found it: **%s**\n%s\n\nWhat name should the others see?", box.Name, box.Description))
	common.TrySendBoxPhoto(s, f.photos, state.UserID, box)
}

func (f *Feature) handleNameStep(s *discordgo.Session, m *discordgo.MessageCreate, state *flow.State) {
	if strings.TrimSpace(m.Content) == "" {
		s.ChannelMessageSend(m.ChannelID, "Please send a name.")
		return
	}

	state.Name = m.Content
	f.flows.Advance(state, flow.StepJoinAddress)
	s.ChannelMessageSend(m.ChannelID, "Where should your gift be delivered?")
}

func (f *Feature) handleAddressStep(s *discordgo.Session, m *discordgo.MessageCreate, state *flow.State) {
	if strings.TrimSpace(m.Content) == "" {
		s.ChannelMessageSend(m.ChannelID, "Please send an address.")
		return
	}

	state.Address = m.Content
	f.flows.Advance(state, flow.StepJoinWish)
	s.ChannelMessageSend(m.ChannelID, "And finally, what do you wish for?")
}

func (f *Feature) handleWishStep(s *discordgo.Session, m *discordgo.MessageCreate, state *flow.State) {
	ctx := context.Background()

	wish := m.Content
	if strings.TrimSpace(wish) == "" {
		s.ChannelMessageSend(m.ChannelID, "Please send a wish.")
		return
	}

	// The earlier steps each stage a value before advancing, so a hole here
	// means corrupted flow state. Abort rather than commit a partial row.
	if !stagedJoinComplete(state) {
		log.WithFields(log.Fields{
			"userID": state.UserID,
			"boxID":  state.BoxID,
		}).Error("Join flow reached commit with incomplete staged state")
		f.flows.Clear(state.UserID)
		s.ChannelMessageSend(m.ChannelID, "Something went wrong. Please start over with `/joinbox`.")
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		s.ChannelMessageSend(m.ChannelID, "Something went wrong. Please try again.")
		return
	}
	defer uow.Rollback()

	svcs := common.BuildServices(uow)
	_, err := svcs.Participants.JoinBox(ctx, state.UserID, state.BoxID, state.Name, state.Address, wish)
	if err != nil {
		log.WithError(err).Warn("Failed to join box")
		f.flows.Clear(state.UserID)
		s.ChannelMessageSend(m.ChannelID, common.UserMessageFor(err))
		return
	}

	if err := uow.Commit(); err != nil {
		log.WithError(err).Error("Failed to commit join")
		s.ChannelMessageSend(m.ChannelID, "Something went wrong. Please try again.")
		return
	}

	f.flows.Clear(state.UserID)

	s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:    "🎁 You are in! You can adjust your details here any time.",
		Components: ParticipantMenu(state.BoxID),
	})
}

// stagedJoinComplete reports whether every value the commit needs was staged
func stagedJoinComplete(state *flow.State) bool {
	return state.BoxID != 0 && state.Name != "" && state.Address != ""
}

// stepFields maps edit steps to the participant field they modify
var stepFields = map[flow.Step]entities.ParticipantField{
	flow.StepEditName:    entities.ParticipantFieldName,
	flow.StepEditAddress: entities.ParticipantFieldAddress,
	flow.StepEditWish:    entities.ParticipantFieldWish,
}

func (f *Feature) handleEditStep(s *discordgo.Session, m *discordgo.MessageCreate, state *flow.State) {
	ctx := context.Background()

	field, ok := stepFields[state.Step]
	if !ok {
		f.flows.Clear(state.UserID)
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		s.ChannelMessageSend(m.ChannelID, "Something went wrong. Please try again.")
		return
	}
	defer uow.Rollback()

	svcs := common.BuildServices(uow)
	if err := svcs.Participants.UpdateField(ctx, state.UserID, state.BoxID, field, m.Content); err != nil {
		var validationErr *entities.ValidationError
		if errors.As(err, &validationErr) {
			s.ChannelMessageSend(m.ChannelID, "That value does not work. Try again.")
			return
		}
		log.WithError(err).Error("Failed to update participant field")
		s.ChannelMessageSend(m.ChannelID, common.UserMessageFor(err))
		return
	}

	if err := uow.Commit(); err != nil {
		log.WithError(err).Error("Failed to commit field update")
		s.ChannelMessageSend(m.ChannelID, "Something went wrong. Please try again.")
		return
	}

	f.flows.Clear(state.UserID)

	s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:    fmt.Sprintf("✅ Your %s has been updated.", field),
		Components: ParticipantMenu(state.BoxID),
	})
}

func (f *Feature) handleEditButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID, prefix string, step flow.Step, prompt string) {
	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	boxID, err := parseBoxID(customID, prefix)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if !f.requireParticipant(s, i, userID, boxID) {
		return
	}

	state := f.flows.Begin(userID, step)
	state.BoxID = boxID

	if err := common.RespondWithText(s, i, prompt, false); err != nil {
		log.WithError(err).Error("Failed to prompt for edit")
	}
}

func (f *Feature) handleInfoButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	boxID, err := parseBoxID(customID, componentInfo)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to begin transaction"))
		return
	}
	defer uow.Rollback()

	svcs := common.BuildServices(uow)
	box, err := svcs.Boxes.GetBox(ctx, boxID)
	if err != nil {
		common.RespondWithError(s, i, common.UserMessageFor(err))
		return
	}
	participant, err := svcs.Participants.GetParticipant(ctx, userID, boxID)
	if err != nil {
		common.RespondWithError(s, i, common.UserMessageFor(err))
		return
	}

	content := fmt.Sprintf("%s\n\nYour details:\n%s",
		common.FormatBox(box), common.FormatParticipant(participant))
	if err := common.RespondWithText(s, i, content, false); err != nil {
		log.WithError(err).Error("Failed to respond with box info")
	}
	common.TrySendBoxPhoto(s, f.photos, userID, box)
}

func (f *Feature) handleLeaveButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	boxID, err := parseBoxID(customID, componentLeave)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to begin transaction"))
		return
	}
	defer uow.Rollback()

	svcs := common.BuildServices(uow)
	if err := svcs.Participants.LeaveBox(ctx, userID, boxID); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to leave box"))
		return
	}

	if err := uow.Commit(); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to commit"))
		return
	}

	if err := common.RespondWithText(s, i, "You left the box. Your details were removed.", false); err != nil {
		log.WithError(err).Error("Failed to respond to leave")
	}
}

func (f *Feature) handleMenuButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	boxID, err := parseBoxID(customID, componentMenu)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if !f.requireParticipant(s, i, userID, boxID) {
		return
	}

	var box *entities.Box
	{
		uow := f.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			common.HandleError(s, i, common.NewSystemError(err, "failed to begin transaction"))
			return
		}
		defer uow.Rollback()

		svcs := common.BuildServices(uow)
		box, err = svcs.Boxes.GetBox(ctx, boxID)
		if err != nil {
			common.RespondWithError(s, i, common.UserMessageFor(err))
			return
		}
	}

	err = common.RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       box.Name,
		Description: box.Description,
	}, ParticipantMenu(boxID), false)
	if err != nil {
		log.WithError(err).Error("Failed to open participant menu")
	}
}

// requireParticipant verifies the user is enrolled before showing
// participant actions, responding with an error when they are not.
func (f *Feature) requireParticipant(s *discordgo.Session, i *discordgo.InteractionCreate, userID, boxID int64) bool {
	ctx := context.Background()

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to begin transaction"))
		return false
	}
	defer uow.Rollback()

	svcs := common.BuildServices(uow)
	joined, err := svcs.Participants.IsParticipant(ctx, userID, boxID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to check participation"))
		return false
	}
	if !joined {
		common.RespondWithError(s, i, "You are not a participant of that box.")
		return false
	}
	return true
}
