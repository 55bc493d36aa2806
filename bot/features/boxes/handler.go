package boxes

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"santabox/bot/common"
	"santabox/bot/flow"
	"santabox/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const (
	skipKeyword       = "skip"
	promptDescription = "Almost done. Describe the box in a sentence or two (budget, rules, date)."
)

func (f *Feature) handleCreateBox(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		log.WithError(err).Error("Failed to resolve user for createbox")
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	// Register the user before anything else so the flow can complete later
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
	if err := uow.Commit(); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to commit"))
		return
	}

	f.flows.Begin(userID, flow.StepCreateName)

	if err := common.SendDM(s, userID, "🎄 Let's create a Secret Santa box! What should it be called?"); err != nil {
		f.flows.Clear(userID)
		common.RespondWithError(s, i, "I could not DM you. Please allow direct messages and try again.")
		return
	}

	if err := common.RespondWithSuccess(s, i, "Check your DMs to finish creating the box.", true); err != nil {
		log.WithError(err).Error("Failed to respond to createbox")
	}
}

func (f *Feature) handleNameStep(s *discordgo.Session, m *discordgo.MessageCreate, state *flow.State) {
	reply, _ := f.advanceNameStep(state, m.Content)
	s.ChannelMessageSend(m.ChannelID, reply)
}

// advanceNameStep validates and stages the box name. A rejected name leaves
// the flow where it was with nothing staged.
func (f *Feature) advanceNameStep(state *flow.State, content string) (string, bool) {
	if err := entities.ValidateBoxName(content); err != nil {
		return fmt.Sprintf(
			"That name does not work (%d characters maximum). Try another one.", entities.MaxBoxNameLength), false
	}

	state.BoxName = content
	f.flows.Advance(state, flow.StepCreatePhoto)
	return "Nice. Now send a photo for the box, or type `skip`.", true
}

func (f *Feature) handlePhotoStep(s *discordgo.Session, m *discordgo.MessageCreate, state *flow.State) {
	if len(m.Attachments) > 0 {
		ref, err := f.downloadPhoto(m.Attachments[0])
		if err != nil {
			log.WithError(err).Warn("Failed to store box photo")
			s.ChannelMessageSend(m.ChannelID, "I could not save that photo. Send another one, or type `skip`.")
			return
		}
		state.PhotoRef = ref
		f.flows.Advance(state, flow.StepCreateDescription)
		s.ChannelMessageSend(m.ChannelID, promptDescription)
		return
	}

	reply, _ := f.advancePhotoStep(state, m.Content)
	s.ChannelMessageSend(m.ChannelID, reply)
}

// advancePhotoStep handles the text path of the photo step: `skip` moves on
// with no photo staged, anything else re-prompts in place.
func (f *Feature) advancePhotoStep(state *flow.State, content string) (string, bool) {
	if !isSkip(content) {
		return "Send a photo as an attachment, or type `skip`.", false
	}

	f.flows.Advance(state, flow.StepCreateDescription)
	return promptDescription, true
}

func isSkip(content string) bool {
	return strings.EqualFold(strings.TrimSpace(content), skipKeyword)
}

// stagedPhotoRef maps the staged photo reference to the box field: skipping
// the photo step yields a box without a photo, not one with an empty string.
func stagedPhotoRef(state *flow.State) *string {
	if state.PhotoRef == "" {
		return nil
	}
	return &state.PhotoRef
}

func (f *Feature) handleDescriptionStep(s *discordgo.Session, m *discordgo.MessageCreate, state *flow.State) {
	ctx := context.Background()

	description := m.Content
	if err := entities.ValidateBoxDescription(description); err != nil {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf(
			"That description does not work (%d characters maximum). Try again.", entities.MaxBoxDescriptionLength))
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.WithError(err).Error("Failed to begin transaction for box creation")
		s.ChannelMessageSend(m.ChannelID, "Something went wrong. Please try again.")
		return
	}
	defer uow.Rollback()

	svcs := common.BuildServices(uow)
	box, err := svcs.Boxes.CreateBox(ctx, state.UserID, state.BoxName, stagedPhotoRef(state), description)
	if err != nil {
		log.WithError(err).Error("Failed to create box")
		s.ChannelMessageSend(m.ChannelID, common.UserMessageFor(err))
		return
	}

	if err := uow.Commit(); err != nil {
		log.WithError(err).Error("Failed to commit box creation")
		s.ChannelMessageSend(m.ChannelID, "Something went wrong. Please try again.")
		return
	}

	f.flows.Clear(state.UserID)

	s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content: fmt.Sprintf(
			"🎁 Box **%s** is ready! Its ID is `%d`.\nShare the ID so others can join with `/joinbox`.",
			box.Name, box.ID),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Manage box",
						Style:    discordgo.PrimaryButton,
						CustomID: fmt.Sprintf("manage_box_%d", box.ID),
					},
				},
			},
		},
	})
	common.TrySendBoxPhoto(s, f.photos, state.UserID, box)
}

// downloadPhoto fetches a Discord attachment and stores it locally,
// returning the photo reference to keep on the box.
func (f *Feature) downloadPhoto(attachment *discordgo.MessageAttachment) (string, error) {
	resp, err := http.Get(attachment.URL)
	if err != nil {
		return "", fmt.Errorf("failed to download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("attachment download returned status %d", resp.StatusCode)
	}

	return f.photos.Save(resp.Body, attachment.Filename)
}
