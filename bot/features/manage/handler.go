package manage

import (
	"context"
	"fmt"

	"santabox/bot/common"
	"santabox/bot/flow"
	"santabox/domain/entities"
	"santabox/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// authorizeOwner resolves the interaction user and verifies box ownership.
// On failure it responds to the interaction and returns ok=false.
func (f *Feature) authorizeOwner(s *discordgo.Session, i *discordgo.InteractionCreate, customID, prefix string, action interfaces.OwnerAction) (userID, boxID int64, ok bool) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return 0, 0, false
	}
	boxID, err = parseBoxID(customID, prefix)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return 0, 0, false
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to begin transaction"))
		return 0, 0, false
	}
	defer uow.Rollback()

	svcs := common.BuildServices(uow)
	if err := svcs.Boxes.Authorize(ctx, userID, boxID, action); err != nil {
		common.RespondWithError(s, i, common.UserMessageFor(err))
		return 0, 0, false
	}

	return userID, boxID, true
}

func (f *Feature) handleMenuButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ctx := context.Background()

	_, boxID, ok := f.authorizeOwner(s, i, customID, componentMenu, interfaces.ActionViewParticipants)
	if !ok {
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

	err = common.RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       box.Name,
		Description: box.Description,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Box ID: %d", box.ID)},
	}, OwnerMenu(boxID), false)
	if err != nil {
		log.WithError(err).Error("Failed to open owner menu")
	}
}

func (f *Feature) handleParticipantsButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ctx := context.Background()

	_, boxID, ok := f.authorizeOwner(s, i, customID, componentParticipants, interfaces.ActionViewParticipants)
	if !ok {
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to begin transaction"))
		return
	}
	defer uow.Rollback()

	svcs := common.BuildServices(uow)
	participants, err := svcs.Participants.ListParticipants(ctx, boxID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to list participants"))
		return
	}

	userIDs := make([]int64, len(participants))
	for idx, p := range participants {
		userIDs[idx] = p.UserID
	}
	users, err := svcs.Users.GetUsers(ctx, userIDs)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to resolve participant accounts"))
		return
	}

	if err := common.RespondWithText(s, i, common.FormatParticipantList(participants, users), false); err != nil {
		log.WithError(err).Error("Failed to respond with participant list")
	}
}

func (f *Feature) handleDrawButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ctx := context.Background()

	_, boxID, ok := f.authorizeOwner(s, i, customID, componentDraw, interfaces.ActionRunDraw)
	if !ok {
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to begin transaction"))
		return
	}
	defer uow.Rollback()

	svcs := common.BuildServices(uow)
	assignments, err := svcs.Draw.Draw(ctx, boxID)
	if err != nil {
		common.RespondWithError(s, i, common.UserMessageFor(err))
		return
	}

	if err := uow.Commit(); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to commit draw"))
		return
	}

	msg := fmt.Sprintf("🎲 Names drawn for %d participants! Everyone gets a DM with their match.", len(assignments))
	if err := common.RespondWithSuccess(s, i, msg, false); err != nil {
		log.WithError(err).Error("Failed to respond to draw")
	}
}

func (f *Feature) handleNotifyButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	userID, boxID, ok := f.authorizeOwner(s, i, customID, componentNotify, interfaces.ActionNotifyParticipants)
	if !ok {
		return
	}

	state := f.flows.Begin(userID, flow.StepNotifyText)
	state.BoxID = boxID

	err := common.RespondWithText(s, i, "What should I tell the participants? Send the message as a reply.", false)
	if err != nil {
		log.WithError(err).Error("Failed to prompt for notify text")
	}
}

func (f *Feature) handleNotifyText(s *discordgo.Session, m *discordgo.MessageCreate, state *flow.State) {
	ctx := context.Background()

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		s.ChannelMessageSend(m.ChannelID, "Something went wrong. Please try again.")
		return
	}
	defer uow.Rollback()

	svcs := common.BuildServices(uow)
	box, err := svcs.Boxes.GetBox(ctx, state.BoxID)
	if err != nil {
		f.flows.Clear(state.UserID)
		s.ChannelMessageSend(m.ChannelID, common.UserMessageFor(err))
		return
	}
	participants, err := svcs.Participants.ListParticipants(ctx, state.BoxID)
	if err != nil {
		log.WithError(err).Error("Failed to list participants for broadcast")
		s.ChannelMessageSend(m.ChannelID, "Something went wrong. Please try again.")
		return
	}
	uow.Rollback()

	f.flows.Clear(state.UserID)

	// Delivery is best effort; users who block DMs are skipped
	content := fmt.Sprintf("📣 Message from the owner of **%s**:\n%s", box.Name, m.Content)
	for _, p := range participants {
		common.TrySendDM(s, p.UserID, content)
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Sent to %d participant(s).", len(participants)))
}

func (f *Feature) handleDeleteButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	_, boxID, ok := f.authorizeOwner(s, i, customID, componentDelete, interfaces.ActionDeleteBox)
	if !ok {
		return
	}

	err := common.RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Delete box?",
		Description: "This removes the box together with all participants and drawn names. There is no undo.",
	}, deleteConfirmRow(boxID), false)
	if err != nil {
		log.WithError(err).Error("Failed to ask for delete confirmation")
	}
}

func (f *Feature) handleDeleteConfirmButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ctx := context.Background()

	_, boxID, ok := f.authorizeOwner(s, i, customID, componentDeleteConfirm, interfaces.ActionDeleteBox)
	if !ok {
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to begin transaction"))
		return
	}
	defer uow.Rollback()

	svcs := common.BuildServices(uow)
	if err := svcs.Boxes.DeleteBox(ctx, boxID); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to delete box"))
		return
	}

	if err := uow.Commit(); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to commit deletion"))
		return
	}

	if err := common.UpdateMessage(s, i, "🗑️ The box and everything in it is gone.", []discordgo.MessageComponent{}); err != nil {
		log.WithError(err).Error("Failed to confirm deletion")
	}
}

// participantsOf loads the enrollments of a box in a read-only transaction
func (f *Feature) participantsOf(ctx context.Context, boxID int64) ([]*entities.Participant, error) {
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	svcs := common.BuildServices(uow)
	return svcs.Participants.ListParticipants(ctx, boxID)
}
