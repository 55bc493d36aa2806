package settings

import (
	"context"
	"fmt"
	"strings"

	"santabox/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const welcomeText = "🎅 Ho ho ho! I organize Secret Santa gift exchanges.\n\n" +
	"• `/createbox` starts a new exchange box\n" +
	"• `/joinbox` joins one with its ID\n" +
	"• `/myboxes` shows the boxes you own or joined\n\n" +
	"Everything personal happens in DMs, so nobody spoils the surprise."

func (f *Feature) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
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
	if _, err := svcs.Users.GetOrCreateUser(ctx, userID, common.InteractionUsername(i)); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to register user"))
		return
	}
	if err := uow.Commit(); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to commit"))
		return
	}

	err = common.RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Secret Santa",
		Description: welcomeText,
	}, mainMenu(), true)
	if err != nil {
		log.WithError(err).Error("Failed to respond to start")
	}
}

func (f *Feature) handleMyBoxes(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := common.InteractionUserID(i)
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
	owned, err := svcs.Boxes.ListOwnedBoxes(ctx, userID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to list owned boxes"))
		return
	}
	joined, err := svcs.Participants.ListJoinedBoxes(ctx, userID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to list joined boxes"))
		return
	}

	if len(owned) == 0 && len(joined) == 0 {
		common.RespondWithText(s, i,
			"You have no boxes yet. Create one with `/createbox` or join one with `/joinbox`.", true)
		return
	}

	var b strings.Builder
	var rows []discordgo.MessageComponent

	if len(owned) > 0 {
		b.WriteString("**Boxes you own:**\n")
		for _, box := range owned {
			fmt.Fprintf(&b, "%s\n", common.FormatBoxLine(box))
		}
		rows = append(rows, ownedButtonRows(owned)...)
	}
	if len(joined) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("**Boxes you joined:**\n")
		for _, box := range joined {
			fmt.Fprintf(&b, "%s\n", common.FormatBoxLine(box))
		}
		rows = append(rows, joinedButtonRows(joined)...)
	}

	err = common.RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Your Secret Santa boxes",
		Description: strings.TrimRight(b.String(), "\n"),
	}, rows, true)
	if err != nil {
		log.WithError(err).Error("Failed to respond to myboxes")
	}
}
