package manage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Component custom ID prefixes. The box ID is appended after the prefix.
const (
	componentMenu          = "manage_box_"
	componentParticipants  = "manage_participants_"
	componentExport        = "manage_export_"
	componentDraw          = "manage_draw_"
	componentNotify        = "manage_notify_"
	componentDelete        = "manage_delete_"
	componentDeleteConfirm = "manage_delete_confirm_"
)

// parseBoxID extracts the box ID suffix from a component custom ID
func parseBoxID(customID, prefix string) (int64, error) {
	raw := strings.TrimPrefix(customID, prefix)
	boxID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed custom ID %q: %w", customID, err)
	}
	return boxID, nil
}

// OwnerMenu builds the button rows shown to a box owner
func OwnerMenu(boxID int64) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Participants",
					Style:    discordgo.SecondaryButton,
					CustomID: fmt.Sprintf("%s%d", componentParticipants, boxID),
				},
				discordgo.Button{
					Label:    "Export CSV",
					Style:    discordgo.SecondaryButton,
					CustomID: fmt.Sprintf("%s%d", componentExport, boxID),
				},
				discordgo.Button{
					Label:    "Draw names",
					Style:    discordgo.PrimaryButton,
					CustomID: fmt.Sprintf("%s%d", componentDraw, boxID),
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Message participants",
					Style:    discordgo.SecondaryButton,
					CustomID: fmt.Sprintf("%s%d", componentNotify, boxID),
				},
				discordgo.Button{
					Label:    "Delete box",
					Style:    discordgo.DangerButton,
					CustomID: fmt.Sprintf("%s%d", componentDelete, boxID),
				},
			},
		},
	}
}

// MenuButton builds the button that opens an owner menu from list views
func MenuButton(boxID int64) discordgo.Button {
	return discordgo.Button{
		Label:    "Manage",
		Style:    discordgo.PrimaryButton,
		CustomID: fmt.Sprintf("%s%d", componentMenu, boxID),
	}
}

// deleteConfirmRow builds the confirmation buttons for box deletion
func deleteConfirmRow(boxID int64) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Yes, delete everything",
					Style:    discordgo.DangerButton,
					CustomID: fmt.Sprintf("%s%d", componentDeleteConfirm, boxID),
				},
			},
		},
	}
}
