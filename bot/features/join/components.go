package join

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Component custom ID prefixes. The box ID is appended after the prefix.
const (
	componentMenu        = "participant_box_"
	componentEditName    = "participant_edit_name_"
	componentEditAddress = "participant_edit_address_"
	componentEditWish    = "participant_edit_wish_"
	componentInfo        = "participant_info_"
	componentLeave       = "participant_leave_"
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

// ParticipantMenu builds the button rows shown to a participant of a box
func ParticipantMenu(boxID int64) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Edit name",
					Style:    discordgo.SecondaryButton,
					CustomID: fmt.Sprintf("%s%d", componentEditName, boxID),
				},
				discordgo.Button{
					Label:    "Edit address",
					Style:    discordgo.SecondaryButton,
					CustomID: fmt.Sprintf("%s%d", componentEditAddress, boxID),
				},
				discordgo.Button{
					Label:    "Edit wish",
					Style:    discordgo.SecondaryButton,
					CustomID: fmt.Sprintf("%s%d", componentEditWish, boxID),
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Box info",
					Style:    discordgo.PrimaryButton,
					CustomID: fmt.Sprintf("%s%d", componentInfo, boxID),
				},
				discordgo.Button{
					Label:    "Leave box",
					Style:    discordgo.DangerButton,
					CustomID: fmt.Sprintf("%s%d", componentLeave, boxID),
				},
			},
		},
	}
}

// MenuButton builds the button that opens a participant menu from list views
func MenuButton(boxID int64) discordgo.Button {
	return discordgo.Button{
		Label:    "Open",
		Style:    discordgo.SecondaryButton,
		CustomID: fmt.Sprintf("%s%d", componentMenu, boxID),
	}
}
