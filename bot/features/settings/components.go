package settings

import (
	"santabox/bot/features/join"
	"santabox/bot/features/manage"
	"santabox/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// Main menu custom IDs, routed back to the command handlers
const (
	ComponentCreateBox = "menu_createbox"
	ComponentJoinBox   = "menu_joinbox"
	ComponentMyBoxes   = "menu_myboxes"
)

// mainMenu builds the entry buttons shown by /start
func mainMenu() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Create a box",
					Style:    discordgo.PrimaryButton,
					CustomID: ComponentCreateBox,
				},
				discordgo.Button{
					Label:    "Join a box",
					Style:    discordgo.PrimaryButton,
					CustomID: ComponentJoinBox,
				},
				discordgo.Button{
					Label:    "My boxes",
					Style:    discordgo.SecondaryButton,
					CustomID: ComponentMyBoxes,
				},
			},
		},
	}
}

// Discord caps a message at 5 action rows of 5 buttons each. The overview
// splits that budget between owned and joined boxes, so each side gets at
// most 10 buttons. Older boxes beyond that are listed as text only.
const maxButtonsPerSection = 10

func buttonRows(boxes []*entities.Box, makeButton func(int64) discordgo.Button) []discordgo.MessageComponent {
	if len(boxes) > maxButtonsPerSection {
		boxes = boxes[:maxButtonsPerSection]
	}

	var rows []discordgo.MessageComponent
	for start := 0; start < len(boxes); start += 5 {
		end := start + 5
		if end > len(boxes) {
			end = len(boxes)
		}

		var buttons []discordgo.MessageComponent
		for _, box := range boxes[start:end] {
			btn := makeButton(box.ID)
			btn.Label = box.Name
			buttons = append(buttons, btn)
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}
	return rows
}

func ownedButtonRows(boxes []*entities.Box) []discordgo.MessageComponent {
	return buttonRows(boxes, func(boxID int64) discordgo.Button {
		return manage.MenuButton(boxID)
	})
}

func joinedButtonRows(boxes []*entities.Box) []discordgo.MessageComponent {
	return buttonRows(boxes, func(boxID int64) discordgo.Button {
		return join.MenuButton(boxID)
	})
}
