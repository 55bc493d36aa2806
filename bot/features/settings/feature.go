package settings

import (
	"santabox/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the welcome message and the per-user box overview
type Feature struct {
	uowFactory interfaces.UnitOfWorkFactory
}

func New(uowFactory interfaces.UnitOfWorkFactory) *Feature {
	return &Feature{
		uowFactory: uowFactory,
	}
}

// HandleStart handles /start
func (f *Feature) HandleStart(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleStart(s, i)
}

// HandleMyBoxes handles /myboxes
func (f *Feature) HandleMyBoxes(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleMyBoxes(s, i)
}
