package boxes

import (
	"santabox/bot/flow"
	"santabox/domain/interfaces"
	"santabox/photostore"

	"github.com/bwmarrin/discordgo"
)

// Feature drives the box creation flow: name, optional photo, description.
type Feature struct {
	uowFactory interfaces.UnitOfWorkFactory
	flows      *flow.Store
	photos     *photostore.Store
}

func New(uowFactory interfaces.UnitOfWorkFactory, flows *flow.Store, photos *photostore.Store) *Feature {
	return &Feature{
		uowFactory: uowFactory,
		flows:      flows,
		photos:     photos,
	}
}

// HandleCommand starts the creation flow for /createbox
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleCreateBox(s, i)
}

// HandleMessage continues an active creation flow from a DM
func (f *Feature) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate, state *flow.State) {
	switch state.Step {
	case flow.StepCreateName:
		f.handleNameStep(s, m, state)
	case flow.StepCreatePhoto:
		f.handlePhotoStep(s, m, state)
	case flow.StepCreateDescription:
		f.handleDescriptionStep(s, m, state)
	}
}
