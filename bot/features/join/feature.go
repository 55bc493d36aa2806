package join

import (
	"strings"

	"santabox/bot/flow"
	"santabox/domain/interfaces"
	"santabox/photostore"

	"github.com/bwmarrin/discordgo"
)

// Feature drives the joining flow and the participant's box menu,
// including the per-field edit flows.
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

// HandleCommand starts the joining flow for /joinbox
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleJoinBox(s, i)
}

// HandleMessage continues an active joining or edit flow from a DM
func (f *Feature) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate, state *flow.State) {
	switch state.Step {
	case flow.StepJoinBoxID:
		f.handleBoxIDStep(s, m, state)
	case flow.StepJoinName:
		f.handleNameStep(s, m, state)
	case flow.StepJoinAddress:
		f.handleAddressStep(s, m, state)
	case flow.StepJoinWish:
		f.handleWishStep(s, m, state)
	case flow.StepEditName, flow.StepEditAddress, flow.StepEditWish:
		f.handleEditStep(s, m, state)
	}
}

// HandlesComponent reports whether the custom ID belongs to this feature
func HandlesComponent(customID string) bool {
	return strings.HasPrefix(customID, "participant_")
}

// HandleComponent routes participant menu button presses
func (f *Feature) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, componentEditName):
		f.handleEditButton(s, i, customID, componentEditName, flow.StepEditName, "What name should I use instead?")
	case strings.HasPrefix(customID, componentEditAddress):
		f.handleEditButton(s, i, customID, componentEditAddress, flow.StepEditAddress, "What is your new delivery address?")
	case strings.HasPrefix(customID, componentEditWish):
		f.handleEditButton(s, i, customID, componentEditWish, flow.StepEditWish, "What do you wish for instead?")
	case strings.HasPrefix(customID, componentInfo):
		f.handleInfoButton(s, i, customID)
	case strings.HasPrefix(customID, componentLeave):
		f.handleLeaveButton(s, i, customID)
	case strings.HasPrefix(customID, componentMenu):
		f.handleMenuButton(s, i, customID)
	}
}
