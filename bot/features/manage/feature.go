package manage

import (
	"strings"

	"santabox/bot/flow"
	"santabox/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// Feature drives the owner's box menu: participants, export, draw,
// notifications and deletion.
type Feature struct {
	uowFactory interfaces.UnitOfWorkFactory
	flows      *flow.Store
}

func New(uowFactory interfaces.UnitOfWorkFactory, flows *flow.Store) *Feature {
	return &Feature{
		uowFactory: uowFactory,
		flows:      flows,
	}
}

// HandlesComponent reports whether the custom ID belongs to this feature
func HandlesComponent(customID string) bool {
	return strings.HasPrefix(customID, "manage_")
}

// HandleComponent routes owner menu button presses
func (f *Feature) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, componentMenu):
		f.handleMenuButton(s, i, customID)
	case strings.HasPrefix(customID, componentParticipants):
		f.handleParticipantsButton(s, i, customID)
	case strings.HasPrefix(customID, componentExport):
		f.handleExportButton(s, i, customID)
	case strings.HasPrefix(customID, componentDraw):
		f.handleDrawButton(s, i, customID)
	case strings.HasPrefix(customID, componentNotify):
		f.handleNotifyButton(s, i, customID)
	case strings.HasPrefix(customID, componentDeleteConfirm):
		f.handleDeleteConfirmButton(s, i, customID)
	case strings.HasPrefix(customID, componentDelete):
		f.handleDeleteButton(s, i, customID)
	}
}

// HandleMessage continues an active notify flow from a DM
func (f *Feature) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate, state *flow.State) {
	if state.Step == flow.StepNotifyText {
		f.handleNotifyText(s, m, state)
	}
}
