package common

import (
	"fmt"
	"strings"

	"santabox/domain/entities"
)

// FormatBox renders a box for display in DMs and menus
func FormatBox(box *entities.Box) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (ID: %d)\n", box.Name, box.ID)
	fmt.Fprintf(&b, "%s", box.Description)
	return b.String()
}

// FormatBoxLine renders a one-line box summary for list views
func FormatBoxLine(box *entities.Box) string {
	return fmt.Sprintf("• **%s** — ID `%d`", box.Name, box.ID)
}

// FormatParticipant renders a participant's own enrollment details
func FormatParticipant(p *entities.Participant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Name:** %s\n", p.Name)
	fmt.Fprintf(&b, "**Address:** %s\n", p.Address)
	fmt.Fprintf(&b, "**Wish:** %s", p.Wish)
	return b.String()
}

// FormatParticipantList renders all enrollments of a box for its owner.
// users maps participant user IDs to their Discord accounts; participants
// without a resolved account are listed by their entered name alone.
func FormatParticipantList(participants []*entities.Participant, users map[int64]*entities.User) string {
	if len(participants) == 0 {
		return "Nobody has joined this box yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d participant(s):\n", len(participants))
	for i, p := range participants {
		if user, ok := users[p.UserID]; ok {
			fmt.Fprintf(&b, "%d. **%s** (@%s) — wish: %s\n", i+1, p.Name, user.Username, p.Wish)
		} else {
			fmt.Fprintf(&b, "%d. **%s** — wish: %s\n", i+1, p.Name, p.Wish)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatAssignmentDM renders the message a giver receives after a draw
func FormatAssignmentDM(boxName, receiverName, address, wish string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎁 The names for **%s** have been drawn!\n\n", boxName)
	fmt.Fprintf(&b, "You are the Secret Santa of **%s**.\n", receiverName)
	if address != "" {
		fmt.Fprintf(&b, "**Delivery address:** %s\n", address)
	}
	if wish != "" {
		fmt.Fprintf(&b, "**Their wish:** %s\n", wish)
	}
	return strings.TrimRight(b.String(), "\n")
}
