package common

import (
	"testing"

	"santabox/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestFormatParticipantList(t *testing.T) {
	t.Parallel()

	participants := []*entities.Participant{
		{UserID: 100, Name: "Alice", Wish: "a book"},
		{UserID: 200, Name: "Bob", Wish: "socks"},
	}
	users := map[int64]*entities.User{
		100: {ID: 100, Username: "alice#discord"},
	}

	got := FormatParticipantList(participants, users)

	assert.Contains(t, got, "2 participant(s):")
	assert.Contains(t, got, "**Alice** (@alice#discord) — wish: a book")

	// Participants without a resolved account fall back to the entered name
	assert.Contains(t, got, "**Bob** — wish: socks")
	assert.NotContains(t, got, "Bob** (@")
}

func TestFormatParticipantList_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Nobody has joined this box yet.", FormatParticipantList(nil, nil))
}

func TestFormatAssignmentDM(t *testing.T) {
	t.Parallel()

	got := FormatAssignmentDM("Office 2026", "Alice", "12 Main St", "a book")
	assert.Contains(t, got, "**Office 2026**")
	assert.Contains(t, got, "Secret Santa of **Alice**")
	assert.Contains(t, got, "12 Main St")

	// Empty address and wish lines are omitted entirely
	bare := FormatAssignmentDM("Office 2026", "Alice", "", "")
	assert.NotContains(t, bare, "Delivery address")
	assert.NotContains(t, bare, "Their wish")
}
