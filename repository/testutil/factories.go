package testutil

import (
	"santabox/domain/entities"
)

// CreateTestParticipant creates a participant with default values
func CreateTestParticipant(userID, boxID int64) *entities.Participant {
	return &entities.Participant{
		BoxID:   boxID,
		UserID:  userID,
		Name:    "Test Participant",
		Address: "1 Test Street",
		Wish:    "a surprise",
	}
}

// CreateTestParticipantWithName creates a participant with a specific display name
func CreateTestParticipantWithName(userID, boxID int64, name string) *entities.Participant {
	p := CreateTestParticipant(userID, boxID)
	p.Name = name
	return p
}
