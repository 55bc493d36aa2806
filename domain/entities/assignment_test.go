package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAssignments(t *testing.T) {
	t.Parallel()

	participants := []int64{1, 2, 3}

	tests := []struct {
		name        string
		assignments []*Assignment
		wantErr     string
	}{
		{
			name: "valid derangement",
			assignments: []*Assignment{
				{BoxID: 1, GiverID: 1, ReceiverID: 2},
				{BoxID: 1, GiverID: 2, ReceiverID: 3},
				{BoxID: 1, GiverID: 3, ReceiverID: 1},
			},
		},
		{
			name: "fixed point",
			assignments: []*Assignment{
				{BoxID: 1, GiverID: 1, ReceiverID: 1},
				{BoxID: 1, GiverID: 2, ReceiverID: 3},
				{BoxID: 1, GiverID: 3, ReceiverID: 2},
			},
			wantErr: "assigned to themself",
		},
		{
			name: "duplicate giver",
			assignments: []*Assignment{
				{BoxID: 1, GiverID: 1, ReceiverID: 2},
				{BoxID: 1, GiverID: 1, ReceiverID: 3},
				{BoxID: 1, GiverID: 3, ReceiverID: 1},
			},
			wantErr: "gives more than once",
		},
		{
			name: "duplicate receiver",
			assignments: []*Assignment{
				{BoxID: 1, GiverID: 1, ReceiverID: 2},
				{BoxID: 1, GiverID: 2, ReceiverID: 1},
				{BoxID: 1, GiverID: 3, ReceiverID: 2},
			},
			wantErr: "receives more than once",
		},
		{
			name: "outsider as receiver",
			assignments: []*Assignment{
				{BoxID: 1, GiverID: 1, ReceiverID: 2},
				{BoxID: 1, GiverID: 2, ReceiverID: 99},
				{BoxID: 1, GiverID: 3, ReceiverID: 1},
			},
			wantErr: "not a participant",
		},
		{
			name: "wrong count",
			assignments: []*Assignment{
				{BoxID: 1, GiverID: 1, ReceiverID: 2},
			},
			wantErr: "does not match participant count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssignments(tt.assignments, participants)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateParticipantField(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateParticipantField(ParticipantFieldName, "Alice"))
	assert.NoError(t, ValidateParticipantField(ParticipantFieldAddress, "12 Main St"))
	assert.NoError(t, ValidateParticipantField(ParticipantFieldWish, "wool socks"))
	assert.Error(t, ValidateParticipantField(ParticipantFieldWish, ""))
	assert.Error(t, ValidateParticipantField(ParticipantField("user_wish; DROP TABLE"), "x"))
}
