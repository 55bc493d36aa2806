package manage

import (
	"encoding/csv"
	"strings"
	"testing"

	"santabox/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParticipantsCSV(t *testing.T) {
	t.Parallel()

	participants := []*entities.Participant{
		{UserID: 100, Name: "Alice", Address: "12 Main St", Wish: "a book"},
		{UserID: 200, Name: "Bob, the builder", Address: "9 Side St\napartment 3", Wish: `"fancy" socks`},
	}

	content, err := buildParticipantsCSV(participants)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(content))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"user_id", "name", "address", "wish"}, records[0])
	assert.Equal(t, []string{"100", "Alice", "12 Main St", "a book"}, records[1])

	// Commas, quotes and newlines in fields survive the round trip
	assert.Equal(t, []string{"200", "Bob, the builder", "9 Side St\napartment 3", `"fancy" socks`}, records[2])
}

func TestBuildParticipantsCSV_Empty(t *testing.T) {
	t.Parallel()

	content, err := buildParticipantsCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(content))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestParseBoxID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		customID string
		prefix   string
		want     int64
		wantErr  bool
	}{
		{name: "menu button", customID: "manage_box_42", prefix: componentMenu, want: 42},
		{name: "delete confirm", customID: "manage_delete_confirm_7", prefix: componentDeleteConfirm, want: 7},
		{name: "garbage suffix", customID: "manage_box_abc", prefix: componentMenu, wantErr: true},
		{name: "empty suffix", customID: "manage_box_", prefix: componentMenu, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseBoxID(tt.customID, tt.prefix)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
