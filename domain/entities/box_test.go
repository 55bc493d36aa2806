package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBoxName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "normal name",
			input: "Office 2024",
		},
		{
			name:  "exactly at limit",
			input: strings.Repeat("a", MaxBoxNameLength),
		},
		{
			name:    "one over limit",
			input:   strings.Repeat("a", MaxBoxNameLength+1),
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name: "multibyte runes counted as characters not bytes",
			// 100 cyrillic characters are 200 bytes but still within the limit
			input: strings.Repeat("ё", MaxBoxNameLength),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateBoxName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBoxDescription(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateBoxDescription("Budget $20, no gag gifts"))
	assert.NoError(t, ValidateBoxDescription(strings.Repeat("d", MaxBoxDescriptionLength)))
	assert.Error(t, ValidateBoxDescription(strings.Repeat("d", MaxBoxDescriptionLength+1)))
	assert.Error(t, ValidateBoxDescription(""))
}

func TestBoxHasPhoto(t *testing.T) {
	t.Parallel()

	ref := "photos/abc.jpg"
	assert.True(t, (&Box{PhotoRef: &ref}).HasPhoto())
	assert.False(t, (&Box{}).HasPhoto())

	empty := ""
	assert.False(t, (&Box{PhotoRef: &empty}).HasPhoto())
}

func TestBoxIsOwnedBy(t *testing.T) {
	t.Parallel()

	box := &Box{ID: 1, OwnerID: 42}
	assert.True(t, box.IsOwnedBy(42))
	assert.False(t, box.IsOwnedBy(43))
}
