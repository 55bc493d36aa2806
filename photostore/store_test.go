package photostore

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndOpen(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Save(strings.NewReader("fake image bytes"), "party.png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".png"))
	assert.True(t, store.Exists(ref))

	f, err := store.Open(ref)
	require.NoError(t, err)
	defer f.Close()

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(content))
}

func TestStore_ExtensionFallback(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name     string
		original string
		wantExt  string
	}{
		{"jpeg kept", "photo.JPEG", ".jpeg"},
		{"webp kept", "photo.webp", ".webp"},
		{"executable rejected", "photo.exe", ".jpg"},
		{"no extension", "photo", ".jpg"},
		{"path traversal in name", "../../etc/passwd", ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := store.Save(strings.NewReader("x"), tt.original)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(ref, tt.wantExt), "got %s", ref)
		})
	}
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Save(strings.NewReader("x"), "a.jpg")
	require.NoError(t, err)

	require.NoError(t, store.Remove(ref))
	assert.False(t, store.Exists(ref))

	// Idempotent
	require.NoError(t, store.Remove(ref))
}

func TestStore_DistinctRefs(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(strings.NewReader("a"), "same.jpg")
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("b"), "same.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
