package uploads

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "photo.png", "photo.png"},
		{"uppercase", "Photo.PNG", "photo.png"},
		{"spaces", "my holiday photo.jpg", "my-holiday-photo.jpg"},
		{"diacritics", "café.txt", "cafe.txt"},
		{"path traversal", "../../etc/passwd", "passwd"},
		{"windows path", `C:\Users\me\doc.pdf`, "doc.pdf"},
		{"empty", "", "file"},
		{"dot", ".", "file"},
		{"dotdot", "..", "file"},
		{"windows reserved", "con.txt", "_con.txt"},
		{"only symbols", "!!!@@@.png", "file.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeFileName(tt.in))
		})
	}
}

func TestSafeFileName_LongNamesTruncated(t *testing.T) {
	long := strings.Repeat("a", 300) + ".txt"
	got := SafeFileName(long)
	assert.LessOrEqual(t, len(got), maxBaseNameLen+len(".txt"))
	assert.True(t, strings.HasSuffix(got, ".txt"))
}

func TestStorageKey_Shape(t *testing.T) {
	owner := uuid.New()
	key := StorageKey(owner, "photo.png")

	require.True(t, strings.HasPrefix(key, fmt.Sprintf("uploads/%s/", owner)))
	assert.True(t, strings.HasSuffix(key, "_photo.png"))
}

func TestStorageKey_SameNameSameInstantNeverCollides(t *testing.T) {
	// Two uploads of the same name can land in the same millisecond; the
	// nonce must keep their keys distinct.
	owner := uuid.New()
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		key := StorageKey(owner, "photo.png")
		_, dup := seen[key]
		require.False(t, dup, "duplicate storage key %q", key)
		seen[key] = struct{}{}
	}
}

func TestAvatarKey_StablePerOwner(t *testing.T) {
	owner := uuid.New()
	assert.Equal(t, AvatarKey(owner), AvatarKey(owner))
	assert.Equal(t, "avatars/"+owner.String(), AvatarKey(owner))
}
