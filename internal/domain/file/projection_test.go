package file

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(name string, createdAgo time.Duration, trashed bool, trashedAgo time.Duration) *Record {
	r := &Record{
		UUID:      uuid.New(),
		Name:      name,
		CreatedAt: time.Now().Add(-createdAgo),
		IsTrashed: trashed,
	}
	if trashed {
		ts := time.Now().Add(-trashedAgo)
		r.TrashedAt = &ts
	}
	return r
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		in      string
		want    Scope
		wantErr bool
	}{
		{"active", ScopeActive, false},
		{"", ScopeActive, false},
		{"trash", ScopeTrashed, false},
		{"deleted", "", true},
		{"Active", "", true},
	}
	for _, tt := range tests {
		t.Run("scope "+tt.in, func(t *testing.T) {
			got, err := ParseScope(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProject_ActiveExcludesTrashedOnEverySnapshot(t *testing.T) {
	// Same record set projected twice: the exclusion must not depend on
	// any state kept between applications.
	snapshot := Records{
		rec("a.png", 3*time.Hour, false, 0),
		rec("b.pdf", 2*time.Hour, true, time.Hour),
		rec("c.txt", time.Hour, false, 0),
	}

	for i := 0; i < 2; i++ {
		got := Project(snapshot, ScopeActive)
		require.Len(t, got, 2)
		for _, r := range got {
			assert.False(t, r.IsTrashed)
		}
	}
}

func TestProject_ActiveOrdersByCreatedAtDesc(t *testing.T) {
	snapshot := Records{
		rec("old", 3*time.Hour, false, 0),
		rec("newest", 10*time.Minute, false, 0),
		rec("mid", time.Hour, false, 0),
	}

	got := Project(snapshot, ScopeActive)
	require.Len(t, got, 3)
	assert.Equal(t, "newest", got[0].Name)
	assert.Equal(t, "mid", got[1].Name)
	assert.Equal(t, "old", got[2].Name)
}

func TestProject_TrashedOnlyAndOrderedByTrashedAtDesc(t *testing.T) {
	snapshot := Records{
		rec("kept", time.Hour, false, 0),
		rec("binned-late", 4*time.Hour, true, 10*time.Minute),
		rec("binned-early", 5*time.Hour, true, 2*time.Hour),
	}

	got := Project(snapshot, ScopeTrashed)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.True(t, r.IsTrashed)
	}
	assert.Equal(t, "binned-late", got[0].Name)
	assert.Equal(t, "binned-early", got[1].Name)
}

func TestProject_NilTrashedAtSortsLast(t *testing.T) {
	// A restore leaves TrashedAt behind; a direct write could leave it
	// missing. Ordering must not panic on either shape.
	missing := rec("no-ts", time.Hour, true, 0)
	missing.TrashedAt = nil

	got := Project(Records{missing, rec("with-ts", time.Hour, true, time.Minute)}, ScopeTrashed)
	require.Len(t, got, 2)
	assert.Equal(t, "with-ts", got[0].Name)
	assert.Equal(t, "no-ts", got[1].Name)
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	a := rec("a", 2*time.Hour, false, 0)
	b := rec("b", time.Hour, true, time.Minute)
	in := Records{a, b}

	_ = Project(in, ScopeActive)
	_ = Project(in, ScopeTrashed)

	assert.Same(t, a, in[0])
	assert.Same(t, b, in[1])
}

func TestProject_EmptyAndNil(t *testing.T) {
	assert.Empty(t, Project(nil, ScopeActive))
	assert.Empty(t, Project(Records{nil}, ScopeTrashed))
}
