package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	accdomain "github.com/kieeler123/cloud-service/internal/domain/account"
)

func TestSessionGate(t *testing.T) {
	t.Run("starts unknown", func(t *testing.T) {
		g := NewSessionGate()
		state, owner := g.State()
		assert.Equal(t, AuthStateUnknown, state)
		assert.Equal(t, accdomain.UUID{}, owner)
	})

	t.Run("resolve then reject", func(t *testing.T) {
		g := NewSessionGate()
		ownerUUID := uuid.New()

		g.Resolve(ownerUUID)
		state, owner := g.State()
		assert.Equal(t, AuthStateAuthenticated, state)
		assert.Equal(t, ownerUUID, owner)

		g.Reject()
		state, owner = g.State()
		assert.Equal(t, AuthStateUnauthenticated, state)
		assert.Equal(t, accdomain.UUID{}, owner)
	})

	t.Run("observers fire on transitions only", func(t *testing.T) {
		g := NewSessionGate()

		var seen []AuthState
		g.OnChange(func(s AuthState, _ accdomain.UUID) {
			seen = append(seen, s)
		})
		assert.Empty(t, seen, "registration must not fire the observer")

		ownerUUID := uuid.New()
		g.Resolve(ownerUUID)
		g.Resolve(ownerUUID) // no-op, same state and owner
		g.Reject()

		assert.Equal(t, []AuthState{AuthStateAuthenticated, AuthStateUnauthenticated}, seen)
	})

	t.Run("state strings", func(t *testing.T) {
		assert.Equal(t, "unknown", AuthStateUnknown.String())
		assert.Equal(t, "authenticated", AuthStateAuthenticated.String())
		assert.Equal(t, "unauthenticated", AuthStateUnauthenticated.String())
	})
}
