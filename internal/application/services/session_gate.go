package services

import (
	"sync"

	accdomain "github.com/kieeler123/cloud-service/internal/domain/account"
)

type AuthState int

const (
	// AuthStateUnknown lasts from construction until the first token check
	// settles; callers must treat it as "don't render either way", not as
	// signed-out.
	AuthStateUnknown AuthState = iota
	AuthStateAuthenticated
	AuthStateUnauthenticated
)

func (s AuthState) String() string {
	switch s {
	case AuthStateAuthenticated:
		return "authenticated"
	case AuthStateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// SessionGate tracks the resolved session state for a connection-scoped
// consumer such as the event stream. It starts Unknown and settles exactly
// once into one of the two terminal branches; later sign-in/sign-out flips
// between them but never back to Unknown.
type SessionGate struct {
	mu        sync.Mutex
	state     AuthState
	ownerUUID accdomain.UUID
	observers []func(AuthState, accdomain.UUID)
}

func NewSessionGate() *SessionGate {
	return &SessionGate{state: AuthStateUnknown}
}

// Resolve settles (or re-settles) the gate as authenticated for the owner.
func (g *SessionGate) Resolve(ownerUUID accdomain.UUID) {
	g.transition(AuthStateAuthenticated, ownerUUID)
}

// Reject settles the gate as unauthenticated; it also models sign-out.
func (g *SessionGate) Reject() {
	g.transition(AuthStateUnauthenticated, accdomain.UUID{})
}

func (g *SessionGate) State() (AuthState, accdomain.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state, g.ownerUUID
}

// OnChange registers an observer invoked on every state transition. It is not
// invoked at registration time.
func (g *SessionGate) OnChange(fn func(AuthState, accdomain.UUID)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.observers = append(g.observers, fn)
}

func (g *SessionGate) transition(next AuthState, ownerUUID accdomain.UUID) {
	g.mu.Lock()
	if g.state == next && g.ownerUUID == ownerUUID {
		g.mu.Unlock()
		return
	}
	g.state = next
	g.ownerUUID = ownerUUID
	observers := make([]func(AuthState, accdomain.UUID), len(g.observers))
	copy(observers, g.observers)
	g.mu.Unlock()

	for _, fn := range observers {
		fn(next, ownerUUID)
	}
}
