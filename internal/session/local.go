// Package session provides implementations of domain.SessionProvider.
//
// Manager gives every HTTP client its own identity through its session
// cookie. Local shares a single identity across all callers and backs the
// -single-session mode of the server, meant for one operator driving the
// service from a console.
package session

import (
	"context"
	"sync"

	"github.com/metinatakli/ticket-service/internal/domain"
)

// Local holds at most one identity for the whole process. Signing in replaces
// it and signing out clears it; the context is ignored.
type Local struct {
	mu       sync.RWMutex
	identity *domain.Identity
}

func NewLocal() *Local {
	return &Local{}
}

func (l *Local) CurrentIdentity(_ context.Context) (domain.Identity, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.identity == nil {
		return domain.Identity{}, false
	}

	return *l.identity, true
}

func (l *Local) SetCurrentIdentity(_ context.Context, identity domain.Identity) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.identity = &identity

	return nil
}

func (l *Local) ClearCurrentIdentity(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.identity = nil

	return nil
}
