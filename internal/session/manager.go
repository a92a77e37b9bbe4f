package session

import (
	"context"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/ticket-service/internal/domain"
)

type sessionKey string

const (
	KeyUserId   = sessionKey("userID")
	KeyUsername = sessionKey("username")
	KeyRole     = sessionKey("role")
)

func (s sessionKey) String() string {
	return string(s)
}

// Manager keys the identity on the scs session loaded into the request
// context, so every HTTP client gets its own current identity.
type Manager struct {
	sm *scs.SessionManager
}

func NewManager(sm *scs.SessionManager) *Manager {
	return &Manager{sm: sm}
}

func (m *Manager) CurrentIdentity(ctx context.Context) (domain.Identity, bool) {
	userId := m.sm.GetInt(ctx, KeyUserId.String())
	if userId == 0 {
		return domain.Identity{}, false
	}

	identity := domain.Identity{
		UserID:   userId,
		Username: m.sm.GetString(ctx, KeyUsername.String()),
		Role:     domain.Role(m.sm.GetString(ctx, KeyRole.String())),
	}

	return identity, true
}

func (m *Manager) SetCurrentIdentity(ctx context.Context, identity domain.Identity) error {
	// To help prevent session fixation attacks the token is renewed on every privilege level change.
	err := m.sm.RenewToken(ctx)
	if err != nil {
		return err
	}

	m.sm.Put(ctx, KeyUserId.String(), identity.UserID)
	m.sm.Put(ctx, KeyUsername.String(), identity.Username)
	m.sm.Put(ctx, KeyRole.String(), string(identity.Role))

	return nil
}

func (m *Manager) ClearCurrentIdentity(ctx context.Context) error {
	return m.sm.Destroy(ctx)
}
