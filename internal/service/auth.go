// Package service holds the scheduling, pricing and booking engines and the
// catalog operations around them. Every operation reads the caller from a
// domain.SessionProvider and reports failures as domain errors.
package service

import (
	"context"

	"github.com/metinatakli/ticket-service/internal/domain"
)

func requireAdmin(ctx context.Context, sessions domain.SessionProvider) error {
	identity, ok := sessions.CurrentIdentity(ctx)
	if !ok || !identity.IsAdmin() {
		return domain.ErrNotAuthorized
	}

	return nil
}

// requireCaller succeeds only when the current identity is exactly username.
// It is an equality check, not a lookup.
func requireCaller(ctx context.Context, sessions domain.SessionProvider, username string) (domain.Identity, error) {
	identity, ok := sessions.CurrentIdentity(ctx)
	if !ok || username == "" || identity.Username != username {
		return domain.Identity{}, domain.ErrNotAuthenticated
	}

	return identity, nil
}
