// Package services holds the client-side business logic between the CLI
// and the API client: session bootstrap, the status guard, the cart,
// checkout, the order lifecycle, OTP flows and the admin console.
package services

import (
	"context"

	"github.com/novakart/storefront/internal/client/api"
	"github.com/novakart/storefront/internal/client/session"
	"github.com/novakart/storefront/internal/logging"
)

// Guard gates sensitive actions on a fresh server-side check of the
// user's standing. The persisted profile is never trusted for this: a
// ban or deactivation applied since login must take effect immediately.
type Guard struct {
	api     api.Client
	session *session.Store
	log     logging.Logger
}

func NewGuard(client api.Client, sess *session.Store, log logging.Logger) *Guard {
	return &Guard{api: client, session: sess, log: log}
}

// Check refetches the current user and reports whether the action may
// proceed. A missing, deactivated or banned account terminates the
// session. A transport failure denies the action but keeps the session:
// flaky networks must not log people out.
func (g *Guard) Check(ctx context.Context) bool {
	u, err := g.api.GetCurrentUser(ctx)
	if err != nil {
		g.log.Warn(ctx, "status check failed, denying action", "err", err)
		return false
	}
	if u == nil || !u.InGoodStanding() {
		g.log.Info(ctx, "account no longer in good standing, logging out")
		g.session.ForceLogout(ctx)
		return false
	}
	if err := g.session.SetCurrentUser(ctx, u); err != nil {
		g.log.Warn(ctx, "could not persist refreshed user", "err", err)
	}
	return true
}
