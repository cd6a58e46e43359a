package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// AdminChecker reports whether the current profile is signed in as an
// administrator. Satisfied by the account manager.
type AdminChecker interface {
	IsAdmin(ctx context.Context) bool
}

// RequireAdmin gates a route on the admin role. Non-admin visitors are
// sent to the shop page; where they land is a view concern, the role
// check itself is the account manager's.
func RequireAdmin(accounts AdminChecker, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !accounts.IsAdmin(r.Context()) {
				logger.Warn("Non-admin visitor attempted to access admin page",
					zap.String("path", r.URL.Path),
				)
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
