package middleware

import (
	"context"
	"errors"
	"net/http"

	"tienda_server/lib"
	"tienda_server/structs"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing admin session data in request context
type contextKey string

const ClaimsContextKey contextKey = "admin_claims"

// AdminAuthMiddleware protects routes to authenticated admins. An absent
// token and a present-but-invalid token get distinct responses so clients can
// tell "log in first" apart from "your session is broken".
func (mw *Middleware) AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr, err := lib.ExtractAdminToken(r)
		if err != nil {
			gecho.Unauthorized(w,
				gecho.WithMessage("Access denied: missing session token"),
				gecho.Send(),
			)
			return
		}

		claims, err := lib.ParseAdminToken(tokenStr, mw.cfg.Auth.TokenSecret)
		if err != nil {
			if !errors.Is(err, lib.ErrInvalidToken) {
				mw.logger.Warn("Unexpected token parse failure", gecho.Field("error", err))
			}
			gecho.BadRequest(w,
				gecho.WithMessage("Invalid session token"),
				gecho.Send(),
			)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaimsFromContext extracts the admin claims placed by AdminAuthMiddleware.
func GetClaimsFromContext(ctx context.Context) (*structs.AdminClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*structs.AdminClaims)
	return claims, ok
}
