package middleware

import (
	"net/http"
	"strings"

	"github.com/eshop-platform/payment-service/internal/auth"
	"github.com/eshop-platform/payment-service/internal/handler"
)

// Auth guards a route with bearer-token validation against the configured
// identity tenant and audience.
func Auth(secret, tenantDomain, audience string) func(http.Handler) http.Handler {
	issuer := auth.IssuerURL(tenantDomain)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handler.RespondAppError(w, handler.ErrMissingToken, nil)
				return
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				handler.RespondAppError(w, handler.ErrInvalidToken, nil)
				return
			}

			claims, err := auth.ValidateToken(token, secret, issuer, audience)
			if err != nil {
				handler.RespondAppError(w, handler.ErrInvalidToken, nil)
				return
			}

			ctx := auth.ContextWithSubject(r.Context(), claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
