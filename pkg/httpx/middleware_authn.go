package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/boards/pkg/slogx"
)

// TokenVerifier resolves a bearer token to the id of the user it was issued
// to.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (userID string, err error)
}

const (
	msgMissingToken = "No token, authorization denied"
	msgInvalidToken = "Token is not valid"
)

// AuthnMiddleware requires "Authorization: Bearer <token>" and puts the
// verified user id into the request context.
func AuthnMiddleware(v TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeBearerError(w, "missing bearer token", msgMissingToken)
				return
			}

			userID, err := v.VerifyToken(ctx, raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "token verification failed", msgInvalidToken)
				return
			}

			ctx = WithUserID(ctx, userID)
			ctx = slogx.WithUserID(ctx, userID)
			slogx.Promote(ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RFC 6750-compliant error response for bearer auth, with the usual
// envelope as the body.
func writeBearerError(w http.ResponseWriter, desc, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, msg)
}
