package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (ctxutil.Identity, error)
}

type accountLookup interface {
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.User, error)
}

// Auth resolves the bearer token into the caller identity. Requests without
// a token pass through anonymously; services decide whether that is enough.
// A token that fails validation, or whose account no longer exists, is
// rejected with 401.
//
// The role in the identity is the one stored on the account, not the token
// claim, so role changes apply to tokens issued before them.
func Auth(validator tokenValidator, accounts accountLookup) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			id, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			u, err := accounts.GetByID(r.Context(), id.ChurchID, id.UserID)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			case err != nil:
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			id.Role = u.Role.String()

			reportIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithIdentity(r.Context(), id)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
