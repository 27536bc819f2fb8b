package transport

import (
	"context"
	"net/http"

	"docmeister/internal/models/entity"
	"docmeister/internal/service"
	"docmeister/pkg/appError"
)

type contextKey string

const userKey contextKey = "user"

// requireIdentity wraps protected handlers. Every protected call must carry
// both an email header and a bearer token, and the two must resolve to the
// same user. On failure the request is short-circuited before dispatch.
func requireIdentity(authService service.AuthService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			email := r.Header.Get("email")
			bearer := r.Header.Get("Authorization")

			if email == "" || bearer == "" {
				writeError(w, appError.BadRequest("email and authorization headers are required"))
				return
			}

			user, err := authService.Authenticate(r.Context(), email, bearer)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next(w, r.WithContext(ctx))
		}
	}
}

func userFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userKey).(*entity.User)
	return user, ok
}
