package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/tranvhq/golibrary/pkg/utils"
)

type ContextKey string

const (
	UserIDKey  ContextKey = "userID"
	IsStaffKey ContextKey = "isStaff"
)

func AuthMiddleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, IsStaffKey, claims.IsStaff)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext pulls the authenticated identity placed by
// AuthMiddleware out of the request context.
func ActorFromContext(ctx context.Context) (userID int, isStaff bool) {
	userID, _ = ctx.Value(UserIDKey).(int)
	isStaff, _ = ctx.Value(IsStaffKey).(bool)
	return
}

// RequireStaff rejects requests whose token lacks the staff capability. It
// must run after AuthMiddleware.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isStaff, ok := r.Context().Value(IsStaffKey).(bool)
		if !ok || !isStaff {
			utils.RespondWithError(w, http.StatusForbidden, "Staff capability required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
