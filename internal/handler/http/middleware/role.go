package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/restoops/staff-backend-go/internal/domain/user"
	"github.com/restoops/staff-backend-go/internal/handler/http/response"
)

// roleFromContext reads the role claim set at login. ok is false when the
// token is missing or carries no role.
func roleFromContext(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", false
	}
	return user.Role(role), true
}

// RequirePermission rejects callers whose role lacks permission.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := roleFromContext(r)
			if !ok || !user.HasPermission(role, permission) {
				response.HandleError(w, fmt.Errorf("%w: required '%s'", user.ErrInsufficientPermissions, permission))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
