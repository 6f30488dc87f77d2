package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklens/workforce-backend-go/internal/domain/user"
	"github.com/worklens/workforce-backend-go/internal/handler/http/response"
)

func roleFromContext(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	role, ok := claims["role"].(string)
	return user.Role(role), ok
}

// AdminOnly restricts a route to company administrators.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || role != user.RoleAdmin {
			response.Forbidden(w, "Administrator privilege required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ManagerOnly restricts a route to managers and administrators.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || (role != user.RoleAdmin && role != user.RoleManager) {
			response.Forbidden(w, "Manager privilege required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
