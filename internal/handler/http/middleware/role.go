package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teampulse/workload-backend-go/internal/domain/user"
	"github.com/teampulse/workload-backend-go/internal/handler/http/response"
)

// RequireManager gates the roster dashboard and user management surface.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || user.Role(role) != user.RoleManager {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireEmployee gates the report submission surface.
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Employee access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || user.Role(role) != user.RoleEmployee {
			response.Forbidden(w, "Employee access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
