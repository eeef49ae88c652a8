package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrconsole/attendance-backend-go/internal/handler/http/response"
)

const (
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// RequireManager guards the correction workflow: only managers may
// approve or reject. Viewers can still read every derived view.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "manager role required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != RoleManager {
			response.Forbidden(w, "manager role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
