package httpapi

import (
	"net/http"

	"github.com/eliwerner/todo-website/internal/auth"
)

// requireUser resolves the Authorization header to a user id and injects the
// principal into the request context. The header value is the session token
// itself; there is no "Bearer " prefix. Requests that do not resolve are
// rejected before any persistence work.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		userID, ok := s.Sessions.Resolve(token)
		if !ok {
			errorJSON(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		ctx := auth.WithPrincipal(r.Context(), &auth.Principal{UserID: userID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
