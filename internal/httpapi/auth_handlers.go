package httpapi

import (
	"errors"
	"net/http"

	"github.com/eliwerner/todo-website/internal/auth"
	"github.com/eliwerner/todo-website/repository"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hello, World!"))
}

// handleRegister creates a new account. Uniqueness is left to the database
// constraint; a duplicate surfaces as 409.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.Username == "" || in.Password == "" {
		errorJSON(w, http.StatusBadRequest, "Username and password required")
		return
	}

	_, err := s.Users.Create(r.Context(), in.Username, auth.HashPassword(in.Password))
	if errors.Is(err, repository.ErrDuplicateUsername) {
		errorJSON(w, http.StatusConflict, "Username already exists")
		return
	}
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User registered successfully"})
}

// handleLogin checks the credentials and issues a session token. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	u, err := s.Users.GetByUsername(r.Context(), in.Username)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	if u == nil || !auth.VerifyPassword(in.Password, u.PasswordHash) {
		errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.Sessions.Issue(u.ID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
