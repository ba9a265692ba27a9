package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eliwerner/todo-website/internal/auth"
	"github.com/eliwerner/todo-website/models"
)

type todoCreateRequest struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// todoUpdateRequest distinguishes "field absent" from "field set to its zero
// value"; only the fields present in the request are applied.
type todoUpdateRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// caller returns the principal injected by requireUser.
func caller(r *http.Request) *auth.Principal {
	p, _ := auth.FromContext(r.Context())
	return p
}

// todoID parses the {id} route parameter. The route pattern restricts it to
// digits, so a parse failure here cannot happen in practice.
func todoID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	p := caller(r)
	list, err := s.Todos.ListByUser(r.Context(), p.UserID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		// JSON array, never null
		list = []models.Todo{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	p := caller(r)
	var in todoCreateRequest
	if err := decodeJSON(r, &in); err != nil && !errors.Is(err, io.EOF) {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	created, err := s.Todos.Create(r.Context(), &models.Todo{
		Text:      in.Text,
		Completed: in.Completed,
		UserID:    p.UserID,
	})
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	p := caller(r)
	id, err := todoID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	// Scoped by owner; deleting someone else's todo is a no-op.
	if err := s.Todos.Delete(r.Context(), id, p.UserID); err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	p := caller(r)
	id, err := todoID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	var in todoUpdateRequest
	if err := decodeJSON(r, &in); err != nil && !errors.Is(err, io.EOF) {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	// Each present field is applied by its own statement, both scoped by
	// owner. The read-back below decides between 200 and 404, so an update
	// that matched nothing needs no special handling here.
	if in.Text != nil {
		if err := s.Todos.UpdateText(r.Context(), id, p.UserID, *in.Text); err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	if in.Completed != nil {
		if err := s.Todos.UpdateCompleted(r.Context(), id, p.UserID, *in.Completed); err != nil {
			errorJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	todo, err := s.Todos.GetByUser(r.Context(), id, p.UserID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	if todo == nil {
		errorJSON(w, http.StatusNotFound, "Todo not found")
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (s *Server) handleClearCompleted(w http.ResponseWriter, r *http.Request) {
	p := caller(r)
	if err := s.Todos.ClearCompleted(r.Context(), p.UserID); err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
