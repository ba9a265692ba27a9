// Package httpapi exposes the service over HTTP/JSON: registration, login,
// and per-user todo CRUD. Every /todos route resolves the Authorization
// header through the session store before touching persistence.
package httpapi

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/eliwerner/todo-website/internal/config"
	"github.com/eliwerner/todo-website/internal/session"
	"github.com/eliwerner/todo-website/repository"
)

// Server bundles the dependencies behind the HTTP handlers.
type Server struct {
	Users    repository.UserRepositoryI
	Todos    repository.TodoRepositoryI
	Sessions session.Store
}

// Router builds the full route table with CORS and request logging.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	// The API is consumed from browser frontends served anywhere.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleHome)
	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)

	r.Route("/todos", func(r chi.Router) {
		r.Use(s.requireUser)
		r.Get("/", s.handleListTodos)
		r.Post("/", s.handleCreateTodo)
		r.Post("/clear_completed", s.handleClearCompleted)
		r.Delete("/{id:[0-9]+}", s.handleDeleteTodo)
		r.Patch("/{id:[0-9]+}", s.handleUpdateTodo)
	})

	return r
}

// Start starts the HTTP server on the configured address and returns a
// shutdown function.
func Start(cfg *config.Config, users repository.UserRepositoryI, todos repository.TodoRepositoryI, sessions session.Store) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}

	addr := cfg.HTTP.Address
	if addr == "" {
		addr = ":8080"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	s := &Server{Users: users, Todos: todos, Sessions: sessions}
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() { _ = srv.Serve(lis) }()

	return func(ctx context.Context) error {
		if err := srv.Shutdown(ctx); err != nil {
			_ = srv.Close()
			return err
		}
		return nil
	}, nil
}
