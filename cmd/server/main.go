package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/eliwerner/todo-website/internal/config"
	"github.com/eliwerner/todo-website/internal/db"
	"github.com/eliwerner/todo-website/internal/httpapi"
	"github.com/eliwerner/todo-website/internal/session"
	"github.com/eliwerner/todo-website/repository"
)

func main() {
	// Load .env if present (ok if missing in prod)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Printf("Configuration loaded: %v", cfg)

	// Open DB with the configured backend
	var d *sql.DB
	switch cfg.Database.Driver {
	case db.DriverPostgres:
		d, err = db.OpenPostgres(context.Background(), cfg.Database.URL)
	default:
		d, err = db.Open(cfg.Database.Path)
	}
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Printf("close db: %v", err)
		}
	}()

	ph := db.Placeholder(cfg.Database.Driver)
	users := repository.NewUserRepository(d, ph)
	todos := repository.NewTodoRepository(d, ph)

	// Sessions are process-local; a restart signs everyone out.
	sessions := session.NewRegistry()

	// Start HTTP
	shutdown, err := httpapi.Start(cfg, users, todos, sessions)
	if err != nil {
		log.Fatalf("start http: %v", err)
	}
	log.Printf("HTTP server listening on %s", cfg.HTTP.Address)

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
