package repository

import (
	"context"

	"github.com/eliwerner/todo-website/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// TodoRepositoryI defines operations on Todo entities. Every read and write
// is scoped by the owning user id; a row belonging to another user behaves
// exactly like a row that does not exist.
type TodoRepositoryI interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Todo, error)
	Create(ctx context.Context, t *models.Todo) (*models.Todo, error)
	GetByUser(ctx context.Context, id, userID int64) (*models.Todo, error)
	UpdateText(ctx context.Context, id, userID int64, text string) error
	UpdateCompleted(ctx context.Context, id, userID int64, completed bool) error
	Delete(ctx context.Context, id, userID int64) error
	ClearCompleted(ctx context.Context, userID int64) error
}
