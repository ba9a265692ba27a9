package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/eliwerner/todo-website/models"
)

type TodoRepository struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewTodoRepository builds a repository over the given handle. The
// placeholder format must match the driver the handle was opened with
// (db.Placeholder).
func NewTodoRepository(db *sql.DB, ph sq.PlaceholderFormat) *TodoRepository {
	return &TodoRepository{db: db, sb: sq.StatementBuilder.PlaceholderFormat(ph)}
}

// ListByUser returns all todos owned by userID in insertion (id) order.
func (r *TodoRepository) ListByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.sb.Select("id", "text", "completed", "user_id").
		From("todos").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		RunWith(r.db).
		QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Todo
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &t.UserID); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new todo and reads the stored row back. The insert and the
// read-back are two statements; a concurrent delete between them surfaces as
// a "created todo not found" error rather than a partial result.
func (r *TodoRepository) Create(ctx context.Context, t *models.Todo) (*models.Todo, error) {
	if t == nil {
		return nil, errors.New("todo is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var id int64
	err := r.sb.Insert("todos").
		Columns("text", "completed", "user_id").
		Values(t.Text, t.Completed, t.UserID).
		Suffix("RETURNING id").
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		return nil, err
	}
	t2, err := r.GetByUser(ctx, id, t.UserID)
	if err != nil {
		return nil, err
	}
	if t2 == nil {
		return nil, errors.New("created todo not found")
	}
	return t2, nil
}

// GetByUser fetches one todo scoped by both id and owner. A todo that exists
// under another user resolves to (nil, nil), same as a missing row.
func (r *TodoRepository) GetByUser(ctx context.Context, id, userID int64) (*models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var t models.Todo
	err := r.sb.Select("id", "text", "completed", "user_id").
		From("todos").
		Where(sq.Eq{"id": id, "user_id": userID}).
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Text, &t.Completed, &t.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// UpdateText sets the text of the todo scoped by (id, userID). Matching no
// row is not an error; callers detect that through the read-back.
func (r *TodoRepository) UpdateText(ctx context.Context, id, userID int64, text string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.sb.Update("todos").
		Set("text", text).
		Where(sq.Eq{"id": id, "user_id": userID}).
		RunWith(r.db).
		ExecContext(ctx)
	return err
}

// UpdateCompleted sets the completed flag of the todo scoped by (id, userID).
func (r *TodoRepository) UpdateCompleted(ctx context.Context, id, userID int64, completed bool) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.sb.Update("todos").
		Set("completed", completed).
		Where(sq.Eq{"id": id, "user_id": userID}).
		RunWith(r.db).
		ExecContext(ctx)
	return err
}

// Delete removes the todo scoped by (id, userID). Deleting a row that does
// not exist, or that belongs to someone else, is a no-op.
func (r *TodoRepository) Delete(ctx context.Context, id, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.sb.Delete("todos").
		Where(sq.Eq{"id": id, "user_id": userID}).
		RunWith(r.db).
		ExecContext(ctx)
	return err
}

// ClearCompleted removes every completed todo owned by userID.
func (r *TodoRepository) ClearCompleted(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.sb.Delete("todos").
		Where(sq.Eq{"user_id": userID, "completed": true}).
		RunWith(r.db).
		ExecContext(ctx)
	return err
}
