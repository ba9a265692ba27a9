package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/eliwerner/todo-website/models"
)

// ErrDuplicateUsername is returned by Create when the username is already
// taken. Uniqueness is enforced by the users.username constraint, not
// pre-checked.
var ErrDuplicateUsername = errors.New("username already exists")

type UserRepository struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewUserRepository builds a repository over the given handle. The
// placeholder format must match the driver the handle was opened with
// (db.Placeholder).
func NewUserRepository(db *sql.DB, ph sq.PlaceholderFormat) *UserRepository {
	return &UserRepository{db: db, sb: sq.StatementBuilder.PlaceholderFormat(ph)}
}

// Create inserts a new user with the given username and password hash.
// Returns the created User with its generated ID, or ErrDuplicateUsername if
// the username exists.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var id int64
	err := r.sb.Insert("users").
		Columns("username", "password_hash").
		Values(username, passwordHash).
		Suffix("RETURNING id").
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return &models.User{ID: id, Username: username, PasswordHash: passwordHash}, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u models.User
	err := r.sb.Select("id", "username", "password_hash").
		From("users").
		Where(sq.Eq{"username": username}).
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u models.User
	err := r.sb.Select("id", "username", "password_hash").
		From("users").
		Where(sq.Eq{"id": id}).
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// isUniqueViolation recognizes a uniqueness-constraint failure from either
// backing driver.
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
			se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe.Code == "23505"
	}
	return false
}
