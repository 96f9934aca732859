package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no user exists for the requested id.
var ErrNotFound = errors.New("user not found")

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByID(ctx context.Context, id string) (User, error)
	List(ctx context.Context) ([]User, error)
	UpdateName(ctx context.Context, id, name string) error
	UpdatePasswordHash(ctx context.Context, id string, hash []byte) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed user repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user.
func (r *PostgresRepository) Create(ctx context.Context, user User) error {
	_, err := r.db.Exec(ctx, `INSERT INTO users (id, name, role, photo, password_hash, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Role, user.Photo, user.PasswordHash, user.CreatedAt.UTC())
	return err
}

// FindByID fetches a user by login id.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, role, photo, password_hash, created_at
        FROM users WHERE id = $1`, id)
	var (
		u         User
		createdAt time.Time
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Role, &u.Photo, &u.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	u.CreatedAt = createdAt.UTC()
	return u, nil
}

// List returns all users ordered by id.
func (r *PostgresRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, role, photo, password_hash, created_at
        FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var (
			u         User
			createdAt time.Time
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Role, &u.Photo, &u.PasswordHash, &createdAt); err != nil {
			return nil, err
		}
		u.CreatedAt = createdAt.UTC()
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateName stores a new display name.
func (r *PostgresRepository) UpdateName(ctx context.Context, id, name string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE users SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePasswordHash stores a new password hash.
func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, id string, hash []byte) error {
	cmd, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, hash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
