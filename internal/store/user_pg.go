package store

import (
	"context"
	"errors"
	"fmt"

	"bibliophile/internal/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserPG struct {
	db *pgxpool.Pool
}

func NewUserPG(db *pgxpool.Pool) *UserPG {
	return &UserPG{db: db}
}

func (r *UserPG) CreateUser(ctx context.Context, email, name, passwordHash string) (entity.User, error) {
	const insertSQL = `
		INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, email, name, password_hash, created_at, updated_at
	`
	var u entity.User
	err := r.db.QueryRow(ctx, insertSQL, uuid.New().String(), email, name, passwordHash).Scan(
		&u.ID, &u.Email, &u.Name, &u.Password, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.User{}, ErrDuplicateEmail
		}
		return entity.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UserPG) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	const selectSQL = `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var u entity.User
	err := r.db.QueryRow(ctx, selectSQL, email).Scan(
		&u.ID, &u.Email, &u.Name, &u.Password, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, ErrNotFound
		}
		return entity.User{}, err
	}
	return u, nil
}

func (r *UserPG) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	const selectSQL = `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var u entity.User
	err := r.db.QueryRow(ctx, selectSQL, id).Scan(
		&u.ID, &u.Email, &u.Name, &u.Password, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, ErrNotFound
		}
		return entity.User{}, err
	}
	return u, nil
}
