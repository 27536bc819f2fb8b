package storage

import (
	"context"
	"errors"
	"log/slog"

	"docmeister/internal/models/entity"
	"docmeister/internal/storage/postgres"
	"docmeister/pkg/appError"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type auth struct {
	pool postgres.DBPool
}

type UserStorage interface {
	AddUser(ctx context.Context, user *entity.User) error
	// GetUserByEmail returns (nil, nil) when no user has the given email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}

func NewUserStorage(pool postgres.DBPool) UserStorage {
	return &auth{
		pool: pool,
	}
}

func (a *auth) AddUser(ctx context.Context, user *entity.User) error {
	query := `insert into users(email, password_hash, is_active, is_staff, is_superuser)
				values($1, $2, $3, $4, $5)
				returning id`

	err := a.pool.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.IsActive,
		user.IsStaff,
		user.IsSuperuser,
	).Scan(&user.ID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" {
				return appError.BadRequest("email already registered")
			}
		}

		slog.Error("add user failed", "error", err)
		return appError.Unavailable()
	}

	return nil
}

func (a *auth) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `select id, email, password_hash, is_active, is_staff, is_superuser, created
				from users
				where email = $1`

	var user entity.User
	err := a.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.IsStaff,
		&user.IsSuperuser,
		&user.Created,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		slog.Error("get user failed", "error", err)
		return nil, appError.Unavailable()
	}

	return &user, nil
}
