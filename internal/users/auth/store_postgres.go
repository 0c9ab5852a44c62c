// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/ycinema/internal/platform/database/schema"
	"github.com/taibuivan/ycinema/internal/platform/dberr"
)

var accounts = schema.UserAccount

// # User Repository

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

func accountColumns() string {
	return strings.Join([]string{
		accounts.ID, accounts.Email, accounts.PasswordHash, accounts.DisplayName, accounts.Role,
		accounts.LastLoginAt, accounts.CreatedAt, accounts.UpdatedAt,
	}, ", ")
}

func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.DisplayName,
		&user.Role,
		&user.LastLoginAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

/*
Create persists a new account.

Parameters:
  - context: context.Context
  - user: *User (ID, hash and timestamps already assigned)

Returns:
  - error: Conflict on duplicate email, or storage failures
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		accounts.Table,
		accounts.ID, accounts.Email, accounts.PasswordHash, accounts.DisplayName, accounts.Role,
		accounts.CreatedAt, accounts.UpdatedAt,
	)

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.DisplayName,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return dberr.Wrap(err, "create_user")
}

// FindByID returns the account with the given id.
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, accountColumns(), accounts.Table, accounts.ID)

	user, err := scanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapAs(err, "find_user_by_id", "User")
	}
	return user, nil
}

// FindByEmail looks the account up by email, ignoring case.
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1)`, accountColumns(), accounts.Table, accounts.Email)

	user, err := scanUser(repository.pool.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.WrapAs(err, "find_user_by_email", "User")
	}
	return user, nil
}

// TouchLastLogin stamps last_login_at.
func (repository *PostgresUserRepository) TouchLastLogin(context context.Context, id string, at time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $2 WHERE %s = $1`,
		accounts.Table, accounts.LastLoginAt, accounts.UpdatedAt, accounts.ID)

	_, err := repository.pool.Exec(context, query, id, at)
	return dberr.Wrap(err, "touch_last_login")
}
