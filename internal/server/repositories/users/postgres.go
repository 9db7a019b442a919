// Package users provides the PostgreSQL-backed user repository.
// Username uniqueness lives in the schema; the unique-violation error
// is translated here so callers see common.ErrorAlreadyExists instead
// of a racy existence pre-check.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/common"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/dbx"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/models"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (username, password_hash, gender)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_role, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Password, user.Gender).Scan(&user.ID, &user.Role, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, username, password_hash, gender, user_role, created_at FROM users
		 WHERE id = $1
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, password_hash, gender, user_role, created_at FROM users
		 WHERE username = $1
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

// List returns a page of users plus the total matching count, so the
// caller can report pagination independent of the page size.
func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]*models.User, int64, error) {

	countQuery :=
		`SELECT COUNT(*) FROM users
		 WHERE ($1 = '' OR gender = $1)
		 `

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, filter.Gender).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	query :=
		`SELECT id, username, password_hash, gender, user_role, created_at FROM users
		 WHERE ($1 = '' OR gender = $1)
		 ORDER BY created_at
		 LIMIT $2 OFFSET $3
		 `

	rows, err := r.db.QueryContext(ctx, query, filter.Gender, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.Gender, &user.Role, &user.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	return users, total, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, params UpdateParams) (*models.User, error) {

	query :=
		`UPDATE users SET
		   username = COALESCE($2, username),
		   gender = COALESCE($3, gender),
		   user_role = COALESCE($4, user_role)
		 WHERE id = $1
		 RETURNING id, username, password_hash, gender, user_role, created_at
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id, params.Username, params.Gender, params.Role).
		Scan(&user.ID, &user.Username, &user.Password, &user.Gender, &user.Role, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// Delete removes the user and returns the removed row, mirroring the
// find-and-delete semantics the API exposes.
func (r *PostgresRepository) Delete(ctx context.Context, id string) (*models.User, error) {

	query :=
		`DELETE FROM users
		 WHERE id = $1
		 RETURNING id, username, password_hash, gender, user_role, created_at
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Gender, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
