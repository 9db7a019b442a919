// Package comments provides the PostgreSQL-backed comment repository.
package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/common"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/dbx"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {

	query :=
		`INSERT INTO comments (blog_id, author, body)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		comment.BlogID, comment.Author, comment.Text).Scan(&comment.ID, &comment.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query :=
		`SELECT id, blog_id, author, body, created_at FROM comments
		 WHERE id = $1
		 `

	return scanComment(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Comment, error) {
	query :=
		`SELECT id, blog_id, author, body, created_at FROM comments
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment := &models.Comment{}
		if err := rows.Scan(&comment.ID, &comment.BlogID, &comment.Author, &comment.Text, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comments, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, params UpdateParams) (*models.Comment, error) {

	query :=
		`UPDATE comments SET
		   author = COALESCE($2, author),
		   body = COALESCE($3, body)
		 WHERE id = $1
		 RETURNING id, blog_id, author, body, created_at
		 `

	return scanComment(r.db.QueryRowContext(ctx, query, id, params.Author, params.Text))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (*models.Comment, error) {

	query :=
		`DELETE FROM comments
		 WHERE id = $1
		 RETURNING id, blog_id, author, body, created_at
		 `

	return scanComment(r.db.QueryRowContext(ctx, query, id))
}

// DeleteByBlog removes every comment of a blog. Zero rows is not an
// error; the blog may simply have no comments.
func (r *PostgresRepository) DeleteByBlog(ctx context.Context, blogID string) error {

	query :=
		`DELETE FROM comments
		 WHERE blog_id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, blogID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func scanComment(row *sql.Row) (*models.Comment, error) {
	comment := &models.Comment{}
	err := row.Scan(&comment.ID, &comment.BlogID, &comment.Author, &comment.Text, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return comment, nil
}
