// Package blogs provides the PostgreSQL-backed blog repository.
// Image URL lists are stored as a jsonb column.
package blogs

import (
	"context"
	"database/sql"
	"encoding/json"
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

func (r *PostgresRepository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {

	urls, err := encodeURLs(blog.URLs)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO blogs (title, description, image_urls, star)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		blog.Title, blog.Desc, urls, blog.Star).Scan(&blog.ID, &blog.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return blog, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	query :=
		`SELECT id, title, description, image_urls, star, created_at FROM blogs
		 WHERE id = $1
		 `

	return scanBlog(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Blog, error) {
	query :=
		`SELECT id, title, description, image_urls, star, created_at FROM blogs
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var blogs []*models.Blog
	for rows.Next() {
		blog := &models.Blog{}
		var urls []byte
		if err := rows.Scan(&blog.ID, &blog.Title, &blog.Desc, &urls, &blog.Star, &blog.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := json.Unmarshal(urls, &blog.URLs); err != nil {
			return nil, fmt.Errorf("image urls decode error: %w", err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return blogs, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, params UpdateParams) (*models.Blog, error) {

	var urls any
	if params.URLs != nil {
		encoded, err := encodeURLs(*params.URLs)
		if err != nil {
			return nil, err
		}
		urls = encoded
	}

	query :=
		`UPDATE blogs SET
		   title = COALESCE($2, title),
		   description = COALESCE($3, description),
		   image_urls = COALESCE($4::jsonb, image_urls),
		   star = COALESCE($5, star)
		 WHERE id = $1
		 RETURNING id, title, description, image_urls, star, created_at
		 `

	return scanBlog(r.db.QueryRowContext(ctx, query, id, params.Title, params.Desc, urls, params.Star))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (*models.Blog, error) {

	query :=
		`DELETE FROM blogs
		 WHERE id = $1
		 RETURNING id, title, description, image_urls, star, created_at
		 `

	return scanBlog(r.db.QueryRowContext(ctx, query, id))
}

func encodeURLs(urls []string) ([]byte, error) {
	if urls == nil {
		urls = []string{}
	}
	encoded, err := json.Marshal(urls)
	if err != nil {
		return nil, fmt.Errorf("image urls encode error: %w", err)
	}
	return encoded, nil
}

func scanBlog(row *sql.Row) (*models.Blog, error) {
	blog := &models.Blog{}
	var urls []byte
	err := row.Scan(&blog.ID, &blog.Title, &blog.Desc, &urls, &blog.Star, &blog.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal(urls, &blog.URLs); err != nil {
		return nil, fmt.Errorf("image urls decode error: %w", err)
	}
	return blog, nil
}
