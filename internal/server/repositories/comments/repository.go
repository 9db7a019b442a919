package comments

import (
	"context"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/models"
)

// UpdateParams is a partial update; nil fields keep their stored value.
type UpdateParams struct {
	Author *string
	Text   *string
}

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	List(ctx context.Context) ([]*models.Comment, error)
	Update(ctx context.Context, id string, params UpdateParams) (*models.Comment, error)
	Delete(ctx context.Context, id string) (*models.Comment, error)
	DeleteByBlog(ctx context.Context, blogID string) error
}
