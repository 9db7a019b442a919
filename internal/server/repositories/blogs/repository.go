package blogs

import (
	"context"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/models"
)

// UpdateParams is a partial update; nil fields keep their stored value.
type UpdateParams struct {
	Title *string
	Desc  *string
	URLs  *[]string
	Star  *int
}

type Repository interface {
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	List(ctx context.Context) ([]*models.Blog, error)
	Update(ctx context.Context, id string, params UpdateParams) (*models.Blog, error)
	Delete(ctx context.Context, id string) (*models.Blog, error)
}
