package users

import (
	"context"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/models"
)

// ListFilter narrows and pages the user listing. Limit/Offset are
// resolved by the service; Gender filters when non-empty.
type ListFilter struct {
	Gender string
	Limit  int
	Offset int
}

// UpdateParams is a partial update; nil fields keep their stored
// value. The password column is deliberately absent: there is no
// re-hash path on update, so it must not be writable here.
type UpdateParams struct {
	Username *string
	Gender   *string
	Role     *string
}

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, filter ListFilter) ([]*models.User, int64, error)
	Update(ctx context.Context, id string, params UpdateParams) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
}
