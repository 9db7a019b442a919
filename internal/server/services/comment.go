// This file implements CommentService, a thin pass-through over the
// comments repository.
package services

import (
	"context"
	"database/sql"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/config"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/models"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/comments"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/repomanager"
)

type CommentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCommentService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *CommentService {
	return &CommentService{
		db:          db,
		repomanager: m,
	}
}

func (s *CommentService) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	return s.repomanager.Comments(s.db).Create(ctx, comment)
}

func (s *CommentService) Get(ctx context.Context, id string) (*models.Comment, error) {
	return s.repomanager.Comments(s.db).GetByID(ctx, id)
}

func (s *CommentService) List(ctx context.Context) ([]*models.Comment, error) {
	return s.repomanager.Comments(s.db).List(ctx)
}

func (s *CommentService) Update(ctx context.Context, id string, params comments.UpdateParams) (*models.Comment, error) {
	return s.repomanager.Comments(s.db).Update(ctx, id, params)
}

func (s *CommentService) Delete(ctx context.Context, id string) (*models.Comment, error) {
	return s.repomanager.Comments(s.db).Delete(ctx, id)
}
