// Package services contains the business logic between the HTTP
// handlers and the repositories. This file implements UserService:
// sign-up with an atomic unique insert, sign-in with bcrypt
// verification, and the plain user CRUD.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/common"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/auth"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/config"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/models"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/repomanager"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/users"
)

type UserService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	jwtSecret      []byte
	signUpTokenTTL time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:             db,
		repomanager:    m,
		jwtSecret:      []byte(cfg.SecretKey),
		signUpTokenTTL: cfg.SignUpTokenTTL,
	}
}

// SignUp hashes the plaintext password, inserts the user, and mints a
// token with the configured TTL. Username uniqueness is enforced by
// the insert itself; a duplicate surfaces as common.ErrorAlreadyExists.
func (s *UserService) SignUp(ctx context.Context, username, password, gender string) (*models.User, string, error) {

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Username: username, Password: hash, Gender: gender})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.signUpTokenTTL)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// SignIn verifies the credentials and mints a token. The token is
// issued with auth.NoExpiry: sign-in credentials deliberately never
// expire, unlike the sign-up path.
func (s *UserService) SignIn(ctx context.Context, username, password string) (*models.User, string, error) {

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPasswordHash(password, user.Password) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, auth.NoExpiry)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// List returns the requested page plus the total matching count.
// page is 1-based; limit caps the page size.
func (s *UserService) List(ctx context.Context, limit, page int, gender string) ([]*models.User, int64, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	repo := s.repomanager.Users(s.db)
	return repo.List(ctx, users.ListFilter{
		Gender: gender,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// Update applies a partial update. At least one field must be set;
// the password is not updatable through this path.
func (s *UserService) Update(ctx context.Context, id string, params users.UpdateParams) (*models.User, error) {
	if params.Username == nil && params.Gender == nil && params.Role == nil {
		return nil, common.ErrorEmptyUpdate
	}
	return s.repomanager.Users(s.db).Update(ctx, id, params)
}

func (s *UserService) Delete(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).Delete(ctx, id)
}
