package repomanager

import (
	"context"
	"database/sql"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/dbx"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/blogs"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/comments"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Blogs(db dbx.DBTX) blogs.Repository
	Comments(db dbx.DBTX) comments.Repository
}
