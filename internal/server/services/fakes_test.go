package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/dbx"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/config"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/models"
	blogsrepo "github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/blogs"
	commentsrepo "github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/comments"
	usersrepo "github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/users"
)

// --- shared helpers and fakes for the service tests ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:      "k",
		SignUpTokenTTL: time.Hour,
	}
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	listOut   []*models.User
	listTotal int64
	listErr   error
	gotFilter usersrepo.ListFilter

	updateOut *models.User
	updateErr error

	deleteOut *models.User
	deleteErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "u-1"
	u.Role = "user"
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) List(ctx context.Context, filter usersrepo.ListFilter) ([]*models.User, int64, error) {
	f.gotFilter = filter
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listOut, f.listTotal, nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, id string, params usersrepo.UpdateParams) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) (*models.User, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return f.deleteOut, nil
}

type fakeBlogsRepo struct {
	createOut *models.Blog
	createErr error

	getOut *models.Blog
	getErr error

	listOut []*models.Blog
	listErr error

	updateOut *models.Blog
	updateErr error

	deleteOut  *models.Blog
	deleteErr  error
	deletedIDs []string
}

func (f *fakeBlogsRepo) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	b.ID = "b-1"
	return b, nil
}

func (f *fakeBlogsRepo) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeBlogsRepo) List(ctx context.Context) ([]*models.Blog, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeBlogsRepo) Update(ctx context.Context, id string, params blogsrepo.UpdateParams) (*models.Blog, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeBlogsRepo) Delete(ctx context.Context, id string) (*models.Blog, error) {
	f.deletedIDs = append(f.deletedIDs, id)
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return f.deleteOut, nil
}

type fakeCommentsRepo struct {
	createOut *models.Comment
	createErr error

	getOut *models.Comment
	getErr error

	listOut []*models.Comment
	listErr error

	updateOut *models.Comment
	updateErr error

	deleteOut *models.Comment
	deleteErr error

	deleteByBlogErr error
	deletedBlogIDs  []string
}

func (f *fakeCommentsRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	c.ID = "c-1"
	return c, nil
}

func (f *fakeCommentsRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeCommentsRepo) List(ctx context.Context) ([]*models.Comment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeCommentsRepo) Update(ctx context.Context, id string, params commentsrepo.UpdateParams) (*models.Comment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeCommentsRepo) Delete(ctx context.Context, id string) (*models.Comment, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return f.deleteOut, nil
}

func (f *fakeCommentsRepo) DeleteByBlog(ctx context.Context, blogID string) error {
	f.deletedBlogIDs = append(f.deletedBlogIDs, blogID)
	return f.deleteByBlogErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	b *fakeBlogsRepo
	c *fakeCommentsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error      { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository           { return m.u }
func (m *fakeRepoManager) Blogs(db dbx.DBTX) blogsrepo.Repository           { return m.b }
func (m *fakeRepoManager) Comments(db dbx.DBTX) commentsrepo.Repository     { return m.c }
