package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/dbx"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/logging"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/config"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/models"
	blogsrepo "github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/blogs"
	commentsrepo "github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/comments"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/repomanager"
	usersrepo "github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/users"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "test-secret"

// --- fakes backing the router-level tests ---

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
	createErr error

	getOut *models.Blog
	getErr error

	listOut []*models.Blog
	listErr error

	updateOut *models.Blog
	updateErr error

	deleteOut *models.Blog
	deleteErr error
}

func (f *fakeBlogsRepo) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	if f.createErr != nil {
		return nil, f.createErr
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
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return f.deleteOut, nil
}

type fakeCommentsRepo struct {
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

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error  { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Blogs(db dbx.DBTX) blogsrepo.Repository       { return m.b }
func (m *fakeRepoManager) Comments(db dbx.DBTX) commentsrepo.Repository { return m.c }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)

// --- router wiring helpers ---

type testEnv struct {
	router *gin.Engine
	users  *fakeUsersRepo
	blogs  *fakeBlogsRepo
	coms   *fakeCommentsRepo
	mock   sqlmock.Sqlmock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		Address:        ":0",
		SecretKey:      testSecret,
		SignUpTokenTTL: time.Hour,
		CORSOrigins:    []string{"*"},
	}

	rm := &fakeRepoManager{u: &fakeUsersRepo{}, b: &fakeBlogsRepo{}, c: &fakeCommentsRepo{}}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	s := NewHTTPServer(cfg, logger,
		services.NewUserService(db, rm, cfg),
		services.NewBlogService(db, rm, cfg),
		services.NewCommentService(db, rm, cfg),
	)

	return &testEnv{router: s.Router(), users: rm.u, blogs: rm.b, coms: rm.c, mock: mock}
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not a valid envelope: %v; body: %s", err, rec.Body.String())
	}
	return resp
}
