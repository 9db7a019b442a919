package blogs

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/common"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/models"
)

var blogColumns = []string{"id", "title", "description", "image_urls", "star", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_EncodesURLs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow("b-1", time.Now())
	mock.ExpectQuery(`INSERT\s+INTO\s+blogs`).
		WithArgs("Go", "notes", []byte(`["https://img/1.png"]`), 4).
		WillReturnRows(rows)

	blog := &models.Blog{Title: "Go", Desc: "notes", URLs: []string{"https://img/1.png"}, Star: 4}
	got, err := repo.Create(context.Background(), blog)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "b-1" {
		t.Fatalf("unexpected blog: %+v", got)
	}
}

func TestCreate_NilURLsBecomeEmptyList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow("b-2", time.Now())
	mock.ExpectQuery(`INSERT\s+INTO\s+blogs`).
		WithArgs("Go", "", []byte(`[]`), 0).
		WillReturnRows(rows)

	_, err := repo.Create(context.Background(), &models.Blog{Title: "Go"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestGetByID_DecodesURLs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(blogColumns).
		AddRow("b-1", "Go", "notes", []byte(`["a","b"]`), 5, time.Now())
	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+blogs\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("b-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if len(got.URLs) != 2 || got.URLs[0] != "a" {
		t.Fatalf("unexpected urls: %+v", got.URLs)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+blogs\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("b-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "b-404")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_PartialKeepsURLsWhenNil(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(blogColumns).
		AddRow("b-1", "New title", "notes", []byte(`["a"]`), 5, time.Now())
	mock.ExpectQuery(`UPDATE\s+blogs\s+SET`).
		WithArgs("b-1", "New title", nil, nil, nil).
		WillReturnRows(rows)

	title := "New title"
	got, err := repo.Update(context.Background(), "b-1", UpdateParams{Title: &title})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Title != "New title" {
		t.Fatalf("unexpected blog: %+v", got)
	}
}
