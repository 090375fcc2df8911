package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/models"
)

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &postRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreatePost_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	post := models.DiaryPost{
		UserID:      1,
		Destination: "Kyoto",
		Date:        now,
		Description: "temples",
		Itinerary:   "day 1: Fushimi Inari",
		Image:       "/uploads/kyoto.png",
		Visibility:  models.VisibilityPublic,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT user_id FROM users").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

	rows := sqlmock.
		NewRows([]string{"post_id", "user_id", "destination", "date", "description", "itinerary", "image", "visibility", "created_at"}).
		AddRow(10, post.UserID, post.Destination, post.Date, post.Description, post.Itinerary, post.Image, string(post.Visibility), now)

	mock.ExpectQuery("INSERT INTO diary_posts").
		WithArgs(post.UserID, post.Destination, post.Date, post.Description,
			post.Itinerary, post.Image, post.Visibility, sqlmock.AnyArg()).
		WillReturnRows(rows)
	mock.ExpectCommit()

	created, err := repo.CreatePost(ctx, post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PostID != 10 {
		t.Errorf("expected PostID=10, got %d", created.PostID)
	}
	if created.Visibility != models.VisibilityPublic {
		t.Errorf("expected public visibility, got %s", created.Visibility)
	}
}

func TestCreatePost_OwnerMissing(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT user_id FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.CreatePost(ctx, models.DiaryPost{UserID: 404, Destination: "Kyoto"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindPostByID_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT post_id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindPostByID(ctx, 404)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestFindPostsByOwner_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"post_id", "user_id", "destination", "date", "description", "itinerary", "image", "visibility", "created_at"}).
		AddRow(1, 1, "Kyoto", now, "", "", "", "public", now).
		AddRow(2, 1, "Lisbon", now, "", "", "", "private", now)

	mock.ExpectQuery("SELECT post_id").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	posts, err := repo.FindPostsByOwner(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[1].Visibility != models.VisibilityPrivate {
		t.Errorf("expected private visibility, got %s", posts[1].Visibility)
	}
}

func TestFindPostsByOwner_Empty(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"post_id", "user_id", "destination", "date", "description", "itinerary", "image", "visibility", "created_at"})

	mock.ExpectQuery("SELECT post_id").
		WithArgs(int64(9)).
		WillReturnRows(rows)

	posts, err := repo.FindPostsByOwner(ctx, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posts == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(posts) != 0 {
		t.Fatalf("expected 0 posts, got %d", len(posts))
	}
}

func TestListPostsWithAuthors_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"post_id", "user_id", "destination", "date", "description", "itinerary", "image", "visibility", "created_at", "full_name", "profile_image"}).
		AddRow(1, 1, "Kyoto", now, "", "", "", "public", now, "Alice", "/uploads/alice.png")

	mock.ExpectQuery("SELECT p.post_id").
		WillReturnRows(rows)

	posts, err := repo.ListPostsWithAuthors(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].AuthorName != "Alice" {
		t.Errorf("expected author Alice, got %s", posts[0].AuthorName)
	}
}

func TestDeletePost_ScopedToOwner(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT user_id FROM users").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))
	mock.ExpectExec("DELETE FROM diary_posts").
		WithArgs(int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeletePost(ctx, 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeletePost_AbsentPostIsNoOp(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT user_id FROM users").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))
	mock.ExpectExec("DELETE FROM diary_posts").
		WithArgs(int64(404), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := repo.DeletePost(ctx, 1, 404); err != nil {
		t.Fatalf("expected no-op delete to succeed, got %v", err)
	}
}

func TestDeletePost_OwnerMissing(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT user_id FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.DeletePost(ctx, 404, 10)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteOrphanPosts_ReportsSweptCount(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM diary_posts").
		WillReturnResult(sqlmock.NewResult(0, 3))

	swept, err := repo.DeleteOrphanPosts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if swept != 3 {
		t.Errorf("expected 3 swept posts, got %d", swept)
	}
}
