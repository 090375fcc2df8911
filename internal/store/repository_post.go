package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/models"
)

// postRepository is the SQL-backed implementation of [PostRepository].
//
// The user_id column on diary_posts is the single source of truth for
// ownership: a user's post collection is never stored as a list but always
// computed by owner query, so concurrent inserts for the same owner can
// never lose each other.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost inserts a diary post for an existing owner. The owner-existence
// check and the insert run in one transaction so a concurrently deleted user
// cannot gain a post.
//
// Returns [ErrUserNotFound] when the owner does not exist.
func (r *postRepository) CreatePost(ctx context.Context, post models.DiaryPost) (models.DiaryPost, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("failed to begin transaction")
		return models.DiaryPost{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var ownerID int64
	if err := tx.QueryRowContext(ctx, userIDExists, post.UserID).Scan(&ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DiaryPost{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*postRepository.CreatePost").Int64("user_id", post.UserID).Msg("failed to check post owner")
		return models.DiaryPost{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var created models.DiaryPost
	row := tx.QueryRowContext(ctx, createPost,
		post.UserID, post.Destination, post.Date, post.Description,
		post.Itinerary, post.Image, post.Visibility, time.Now().UTC())
	if err := row.Scan(&created.PostID, &created.UserID, &created.Destination, &created.Date,
		&created.Description, &created.Itinerary, &created.Image, &created.Visibility, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: scanning created post")
		return models.DiaryPost{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("failed to commit transaction")
		return models.DiaryPost{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// FindPostByID retrieves a single diary post.
//
// Returns [ErrPostNotFound] when no post matches.
func (r *postRepository) FindPostByID(ctx context.Context, postID int64) (models.DiaryPost, error) {
	log := logger.FromContext(ctx)

	var found models.DiaryPost
	row := r.db.QueryRowContext(ctx, findPostByID, postID)
	if err := row.Scan(&found.PostID, &found.UserID, &found.Destination, &found.Date,
		&found.Description, &found.Itinerary, &found.Image, &found.Visibility, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DiaryPost{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.FindPostByID").Int64("post_id", postID).Msg("error: scanning found post")
		return models.DiaryPost{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindPostsByOwner computes the given user's post collection by owner query.
func (r *postRepository) FindPostsByOwner(ctx context.Context, userID int64) ([]models.DiaryPost, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findPostsByOwner, userID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostsByOwner").Int64("user_id", userID).Msg("failed to execute posts query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanPosts(rows, log, "*postRepository.FindPostsByOwner")
}

// ListPosts returns every diary post in the system.
func (r *postRepository) ListPosts(ctx context.Context) ([]models.DiaryPost, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listPosts)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("failed to execute posts query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanPosts(rows, log, "*postRepository.ListPosts")
}

// ListPostsWithAuthors joins every post with its owner's display name and
// profile image for the public feed.
func (r *postRepository) ListPostsWithAuthors(ctx context.Context) ([]models.PostWithAuthor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsWithAuthorsQuery()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPostsWithAuthors").Msg("failed to build posts join query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPostsWithAuthors").Msg("failed to execute posts join query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.PostWithAuthor, 0, 100)
	for rows.Next() {
		var p models.PostWithAuthor
		if err := rows.Scan(&p.PostID, &p.UserID, &p.Destination, &p.Date, &p.Description,
			&p.Itinerary, &p.Image, &p.Visibility, &p.CreatedAt,
			&p.AuthorName, &p.AuthorImage); err != nil {
			log.Err(err).Str("func", "*postRepository.ListPostsWithAuthors").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPostsWithAuthors").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// DeletePost removes a post scoped to its owner. The owner-existence check
// runs in the same transaction as the delete. A post that is already gone is
// not an error; the delete is idempotent from the caller's point of view.
//
// Returns [ErrUserNotFound] when the owner does not exist.
func (r *postRepository) DeletePost(ctx context.Context, ownerID, postID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var foundOwner int64
	if err := tx.QueryRowContext(ctx, userIDExists, ownerID).Scan(&foundOwner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*postRepository.DeletePost").Int64("user_id", ownerID).Msg("failed to check post owner")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if _, err := tx.ExecContext(ctx, deletePostByID, postID, ownerID); err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Int64("post_id", postID).Msg("failed to delete post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// DeleteOrphanPosts removes posts whose owner row no longer exists. Reports
// the number of rows swept so the caller can log it.
func (r *postRepository) DeleteOrphanPosts(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteOrphanPosts)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeleteOrphanPosts").Msg("failed to delete orphan posts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	swept, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return swept, nil
}

func scanPosts(rows *sql.Rows, log *logger.Logger, funcName string) ([]models.DiaryPost, error) {
	posts := make([]models.DiaryPost, 0, 100)
	for rows.Next() {
		var p models.DiaryPost
		if err := rows.Scan(&p.PostID, &p.UserID, &p.Destination, &p.Date,
			&p.Description, &p.Itinerary, &p.Image, &p.Visibility, &p.CreatedAt); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}
