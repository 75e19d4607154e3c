package reviewrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const reviewColumns = `id, user_id, book_id, transaction_id, rating, content, status, moderated_by, moderated_at, created_at`

func scanReview(row pgx.Row) (*domain.Review, error) {
	var rev domain.Review
	err := row.Scan(
		&rev.ID, &rev.UserID, &rev.BookID, &rev.TransactionID, &rev.Rating,
		&rev.Content, &rev.Status, &rev.ModeratedBy, &rev.ModeratedAt, &rev.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
        INSERT INTO reviews (user_id, book_id, transaction_id, rating, content)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + reviewColumns + `
    `
	created, err := scanReview(r.db.QueryRow(ctx, query,
		review.UserID, review.BookID, review.TransactionID, review.Rating, review.Content,
	))
	if err != nil {
		zap.L().Error("can't create review", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// ExistsLive reports whether the user already has a non-rejected review for
// the book.
func (r *Repository) ExistsLive(ctx context.Context, userID, bookID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM reviews
            WHERE user_id = $1 AND book_id = $2 AND status <> 'REJECTED'
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, bookID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check live reviews", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) GetByID(ctx context.Context, reviewID int) (*domain.Review, error) {
	query := `
        SELECT ` + reviewColumns + `
        FROM reviews
        WHERE id = $1
    `
	rev, err := scanReview(r.db.QueryRow(ctx, query, reviewID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find review", zap.Error(err))
		return nil, err
	}
	return rev, nil
}

// Moderate stamps the decision; guarded so only PENDING reviews move.
func (r *Repository) Moderate(ctx context.Context, reviewID int, status string, moderatedBy int, moderatedAt time.Time) (bool, error) {
	query := `
        UPDATE reviews
        SET status = $2, moderated_by = $3, moderated_at = $4
        WHERE id = $1 AND status = 'PENDING'
    `
	tag, err := r.db.Exec(ctx, query, reviewID, status, moderatedBy, moderatedAt)
	if err != nil {
		zap.L().Error("can't moderate review", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindApprovedByBookID(ctx context.Context, bookID int) ([]domain.Review, error) {
	query := `
        SELECT ` + reviewColumns + `
        FROM reviews
        WHERE book_id = $1 AND status = 'APPROVED'
        ORDER BY created_at DESC
    `
	return r.find(ctx, query, bookID)
}

func (r *Repository) FindPending(ctx context.Context) ([]domain.Review, error) {
	query := `
        SELECT ` + reviewColumns + `
        FROM reviews
        WHERE status = 'PENDING'
        ORDER BY created_at ASC
    `
	return r.find(ctx, query)
}

func (r *Repository) find(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get reviews", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			zap.L().Error("can't scan review row", zap.Error(err))
			return nil, err
		}
		reviews = append(reviews, *rev)
	}
	return reviews, nil
}

func (r *Repository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE status = 'PENDING'`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count pending reviews", zap.Error(err))
		return 0, err
	}
	return count, nil
}
