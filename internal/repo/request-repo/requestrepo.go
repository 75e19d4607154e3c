package requestrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/pg"
	"go.uber.org/zap"
)

// ErrDuplicateOpen is returned when the unique open-request index rejects an
// insert: the user already holds a PENDING or APPROVED request for the book.
var ErrDuplicateOpen = errors.New("user already has an open request for this book")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const requestColumns = `id, user_id, book_id, request_date, expected_return_date, status, note, handled_by, handled_at`

func scanRequest(row pgx.Row) (*domain.BorrowRequest, error) {
	var req domain.BorrowRequest
	err := row.Scan(
		&req.ID, &req.UserID, &req.BookID, &req.RequestDate, &req.ExpectedReturnDate,
		&req.Status, &req.Note, &req.HandledBy, &req.HandledAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repository) Create(ctx context.Context, req *domain.BorrowRequest) (*domain.BorrowRequest, error) {
	query := `
        INSERT INTO borrow_requests (user_id, book_id, expected_return_date, note)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + requestColumns + `
    `
	created, err := scanRequest(r.db.QueryRow(ctx, query, req.UserID, req.BookID, req.ExpectedReturnDate, req.Note))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return nil, ErrDuplicateOpen
	}
	if err != nil {
		zap.L().Error("can't create borrow request", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, requestID int) (*domain.BorrowRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM borrow_requests
        WHERE id = $1
    `
	req, err := scanRequest(r.db.QueryRow(ctx, query, requestID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find borrow request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// GetByIDForUpdate locks the request row for the rest of the surrounding
// transaction. Approve/reject/cancel serialize on this lock.
func (r *Repository) GetByIDForUpdate(ctx context.Context, requestID int) (*domain.BorrowRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM borrow_requests
        WHERE id = $1
        FOR UPDATE
    `
	req, err := scanRequest(r.db.QueryRow(ctx, query, requestID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock borrow request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, requestID int, status string, handledBy *int, handledAt *time.Time) error {
	query := `
        UPDATE borrow_requests
        SET status = $2, handled_by = $3, handled_at = $4
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, requestID, status, handledBy, handledAt)
	if err != nil {
		zap.L().Error("can't update borrow request status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.BorrowRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM borrow_requests
        WHERE user_id = $1
        ORDER BY request_date DESC
    `
	return r.find(ctx, query, userID)
}

func (r *Repository) FindPending(ctx context.Context) ([]domain.BorrowRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM borrow_requests
        WHERE status = 'PENDING'
        ORDER BY request_date ASC
    `
	return r.find(ctx, query)
}

func (r *Repository) find(ctx context.Context, query string, args ...any) ([]domain.BorrowRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get borrow requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.BorrowRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("can't scan borrow request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, nil
}

// ExistsOpen reports whether the user already has a PENDING or APPROVED
// request for the book.
func (r *Repository) ExistsOpen(ctx context.Context, userID, bookID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM borrow_requests
            WHERE user_id = $1 AND book_id = $2 AND status IN ('PENDING', 'APPROVED')
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, bookID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check open borrow requests", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM borrow_requests WHERE status = 'PENDING'`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count pending requests", zap.Error(err))
		return 0, err
	}
	return count, nil
}
