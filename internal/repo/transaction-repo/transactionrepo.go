package transactionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

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

const txnColumns = `t.id, t.request_id, r.user_id, r.book_id, t.borrowed_at, t.due_at,
               t.returned_at, t.status, t.fine_amount, t.late_return_days`

const txnFrom = `
        FROM borrow_transactions t
        JOIN borrow_requests r ON r.id = t.request_id`

func scanTxn(row pgx.Row) (*domain.BorrowTransaction, error) {
	var txn domain.BorrowTransaction
	err := row.Scan(
		&txn.ID, &txn.RequestID, &txn.UserID, &txn.BookID, &txn.BorrowedAt,
		&txn.DueAt, &txn.ReturnedAt, &txn.Status, &txn.FineAmount, &txn.LateReturnDays,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *Repository) Create(ctx context.Context, txn *domain.BorrowTransaction) (*domain.BorrowTransaction, error) {
	query := `
        INSERT INTO borrow_transactions (request_id, borrowed_at, due_at)
        VALUES ($1, $2, $3)
        RETURNING id, request_id, borrowed_at, due_at, returned_at, status, fine_amount, late_return_days
    `
	var created domain.BorrowTransaction
	err := r.db.QueryRow(ctx, query, txn.RequestID, txn.BorrowedAt, txn.DueAt).Scan(
		&created.ID, &created.RequestID, &created.BorrowedAt, &created.DueAt,
		&created.ReturnedAt, &created.Status, &created.FineAmount, &created.LateReturnDays,
	)
	if err != nil {
		zap.L().Error("can't create borrow transaction", zap.Error(err))
		return nil, err
	}
	created.UserID = txn.UserID
	created.BookID = txn.BookID
	return &created, nil
}

func (r *Repository) GetByID(ctx context.Context, txnID int) (*domain.BorrowTransaction, error) {
	query := `
        SELECT ` + txnColumns + txnFrom + `
        WHERE t.id = $1
    `
	txn, err := scanTxn(r.db.QueryRow(ctx, query, txnID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find borrow transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

// GetByIDForUpdate locks the transaction row; return and the overdue sweep
// serialize on this lock.
func (r *Repository) GetByIDForUpdate(ctx context.Context, txnID int) (*domain.BorrowTransaction, error) {
	query := `
        SELECT ` + txnColumns + txnFrom + `
        WHERE t.id = $1
        FOR UPDATE OF t
    `
	txn, err := scanTxn(r.db.QueryRow(ctx, query, txnID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock borrow transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

// MarkReturned finalizes a loan. The status guard keeps the write
// idempotent: a transaction already RETURNED is left untouched and the
// method reports false.
func (r *Repository) MarkReturned(ctx context.Context, txnID int, returnedAt time.Time, lateDays int, fine decimal.Decimal) (bool, error) {
	query := `
        UPDATE borrow_transactions
        SET status = 'RETURNED', returned_at = $2, late_return_days = $3, fine_amount = $4
        WHERE id = $1 AND status IN ('BORROWING', 'OVERDUE', 'RETURN_PENDING')
    `
	tag, err := r.db.Exec(ctx, query, txnID, returnedAt, lateDays, fine)
	if err != nil {
		zap.L().Error("can't mark transaction returned", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkOverdue flips BORROWING to OVERDUE iff the due date has passed. The
// guard makes repeated calls no-ops.
func (r *Repository) MarkOverdue(ctx context.Context, txnID int, now time.Time) (bool, error) {
	query := `
        UPDATE borrow_transactions
        SET status = 'OVERDUE'
        WHERE id = $1 AND status = 'BORROWING' AND due_at < $2
    `
	tag, err := r.db.Exec(ctx, query, txnID, now)
	if err != nil {
		zap.L().Error("can't mark transaction overdue", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) MarkReturnPending(ctx context.Context, txnID int) (bool, error) {
	query := `
        UPDATE borrow_transactions
        SET status = 'RETURN_PENDING'
        WHERE id = $1 AND status IN ('BORROWING', 'OVERDUE')
    `
	tag, err := r.db.Exec(ctx, query, txnID)
	if err != nil {
		zap.L().Error("can't mark transaction return pending", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// FindDueForSweep returns BORROWING transactions whose due date has passed.
func (r *Repository) FindDueForSweep(ctx context.Context, now time.Time, limit uint32) ([]domain.BorrowTransaction, error) {
	query := `
        SELECT ` + txnColumns + txnFrom + `
        WHERE t.status = 'BORROWING' AND t.due_at < $1
        ORDER BY t.due_at ASC
        LIMIT $2
    `
	return r.find(ctx, query, now, int(limit))
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.BorrowTransaction, error) {
	query := `
        SELECT ` + txnColumns + txnFrom + `
        WHERE t.status IN ('BORROWING', 'OVERDUE', 'RETURN_PENDING')
        ORDER BY t.due_at ASC
    `
	return r.find(ctx, query)
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.BorrowTransaction, error) {
	query := `
        SELECT ` + txnColumns + txnFrom + `
        WHERE r.user_id = $1
        ORDER BY t.borrowed_at DESC
    `
	return r.find(ctx, query, userID)
}

func (r *Repository) find(ctx context.Context, query string, args ...any) ([]domain.BorrowTransaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get borrow transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.BorrowTransaction
	for rows.Next() {
		txn, err := scanTxn(rows)
		if err != nil {
			zap.L().Error("can't scan borrow transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, *txn)
	}
	return txns, nil
}

// FindReturned lists RETURNED transactions for a (user, book) pair; the
// review gate feeds on it.
func (r *Repository) FindReturned(ctx context.Context, userID, bookID int) ([]domain.BorrowTransaction, error) {
	query := `
        SELECT ` + txnColumns + txnFrom + `
        WHERE r.user_id = $1 AND r.book_id = $2 AND t.status = 'RETURNED'
        ORDER BY t.returned_at DESC
    `
	return r.find(ctx, query, userID, bookID)
}

func (r *Repository) CountByStatus(ctx context.Context, statuses ...string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM borrow_transactions
        WHERE status = ANY($1)
    `
	var count int
	err := r.db.QueryRow(ctx, query, statuses).Scan(&count)
	if err != nil {
		zap.L().Error("can't count transactions", zap.Error(err))
		return 0, err
	}
	return count, nil
}
