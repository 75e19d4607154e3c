package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tranvhq/golibrary/internal/domain"
)

var txnRows = []string{
	"id", "request_id", "user_id", "book_id", "borrowed_at", "due_at",
	"returned_at", "status", "fine_amount", "late_return_days",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	borrowedAt := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	dueAt := borrowedAt.AddDate(0, 0, 10)

	t.Run("Transaction created", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "request_id", "borrowed_at", "due_at", "returned_at", "status", "fine_amount", "late_return_days"}).
			AddRow(7, 3, borrowedAt, dueAt, nil, "BORROWING", decimal.NullDecimal{}, 0)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO borrow_transactions")).
			WithArgs(3, borrowedAt, dueAt).
			WillReturnRows(rows)

		created, err := repo.Create(context.Background(), &domain.BorrowTransaction{
			RequestID: 3, UserID: 1, BookID: 10, BorrowedAt: borrowedAt, DueAt: dueAt,
		})
		assert.NoError(t, err)
		assert.Equal(t, 7, created.ID)
		assert.Equal(t, domain.TxnStatusBorrowing, created.Status)
		assert.Equal(t, 1, created.UserID)
		assert.Equal(t, 10, created.BookID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO borrow_transactions")).
			WithArgs(3, borrowedAt, dueAt).
			WillReturnError(errors.New("database error"))

		created, err := repo.Create(context.Background(), &domain.BorrowTransaction{
			RequestID: 3, BorrowedAt: borrowedAt, DueAt: dueAt,
		})
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Transaction exists", func(t *testing.T) {
		rows := pgxmock.NewRows(txnRows).
			AddRow(7, 3, 1, 10, timeNow, timeNow.AddDate(0, 0, 10), nil, "BORROWING", decimal.NullDecimal{}, 0)
		mock.ExpectQuery(regexp.QuoteMeta("JOIN borrow_requests r ON r.id = t.request_id")).
			WithArgs(7).
			WillReturnRows(rows)

		txn, err := repo.GetByID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, txn.ID)
		assert.Equal(t, 1, txn.UserID)
		assert.Nil(t, txn.ReturnedAt)
	})

	t.Run("Transaction does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("JOIN borrow_requests r ON r.id = t.request_id")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		txn, err := repo.GetByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, txn)
	})
}

func TestRepository_MarkReturned(t *testing.T) {
	repo, mock := NewMock(t)
	returnedAt := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	fine := decimal.NewFromInt(15000)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		changed   bool
	}{
		{
			name: "Loan finalized",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET status = 'RETURNED'")).
					WithArgs(7, returnedAt, 3, fine).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			changed: true,
		},
		{
			name: "Already returned is a no-op",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET status = 'RETURNED'")).
					WithArgs(7, returnedAt, 3, fine).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			changed: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET status = 'RETURNED'")).
					WithArgs(7, returnedAt, 3, fine).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			changed, err := repo.MarkReturned(context.Background(), 7, returnedAt, 3, fine)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestRepository_MarkOverdue(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	t.Run("Transaction marked overdue", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET status = 'OVERDUE'")).
			WithArgs(7, now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		changed, err := repo.MarkOverdue(context.Background(), 7, now)
		assert.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("Returned in the meantime", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET status = 'OVERDUE'")).
			WithArgs(7, now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		changed, err := repo.MarkOverdue(context.Background(), 7, now)
		assert.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestRepository_FindDueForSweep(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	t.Run("Due transactions listed", func(t *testing.T) {
		rows := pgxmock.NewRows(txnRows).
			AddRow(7, 3, 1, 10, now.AddDate(0, 0, -12), now.AddDate(0, 0, -2), nil, "BORROWING", decimal.NullDecimal{}, 0).
			AddRow(8, 4, 2, 11, now.AddDate(0, 0, -11), now.AddDate(0, 0, -1), nil, "BORROWING", decimal.NullDecimal{}, 0)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE t.status = 'BORROWING' AND t.due_at < $1")).
			WithArgs(now, 1000).
			WillReturnRows(rows)

		txns, err := repo.FindDueForSweep(context.Background(), now, 1000)
		assert.NoError(t, err)
		assert.Len(t, txns, 2)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE t.status = 'BORROWING' AND t.due_at < $1")).
			WithArgs(now, 1000).
			WillReturnError(errors.New("database error"))

		txns, err := repo.FindDueForSweep(context.Background(), now, 1000)
		assert.Error(t, err)
		assert.Nil(t, txns)
	})
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Loans listed newest first", func(t *testing.T) {
		returnedAt := timeNow.AddDate(0, 0, -1)
		rows := pgxmock.NewRows(txnRows).
			AddRow(8, 4, 1, 11, timeNow, timeNow.AddDate(0, 0, 10), nil, "BORROWING", decimal.NullDecimal{}, 0).
			AddRow(7, 3, 1, 10, timeNow.AddDate(0, 0, -14), timeNow.AddDate(0, 0, -4), &returnedAt,
				"RETURNED", decimal.NewNullDecimal(decimal.NewFromInt(15000)), 3)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE r.user_id = $1")).
			WithArgs(1).
			WillReturnRows(rows)

		txns, err := repo.FindByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, txns, 2)
		assert.Equal(t, domain.TxnStatusReturned, txns[1].Status)
		assert.Equal(t, 3, txns[1].LateReturnDays)
	})

	t.Run("Scan row error", func(t *testing.T) {
		rows := pgxmock.NewRows(txnRows).
			AddRow(7, 3, 1, 10, timeNow, timeNow, nil, "BORROWING", decimal.NullDecimal{}, "invalid_value")
		mock.ExpectQuery(regexp.QuoteMeta("WHERE r.user_id = $1")).
			WithArgs(1).
			WillReturnRows(rows)

		txns, err := repo.FindByUserID(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, txns)
	})
}

func TestRepository_CountByStatus(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Count returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE status = ANY($1)")).
			WithArgs([]string{"BORROWING", "OVERDUE"}).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(17))

		count, err := repo.CountByStatus(context.Background(), domain.TxnStatusBorrowing, domain.TxnStatusOverdue)
		assert.NoError(t, err)
		assert.Equal(t, 17, count)
	})
}
