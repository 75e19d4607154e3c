package reviewrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/tranvhq/golibrary/internal/domain"
)

var reviewRows = []string{
	"id", "user_id", "book_id", "transaction_id", "rating", "content",
	"status", "moderated_by", "moderated_at", "created_at",
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
	timeNow := time.Now()

	t.Run("Review created as pending", func(t *testing.T) {
		rows := pgxmock.NewRows(reviewRows).
			AddRow(5, 1, 10, 7, 4, "solid introduction", "PENDING", nil, nil, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews")).
			WithArgs(1, 10, 7, 4, "solid introduction").
			WillReturnRows(rows)

		created, err := repo.Create(context.Background(), &domain.Review{
			UserID: 1, BookID: 10, TransactionID: 7, Rating: 4, Content: "solid introduction",
		})
		assert.NoError(t, err)
		assert.Equal(t, 5, created.ID)
		assert.Equal(t, domain.ReviewStatusPending, created.Status)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews")).
			WithArgs(1, 10, 7, 4, "solid introduction").
			WillReturnError(errors.New("database error"))

		created, err := repo.Create(context.Background(), &domain.Review{
			UserID: 1, BookID: 10, TransactionID: 7, Rating: 4, Content: "solid introduction",
		})
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestRepository_Moderate(t *testing.T) {
	repo, mock := NewMock(t)
	moderatedAt := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	t.Run("Pending review moderated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE reviews")).
			WithArgs(5, "APPROVED", 9, moderatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		changed, err := repo.Moderate(context.Background(), 5, domain.ReviewStatusApproved, 9, moderatedAt)
		assert.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("Already moderated is a no-op", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE reviews")).
			WithArgs(5, "REJECTED", 9, moderatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		changed, err := repo.Moderate(context.Background(), 5, domain.ReviewStatusRejected, 9, moderatedAt)
		assert.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestRepository_ExistsLive(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Live review found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
			WithArgs(1, 10).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.ExistsLive(context.Background(), 1, 10)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Only rejected reviews", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
			WithArgs(1, 10).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.ExistsLive(context.Background(), 1, 10)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRepository_FindApprovedByBookID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()
	moderatedBy := 9

	t.Run("Approved reviews listed", func(t *testing.T) {
		rows := pgxmock.NewRows(reviewRows).
			AddRow(5, 1, 10, 7, 4, "solid introduction", "APPROVED", &moderatedBy, &timeNow, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE book_id = $1 AND status = 'APPROVED'")).
			WithArgs(10).
			WillReturnRows(rows)

		reviews, err := repo.FindApprovedByBookID(context.Background(), 10)
		assert.NoError(t, err)
		assert.Len(t, reviews, 1)
		assert.Equal(t, 4, reviews[0].Rating)
	})

	t.Run("Scan row error", func(t *testing.T) {
		rows := pgxmock.NewRows(reviewRows).
			AddRow(5, 1, 10, 7, "invalid_value", "", "APPROVED", nil, nil, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE book_id = $1 AND status = 'APPROVED'")).
			WithArgs(10).
			WillReturnRows(rows)

		reviews, err := repo.FindApprovedByBookID(context.Background(), 10)
		assert.Error(t, err)
		assert.Nil(t, reviews)
	})
}

func TestRepository_CountPending(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Count returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reviews WHERE status = 'PENDING'")).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

		count, err := repo.CountPending(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
