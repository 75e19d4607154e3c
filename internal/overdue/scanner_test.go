package overdue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tranvhq/golibrary/internal/domain"
)

func NewMock(t *testing.T) (*Scanner, *MockTxnRepo) {
	ctrl := gomock.NewController(t)
	txnRepo := NewMockTxnRepo(ctrl)
	scanner := &Scanner{
		spec:       "@every 1h",
		txnRepo:    txnRepo,
		limit:      1000,
		workerPool: NewWorkerPool(2),
		cron:       cron.New(),
		now:        func() time.Time { return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC) },
	}
	defer ctrl.Finish()
	return scanner, txnRepo
}

func TestSweep(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	t.Run("Due transactions marked overdue", func(t *testing.T) {
		scanner, txnRepo := NewMock(t)

		txnRepo.EXPECT().FindDueForSweep(gomock.Any(), now, uint32(1000)).Return([]domain.BorrowTransaction{
			{ID: 7, Status: domain.TxnStatusBorrowing, DueAt: now.Add(-48 * time.Hour)},
			{ID: 8, Status: domain.TxnStatusBorrowing, DueAt: now.Add(-2 * time.Hour)},
		}, nil)
		txnRepo.EXPECT().MarkOverdue(gomock.Any(), 7, now).Return(true, nil)
		txnRepo.EXPECT().MarkOverdue(gomock.Any(), 8, now).Return(true, nil)

		marked, err := scanner.Sweep(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 2, marked)
	})

	t.Run("Returned in the meantime is a no-op", func(t *testing.T) {
		scanner, txnRepo := NewMock(t)

		txnRepo.EXPECT().FindDueForSweep(gomock.Any(), now, uint32(1000)).Return([]domain.BorrowTransaction{
			{ID: 7, Status: domain.TxnStatusBorrowing, DueAt: now.Add(-48 * time.Hour)},
		}, nil)
		txnRepo.EXPECT().MarkOverdue(gomock.Any(), 7, now).Return(false, nil)

		marked, err := scanner.Sweep(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0, marked)
	})

	t.Run("Nothing due", func(t *testing.T) {
		scanner, txnRepo := NewMock(t)

		txnRepo.EXPECT().FindDueForSweep(gomock.Any(), now, uint32(1000)).Return(nil, nil)

		marked, err := scanner.Sweep(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0, marked)
	})

	t.Run("Fetch failure", func(t *testing.T) {
		scanner, txnRepo := NewMock(t)

		txnRepo.EXPECT().FindDueForSweep(gomock.Any(), now, uint32(1000)).Return(nil, errors.New("some error"))

		marked, err := scanner.Sweep(context.Background())
		assert.Error(t, err)
		assert.Equal(t, 0, marked)
	})

	t.Run("Mark failure still counts the rest", func(t *testing.T) {
		scanner, txnRepo := NewMock(t)

		txnRepo.EXPECT().FindDueForSweep(gomock.Any(), now, uint32(1000)).Return([]domain.BorrowTransaction{
			{ID: 7, Status: domain.TxnStatusBorrowing, DueAt: now.Add(-48 * time.Hour)},
		}, nil)
		txnRepo.EXPECT().MarkOverdue(gomock.Any(), 7, now).Return(false, errors.New("some error"))

		marked, err := scanner.Sweep(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0, marked)
	})
}
