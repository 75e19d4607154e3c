package catalogservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tranvhq/golibrary/internal/domain"
)

type mocks struct {
	bookRepo    *MockBookRepo
	requestRepo *MockRequestRepo
	txnRepo     *MockTxnRepo
	reviewRepo  *MockReviewRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		bookRepo:    NewMockBookRepo(ctrl),
		requestRepo: NewMockRequestRepo(ctrl),
		txnRepo:     NewMockTxnRepo(ctrl),
		reviewRepo:  NewMockReviewRepo(ctrl),
	}
	service := New(m.bookRepo, m.requestRepo, m.txnRepo, m.reviewRepo)
	defer ctrl.Finish()
	return service, m
}

func TestGetBook(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Book found", func(t *testing.T) {
		m.bookRepo.EXPECT().GetByID(gomock.Any(), 10).Return(&domain.Book{ID: 10, Title: "The Go Programming Language"}, nil)

		book, err := service.GetBook(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, 10, book.ID)
	})

	t.Run("Book missing", func(t *testing.T) {
		m.bookRepo.EXPECT().GetByID(gomock.Any(), 10).Return(nil, nil)

		book, err := service.GetBook(context.Background(), 10)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, book)
	})
}

func TestCreateBook(t *testing.T) {
	service, m := NewMock(t)
	staff := domain.Actor{ID: 9, IsStaff: true}

	t.Run("Staff creates a book", func(t *testing.T) {
		m.bookRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, book *domain.Book) (*domain.Book, error) {
				book.ID = 10
				return book, nil
			})

		book, err := service.CreateBook(context.Background(), &domain.Book{Title: "New", TotalCopies: 3}, staff)
		assert.NoError(t, err)
		assert.Equal(t, 10, book.ID)
	})

	t.Run("Non-staff is rejected", func(t *testing.T) {
		book, err := service.CreateBook(context.Background(), &domain.Book{Title: "New"}, domain.Actor{ID: 1})
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Nil(t, book)
	})
}

func TestUpdateBook(t *testing.T) {
	service, m := NewMock(t)
	staff := domain.Actor{ID: 9, IsStaff: true}

	t.Run("Unknown book", func(t *testing.T) {
		m.bookRepo.EXPECT().GetByID(gomock.Any(), 10).Return(nil, nil)

		book, err := service.UpdateBook(context.Background(), &domain.Book{ID: 10}, staff)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, book)
	})

	t.Run("Existing book updated", func(t *testing.T) {
		m.bookRepo.EXPECT().GetByID(gomock.Any(), 10).Return(&domain.Book{ID: 10}, nil)
		m.bookRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(&domain.Book{ID: 10, Title: "Renamed"}, nil)

		book, err := service.UpdateBook(context.Background(), &domain.Book{ID: 10, Title: "Renamed"}, staff)
		assert.NoError(t, err)
		assert.Equal(t, "Renamed", book.Title)
	})
}

func TestGetStats(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		actor         domain.Actor
		prepareMock   func()
		expectedStats *Stats
		expectedError error
	}{
		{
			name:  "Counters aggregated",
			actor: domain.Actor{ID: 9, IsStaff: true},
			prepareMock: func() {
				m.bookRepo.EXPECT().CountActive(gomock.Any()).Return(120, nil)
				m.requestRepo.EXPECT().CountPending(gomock.Any()).Return(4, nil)
				m.txnRepo.EXPECT().CountByStatus(gomock.Any(),
					domain.TxnStatusBorrowing, domain.TxnStatusOverdue, domain.TxnStatusReturnPending).Return(17, nil)
				m.txnRepo.EXPECT().CountByStatus(gomock.Any(), domain.TxnStatusOverdue).Return(2, nil)
				m.reviewRepo.EXPECT().CountPending(gomock.Any()).Return(1, nil)
			},
			expectedStats: &Stats{ActiveBooks: 120, PendingRequests: 4, ActiveLoans: 17, OverdueLoans: 2, PendingReviews: 1},
		},
		{
			name:          "Non-staff is rejected",
			actor:         domain.Actor{ID: 1},
			prepareMock:   func() {},
			expectedError: ErrUnauthorized,
		},
		{
			name:  "Counter error propagates",
			actor: domain.Actor{ID: 9, IsStaff: true},
			prepareMock: func() {
				m.bookRepo.EXPECT().CountActive(gomock.Any()).Return(0, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			stats, err := service.GetStats(context.Background(), tt.actor)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, stats)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStats, stats)
			}
		})
	}
}
