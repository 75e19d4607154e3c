package borrowservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/pg"
	requestrepo "github.com/tranvhq/golibrary/internal/repo/request-repo"
	"github.com/tranvhq/golibrary/internal/service/eligibility"
	"github.com/tranvhq/golibrary/internal/service/ledgerservice"
)

type mocks struct {
	requestRepo *MockRequestRepo
	txnRepo     *MockTxnRepo
	ledger      *MockLedger
	gate        *MockGate
	notifier    *MockNotifier
	txManager   *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		requestRepo: NewMockRequestRepo(ctrl),
		txnRepo:     NewMockTxnRepo(ctrl),
		ledger:      NewMockLedger(ctrl),
		gate:        NewMockGate(ctrl),
		notifier:    NewMockNotifier(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
	}
	service := New(m.requestRepo, m.txnRepo, m.ledger, m.gate, m.notifier, m.txManager, 30)
	service.now = func() time.Time {
		return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	}
	defer ctrl.Finish()
	return service, m
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestCreate(t *testing.T) {
	service, m := NewMock(t)
	returnDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		returnDate    time.Time
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Request created",
			returnDate: returnDate,
			prepareMock: func() {
				m.gate.EXPECT().CanRequest(gomock.Any(), 1, 10).Return(nil)
				m.requestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.BorrowRequest{
					ID: 3, UserID: 1, BookID: 10, Status: domain.RequestStatusPending,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "Return date in the past",
			returnDate:    time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			prepareMock:   func() {},
			expectedError: ErrIneligibleRequest,
		},
		{
			name:          "Return date beyond loan window",
			returnDate:    time.Date(2026, 10, 30, 0, 0, 0, 0, time.UTC),
			prepareMock:   func() {},
			expectedError: ErrIneligibleRequest,
		},
		{
			name:       "Duplicate open request",
			returnDate: returnDate,
			prepareMock: func() {
				m.gate.EXPECT().CanRequest(gomock.Any(), 1, 10).Return(eligibility.ErrDuplicateRequest)
			},
			expectedError: ErrIneligibleRequest,
		},
		{
			name:       "Book unavailable",
			returnDate: returnDate,
			prepareMock: func() {
				m.gate.EXPECT().CanRequest(gomock.Any(), 1, 10).Return(eligibility.ErrBookUnavailable)
			},
			expectedError: ErrIneligibleRequest,
		},
		{
			name:       "Insert loses the race to a concurrent request",
			returnDate: returnDate,
			prepareMock: func() {
				m.gate.EXPECT().CanRequest(gomock.Any(), 1, 10).Return(nil)
				m.requestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, requestrepo.ErrDuplicateOpen)
			},
			expectedError: ErrIneligibleRequest,
		},
		{
			name:       "Gate internal error is not an eligibility rejection",
			returnDate: returnDate,
			prepareMock: func() {
				m.gate.EXPECT().CanRequest(gomock.Any(), 1, 10).Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req, err := service.Create(context.Background(), 1, 10, tt.returnDate, "")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
				assert.Nil(t, req)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, req)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		actor         domain.Actor
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Request cancelled",
			actor: domain.Actor{ID: 1},
			prepareMock: func() {
				passthroughTx(m)
				m.requestRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(&domain.BorrowRequest{
					ID: 3, UserID: 1, Status: domain.RequestStatusPending,
				}, nil)
				m.requestRepo.EXPECT().UpdateStatus(gomock.Any(), 3, domain.RequestStatusCancelled, nil, nil).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "Request not found",
			actor: domain.Actor{ID: 1},
			prepareMock: func() {
				passthroughTx(m)
				m.requestRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrNotFound,
		},
		{
			name:  "Only the requester may cancel",
			actor: domain.Actor{ID: 2},
			prepareMock: func() {
				passthroughTx(m)
				m.requestRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(&domain.BorrowRequest{
					ID: 3, UserID: 1, Status: domain.RequestStatusPending,
				}, nil)
			},
			expectedError: ErrUnauthorized,
		},
		{
			name:  "Already approved",
			actor: domain.Actor{ID: 1},
			prepareMock: func() {
				passthroughTx(m)
				m.requestRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(&domain.BorrowRequest{
					ID: 3, UserID: 1, Status: domain.RequestStatusApproved,
				}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Cancel(context.Background(), 3, tt.actor)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApprove(t *testing.T) {
	service, m := NewMock(t)
	staff := domain.Actor{ID: 9, IsStaff: true}
	pending := func() *domain.BorrowRequest {
		return &domain.BorrowRequest{
			ID:                 3,
			UserID:             1,
			BookID:             10,
			Status:             domain.RequestStatusPending,
			RequestDate:        time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC),
			ExpectedReturnDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		}
	}

	tests := []struct {
		name          string
		actor         domain.Actor
		prepareMock   func()
		expectedError error
		expectedDue   time.Time
	}{
		{
			name:  "Request approved and transaction opened",
			actor: staff,
			prepareMock: func() {
				passthroughTx(m)
				m.requestRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(pending(), nil)
				m.ledger.EXPECT().Reserve(gomock.Any(), 10).Return(nil)
				m.requestRepo.EXPECT().UpdateStatus(gomock.Any(), 3, domain.RequestStatusApproved, gomock.Any(), gomock.Any()).Return(nil)
				m.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, txn *domain.BorrowTransaction) (*domain.BorrowTransaction, error) {
						txn.ID = 7
						txn.Status = domain.TxnStatusBorrowing
						return txn, nil
					})
				m.notifier.EXPECT().RequestHandled(gomock.Any(), gomock.Any(), domain.RequestStatusApproved)
			},
			// 10 loan days re-anchored to the approval moment.
			expectedDue: time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "Request date in a west-of-UTC zone keeps the full loan window",
			actor: staff,
			prepareMock: func() {
				passthroughTx(m)
				req := pending()
				// Same instant as 2026-08-25 14:30 UTC, expressed server-local.
				req.RequestDate = time.Date(2026, 8, 25, 7, 30, 0, 0, time.FixedZone("PDT", -7*3600))
				m.requestRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(req, nil)
				m.ledger.EXPECT().Reserve(gomock.Any(), 10).Return(nil)
				m.requestRepo.EXPECT().UpdateStatus(gomock.Any(), 3, domain.RequestStatusApproved, gomock.Any(), gomock.Any()).Return(nil)
				m.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, txn *domain.BorrowTransaction) (*domain.BorrowTransaction, error) {
						txn.ID = 7
						txn.Status = domain.TxnStatusBorrowing
						return txn, nil
					})
				m.notifier.EXPECT().RequestHandled(gomock.Any(), gomock.Any(), domain.RequestStatusApproved)
			},
			// Still 10 calendar days, not 9: the zone offset must not eat a day.
			expectedDue: time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
		},
		{
			name:          "Non-staff actor",
			actor:         domain.Actor{ID: 1},
			prepareMock:   func() {},
			expectedError: ErrUnauthorized,
		},
		{
			name:  "Request not found",
			actor: staff,
			prepareMock: func() {
				passthroughTx(m)
				m.requestRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrNotFound,
		},
		{
			name:  "Request already handled",
			actor: staff,
			prepareMock: func() {
				passthroughTx(m)
				req := pending()
				req.Status = domain.RequestStatusRejected
				m.requestRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(req, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name:  "No copies left at approval time",
			actor: staff,
			prepareMock: func() {
				passthroughTx(m)
				m.requestRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(pending(), nil)
				m.ledger.EXPECT().Reserve(gomock.Any(), 10).Return(ledgerservice.ErrOutOfStock)
			},
			expectedError: ledgerservice.ErrOutOfStock,
		},
		{
			name:  "Transaction insert fails, request stays pending",
			actor: staff,
			prepareMock: func() {
				passthroughTx(m)
				m.requestRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(pending(), nil)
				m.ledger.EXPECT().Reserve(gomock.Any(), 10).Return(nil)
				m.requestRepo.EXPECT().UpdateStatus(gomock.Any(), 3, domain.RequestStatusApproved, gomock.Any(), gomock.Any()).Return(nil)
				m.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			txn, err := service.Approve(context.Background(), 3, tt.actor)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, txn)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, txn)
				assert.Equal(t, 3, txn.RequestID)
				assert.Equal(t, 10, txn.BookID)
				assert.Equal(t, tt.expectedDue, txn.DueAt)
			}
		})
	}
}

func TestReject(t *testing.T) {
	service, m := NewMock(t)
	staff := domain.Actor{ID: 9, IsStaff: true}

	tests := []struct {
		name          string
		actor         domain.Actor
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Request rejected",
			actor: staff,
			prepareMock: func() {
				passthroughTx(m)
				m.requestRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(&domain.BorrowRequest{
					ID: 3, UserID: 1, Status: domain.RequestStatusPending,
				}, nil)
				m.requestRepo.EXPECT().UpdateStatus(gomock.Any(), 3, domain.RequestStatusRejected, gomock.Any(), gomock.Any()).Return(nil)
				m.notifier.EXPECT().RequestHandled(gomock.Any(), gomock.Any(), domain.RequestStatusRejected)
			},
			expectedError: nil,
		},
		{
			name:          "Non-staff actor",
			actor:         domain.Actor{ID: 1},
			prepareMock:   func() {},
			expectedError: ErrUnauthorized,
		},
		{
			name:  "Already cancelled",
			actor: staff,
			prepareMock: func() {
				passthroughTx(m)
				m.requestRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(&domain.BorrowRequest{
					ID: 3, UserID: 1, Status: domain.RequestStatusCancelled,
				}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Reject(context.Background(), 3, tt.actor)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetPendingRequests(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Staff sees pending requests", func(t *testing.T) {
		m.requestRepo.EXPECT().FindPending(gomock.Any()).Return([]domain.BorrowRequest{{ID: 3}}, nil)

		requests, err := service.GetPendingRequests(context.Background(), domain.Actor{ID: 9, IsStaff: true})
		assert.NoError(t, err)
		assert.Len(t, requests, 1)
	})

	t.Run("Non-staff is rejected", func(t *testing.T) {
		requests, err := service.GetPendingRequests(context.Background(), domain.Actor{ID: 1})
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Nil(t, requests)
	})
}
