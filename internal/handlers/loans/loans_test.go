package loans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/dto"
	"github.com/tranvhq/golibrary/internal/service/loanservice"
	"github.com/tranvhq/golibrary/pkg/auth"
)

func NewMock(t *testing.T) (*LoanHandler, *MockService, *MockSweeper) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	sweeper := NewMockSweeper(ctrl)
	handler := New(service, sweeper)
	defer ctrl.Finish()
	return handler, service, sweeper
}

func authedRequest(method, target string, userID int, isStaff bool) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.IsStaffKey, isStaff)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetMyLoansHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("Loans listed", func(t *testing.T) {
		service.EXPECT().GetMyLoans(gomock.Any(), 1).Return([]domain.BorrowTransaction{
			{ID: 7, RequestID: 3, BookID: 10, Status: domain.TxnStatusBorrowing},
		}, nil)

		req := authedRequest("GET", "/api/loans", 1, false)
		rr := httptest.NewRecorder()

		handler.GetMyLoans(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []dto.TransactionResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, 7, resp[0].ID)
	})

	t.Run("No loans", func(t *testing.T) {
		service.EXPECT().GetMyLoans(gomock.Any(), 1).Return(nil, nil)

		req := authedRequest("GET", "/api/loans", 1, false)
		rr := httptest.NewRecorder()

		handler.GetMyLoans(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().GetMyLoans(gomock.Any(), 1).Return(nil, errors.New("some error"))

		req := authedRequest("GET", "/api/loans", 1, false)
		rr := httptest.NewRecorder()

		handler.GetMyLoans(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestRequestReturnHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		txnID        string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "Return requested",
			txnID: "7",
			prepareMock: func() {
				service.EXPECT().RequestReturn(gomock.Any(), 7, domain.Actor{ID: 1}).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Transaction not found",
			txnID: "7",
			prepareMock: func() {
				service.EXPECT().RequestReturn(gomock.Any(), 7, domain.Actor{ID: 1}).Return(loanservice.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:  "Not the borrower",
			txnID: "7",
			prepareMock: func() {
				service.EXPECT().RequestReturn(gomock.Any(), 7, domain.Actor{ID: 1}).Return(loanservice.ErrUnauthorized)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:  "Loan already returned",
			txnID: "7",
			prepareMock: func() {
				service.EXPECT().RequestReturn(gomock.Any(), 7, domain.Actor{ID: 1}).Return(loanservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid transaction id",
			txnID:        "seven",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParam(authedRequest("POST", "/api/loans/"+tt.txnID+"/return-request", 1, false), "id", tt.txnID)
			rr := httptest.NewRecorder()

			handler.RequestReturn(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestReturnLoanHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	staff := domain.Actor{ID: 9, IsStaff: true}

	t.Run("Return confirmed with fine", func(t *testing.T) {
		returnedAt := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
		service.EXPECT().Return(gomock.Any(), 7, staff).Return(&domain.BorrowTransaction{
			ID:             7,
			RequestID:      3,
			BookID:         10,
			Status:         domain.TxnStatusReturned,
			ReturnedAt:     &returnedAt,
			LateReturnDays: 3,
			FineAmount:     decimal.NewNullDecimal(decimal.NewFromInt(15000)),
		}, nil)

		req := withURLParam(authedRequest("POST", "/api/admin/loans/7/return", 9, true), "id", "7")
		rr := httptest.NewRecorder()

		handler.ReturnLoan(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.TransactionResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Equal(t, "15000", resp.FineAmount)
		assert.Equal(t, 3, resp.LateReturnDays)
	})

	t.Run("Loan already returned", func(t *testing.T) {
		service.EXPECT().Return(gomock.Any(), 7, staff).Return(nil, loanservice.ErrInvalidTransition)

		req := withURLParam(authedRequest("POST", "/api/admin/loans/7/return", 9, true), "id", "7")
		rr := httptest.NewRecorder()

		handler.ReturnLoan(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Transaction not found", func(t *testing.T) {
		service.EXPECT().Return(gomock.Any(), 7, staff).Return(nil, loanservice.ErrNotFound)

		req := withURLParam(authedRequest("POST", "/api/admin/loans/7/return", 9, true), "id", "7")
		rr := httptest.NewRecorder()

		handler.ReturnLoan(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetActiveLoansHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	staff := domain.Actor{ID: 9, IsStaff: true}

	t.Run("Active loans listed", func(t *testing.T) {
		service.EXPECT().GetActiveTransactions(gomock.Any(), staff).Return([]domain.BorrowTransaction{
			{ID: 7, Status: domain.TxnStatusBorrowing},
			{ID: 8, Status: domain.TxnStatusOverdue},
		}, nil)

		req := authedRequest("GET", "/api/admin/loans", 9, true)
		rr := httptest.NewRecorder()

		handler.GetActiveLoans(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Staff capability required", func(t *testing.T) {
		service.EXPECT().GetActiveTransactions(gomock.Any(), domain.Actor{ID: 1}).Return(nil, loanservice.ErrUnauthorized)

		req := authedRequest("GET", "/api/admin/loans", 1, false)
		rr := httptest.NewRecorder()

		handler.GetActiveLoans(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestSweepOverdueHandler(t *testing.T) {
	handler, _, sweeper := NewMock(t)

	t.Run("Sweep reports the marked count", func(t *testing.T) {
		sweeper.EXPECT().Sweep(gomock.Any()).Return(2, nil)

		req := authedRequest("POST", "/api/admin/loans/sweep", 9, true)
		rr := httptest.NewRecorder()

		handler.SweepOverdue(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.SweepResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Equal(t, "Marked 2 transactions overdue", resp.Message)
	})

	t.Run("Sweep failure", func(t *testing.T) {
		sweeper.EXPECT().Sweep(gomock.Any()).Return(0, errors.New("some error"))

		req := authedRequest("POST", "/api/admin/loans/sweep", 9, true)
		rr := httptest.NewRecorder()

		handler.SweepOverdue(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
