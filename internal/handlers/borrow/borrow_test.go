package borrow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/service/borrowservice"
	"github.com/tranvhq/golibrary/internal/service/ledgerservice"
	"github.com/tranvhq/golibrary/pkg/auth"
	"github.com/tranvhq/golibrary/pkg/utils"
)

func NewMock(t *testing.T) (*BorrowHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, body string, userID int, isStaff bool) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.IsStaffKey, isStaff)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateRequestHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Request created",
			body: `{"book_id":10,"expected_return_date":"2026-09-15"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, 10, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), "").
					Return(&domain.BorrowRequest{ID: 3, BookID: 10, Status: domain.RequestStatusPending,
						ExpectedReturnDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Malformed date",
			body:          `{"book_id":10,"expected_return_date":"15-09-2026"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Ineligible request",
			body: `{"book_id":10,"expected_return_date":"2026-09-15"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, 10, gomock.Any(), "").
					Return(nil, fmt.Errorf("%w: book has no available copies", borrowservice.ErrIneligibleRequest))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "request is not eligible: book has no available copies",
		},
		{
			name: "Internal error",
			body: `{"book_id":10,"expected_return_date":"2026-09-15"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, 10, gomock.Any(), "").Return(nil, errors.New("some error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/requests", tt.body, 1, false)
			rr := httptest.NewRecorder()

			handler.CreateRequest(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestCancelRequestHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Request cancelled",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), 3, domain.Actor{ID: 1}).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Request not found",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), 3, domain.Actor{ID: 1}).Return(borrowservice.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Not the requester",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), 3, domain.Actor{ID: 1}).Return(borrowservice.ErrUnauthorized)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Request already handled",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), 3, domain.Actor{ID: 1}).Return(borrowservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParam(authedRequest("POST", "/api/requests/3/cancel", "", 1, false), "id", "3")
			rr := httptest.NewRecorder()

			handler.CancelRequest(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestApproveRequestHandler(t *testing.T) {
	handler, service := NewMock(t)
	staff := domain.Actor{ID: 9, IsStaff: true}

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Request approved",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 3, staff).Return(&domain.BorrowTransaction{
					ID: 7, RequestID: 3, BookID: 10, Status: domain.TxnStatusBorrowing,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Out of stock",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 3, staff).Return(nil, ledgerservice.ErrOutOfStock)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Request not found",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 3, staff).Return(nil, borrowservice.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already handled",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 3, staff).Return(nil, borrowservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParam(authedRequest("POST", "/api/admin/requests/3/approve", "", 9, true), "id", "3")
			rr := httptest.NewRecorder()

			handler.ApproveRequest(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetMyRequestsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Requests listed",
			prepareMock: func() {
				service.EXPECT().GetMyRequests(gomock.Any(), 1).Return([]domain.BorrowRequest{
					{ID: 3, BookID: 10, Status: domain.RequestStatusPending},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "No requests",
			prepareMock: func() {
				service.EXPECT().GetMyRequests(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("GET", "/api/requests", "", 1, false)
			rr := httptest.NewRecorder()

			handler.GetMyRequests(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedLen > 0 {
				var resp []map[string]any
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}
