package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tranvhq/golibrary/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockBookRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockBookRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestReserve(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		bookID        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Copy reserved",
			bookID: 1,
			prepareMock: func() {
				repo.EXPECT().TryReserve(gomock.Any(), 1).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name:   "Book does not exist",
			bookID: 2,
			prepareMock: func() {
				repo.EXPECT().TryReserve(gomock.Any(), 2).Return(false, nil)
				repo.EXPECT().GetByID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: ErrBookNotFound,
		},
		{
			name:   "Book is inactive",
			bookID: 3,
			prepareMock: func() {
				repo.EXPECT().TryReserve(gomock.Any(), 3).Return(false, nil)
				repo.EXPECT().GetByID(gomock.Any(), 3).Return(&domain.Book{ID: 3, IsActive: false, AvailableCopies: 2}, nil)
			},
			expectedError: ErrBookNotFound,
		},
		{
			name:   "No copies left",
			bookID: 4,
			prepareMock: func() {
				repo.EXPECT().TryReserve(gomock.Any(), 4).Return(false, nil)
				repo.EXPECT().GetByID(gomock.Any(), 4).Return(&domain.Book{ID: 4, IsActive: true, AvailableCopies: 0}, nil)
			},
			expectedError: ErrOutOfStock,
		},
		{
			name:   "Repository error",
			bookID: 5,
			prepareMock: func() {
				repo.EXPECT().TryReserve(gomock.Any(), 5).Return(false, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Reserve(context.Background(), tt.bookID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRelease(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		bookID        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Copy released",
			bookID: 1,
			prepareMock: func() {
				repo.EXPECT().TryRelease(gomock.Any(), 1).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name:   "Book does not exist",
			bookID: 2,
			prepareMock: func() {
				repo.EXPECT().TryRelease(gomock.Any(), 2).Return(false, nil)
				repo.EXPECT().GetByID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: ErrBookNotFound,
		},
		{
			name:   "Release clamped at total copies",
			bookID: 3,
			prepareMock: func() {
				repo.EXPECT().TryRelease(gomock.Any(), 3).Return(false, nil)
				repo.EXPECT().GetByID(gomock.Any(), 3).Return(&domain.Book{ID: 3, TotalCopies: 2, AvailableCopies: 2}, nil)
			},
			expectedError: ErrInvariantViolation,
		},
		{
			name:   "Repository error",
			bookID: 4,
			prepareMock: func() {
				repo.EXPECT().TryRelease(gomock.Any(), 4).Return(false, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Release(context.Background(), tt.bookID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
