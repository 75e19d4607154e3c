package ledgerservice

import (
	"context"
	"errors"

	"github.com/tranvhq/golibrary/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

// BookRepo is the slice of the book repository the ledger needs. TryReserve
// and TryRelease are the only writers of available_copies in the whole
// system.
type BookRepo interface {
	GetByID(ctx context.Context, bookID int) (*domain.Book, error)
	TryReserve(ctx context.Context, bookID int) (bool, error)
	TryRelease(ctx context.Context, bookID int) (bool, error)
}

var (
	ErrBookNotFound       = errors.New("book not found")
	ErrOutOfStock         = errors.New("no copies available")
	ErrInvariantViolation = errors.New("copy count invariant violated")
)

// Service is the inventory ledger: it owns every mutation of a book's
// available_copies and keeps 0 <= available_copies <= total_copies.
type Service struct {
	bookRepo BookRepo
}

func New(bookRepo BookRepo) *Service {
	return &Service{bookRepo: bookRepo}
}

// Reserve takes one copy of the book. When called inside a TXManager.Begin
// the decrement joins the surrounding transaction and rolls back with it.
func (s *Service) Reserve(ctx context.Context, bookID int) error {
	reserved, err := s.bookRepo.TryReserve(ctx, bookID)
	if err != nil {
		return err
	}
	if reserved {
		return nil
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return err
	}
	if book == nil || !book.IsActive {
		return ErrBookNotFound
	}
	return ErrOutOfStock
}

// Release gives one copy back. A release that would push available_copies
// past total_copies means a double release happened somewhere; the count is
// clamped and the inconsistency reported instead of corrupting the ledger.
func (s *Service) Release(ctx context.Context, bookID int) error {
	released, err := s.bookRepo.TryRelease(ctx, bookID)
	if err != nil {
		return err
	}
	if released {
		return nil
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}

	zap.L().Error("release clamped: available_copies already at total_copies",
		zap.Int("bookID", bookID),
		zap.Int("totalCopies", book.TotalCopies),
	)
	return ErrInvariantViolation
}
