package eligibility

import (
	"context"
	"errors"

	"github.com/tranvhq/golibrary/internal/domain"
)

//go:generate mockgen -source=eligibility.go -destination=mock_eligibility.go -package=eligibility

type BookRepo interface {
	GetByID(ctx context.Context, bookID int) (*domain.Book, error)
}

type RequestRepo interface {
	ExistsOpen(ctx context.Context, userID, bookID int) (bool, error)
}

type TxnRepo interface {
	FindReturned(ctx context.Context, userID, bookID int) ([]domain.BorrowTransaction, error)
}

type ReviewRepo interface {
	ExistsLive(ctx context.Context, userID, bookID int) (bool, error)
}

// Rejection reasons. A nil return from CanRequest/CanReview means eligible;
// any other error is an internal failure.
var (
	ErrBookNotFound     = errors.New("book not found")
	ErrBookUnavailable  = errors.New("book has no available copies")
	ErrDuplicateRequest = errors.New("user already has an open request for this book")
	ErrNotReturned      = errors.New("user has not returned this book")
	ErrAlreadyReviewed  = errors.New("user already reviewed this book")
)

// Gate holds the pure eligibility predicates. It never mutates anything.
type Gate struct {
	bookRepo    BookRepo
	requestRepo RequestRepo
	txnRepo     TxnRepo
	reviewRepo  ReviewRepo
}

func New(bookRepo BookRepo, requestRepo RequestRepo, txnRepo TxnRepo, reviewRepo ReviewRepo) *Gate {
	return &Gate{
		bookRepo:    bookRepo,
		requestRepo: requestRepo,
		txnRepo:     txnRepo,
		reviewRepo:  reviewRepo,
	}
}

// CanRequest checks whether the user may submit a borrow request for the
// book. Availability is checked here for early feedback; approval re-checks
// it atomically through the ledger, so this is advisory, not load-bearing.
func (g *Gate) CanRequest(ctx context.Context, userID, bookID int) error {
	book, err := g.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return err
	}
	if book == nil || !book.IsActive {
		return ErrBookNotFound
	}
	if !book.IsAvailable() {
		return ErrBookUnavailable
	}

	exists, err := g.requestRepo.ExistsOpen(ctx, userID, bookID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateRequest
	}
	return nil
}

// CanReview checks whether the user may review the book: at least one
// RETURNED transaction for the pair and no live review yet.
func (g *Gate) CanReview(ctx context.Context, userID, bookID int) error {
	returned, err := g.txnRepo.FindReturned(ctx, userID, bookID)
	if err != nil {
		return err
	}
	if len(returned) == 0 {
		return ErrNotReturned
	}

	reviewed, err := g.reviewRepo.ExistsLive(ctx, userID, bookID)
	if err != nil {
		return err
	}
	if reviewed {
		return ErrAlreadyReviewed
	}
	return nil
}
