package reviewservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/service/eligibility"
	"go.uber.org/zap"
)

//go:generate mockgen -source=reviewservice.go -destination=mock_reviewservice.go -package=reviewservice

type ReviewRepo interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByID(ctx context.Context, reviewID int) (*domain.Review, error)
	Moderate(ctx context.Context, reviewID int, status string, moderatedBy int, moderatedAt time.Time) (bool, error)
	FindApprovedByBookID(ctx context.Context, bookID int) ([]domain.Review, error)
	FindPending(ctx context.Context) ([]domain.Review, error)
}

type TxnRepo interface {
	FindReturned(ctx context.Context, userID, bookID int) ([]domain.BorrowTransaction, error)
}

type Gate interface {
	CanReview(ctx context.Context, userID, bookID int) error
}

var (
	ErrNotFound          = errors.New("review not found")
	ErrUnauthorized      = errors.New("actor lacks required capability")
	ErrInvalidTransition = errors.New("review is not pending")
	ErrIneligibleReview  = errors.New("review is not eligible")
)

type Service struct {
	reviewRepo ReviewRepo
	txnRepo    TxnRepo
	gate       Gate
	now        func() time.Time
}

func New(reviewRepo ReviewRepo, txnRepo TxnRepo, gate Gate) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		txnRepo:    txnRepo,
		gate:       gate,
		now:        time.Now,
	}
}

// Create inserts a PENDING review, linked to the most recent RETURNED
// transaction for the pair. Only users who returned the book may review it.
func (s *Service) Create(ctx context.Context, userID, bookID, rating int, content string) (*domain.Review, error) {
	if err := s.gate.CanReview(ctx, userID, bookID); err != nil {
		if errors.Is(err, eligibility.ErrNotReturned) || errors.Is(err, eligibility.ErrAlreadyReviewed) {
			return nil, fmt.Errorf("%w: %s", ErrIneligibleReview, err)
		}
		return nil, err
	}

	returned, err := s.txnRepo.FindReturned(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if len(returned) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrIneligibleReview, eligibility.ErrNotReturned)
	}

	review, err := s.reviewRepo.Create(ctx, &domain.Review{
		UserID:        userID,
		BookID:        bookID,
		TransactionID: returned[0].ID,
		Rating:        rating,
		Content:       content,
	})
	if err != nil {
		zap.L().Error("can't create review", zap.Error(err))
		return nil, err
	}
	return review, nil
}

func (s *Service) Moderate(ctx context.Context, reviewID int, approve bool, actor domain.Actor) error {
	if !actor.HasStaffCapability() {
		return ErrUnauthorized
	}

	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrNotFound
	}

	status := domain.ReviewStatusRejected
	if approve {
		status = domain.ReviewStatusApproved
	}
	ok, err := s.reviewRepo.Moderate(ctx, reviewID, status, actor.ID, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidTransition
	}
	return nil
}

func (s *Service) GetBookReviews(ctx context.Context, bookID int) ([]domain.Review, error) {
	return s.reviewRepo.FindApprovedByBookID(ctx, bookID)
}

func (s *Service) GetPendingReviews(ctx context.Context, actor domain.Actor) ([]domain.Review, error) {
	if !actor.HasStaffCapability() {
		return nil, ErrUnauthorized
	}
	return s.reviewRepo.FindPending(ctx)
}
