package borrowservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/pg"
	requestrepo "github.com/tranvhq/golibrary/internal/repo/request-repo"
	"github.com/tranvhq/golibrary/internal/service/eligibility"
	"go.uber.org/zap"
)

// eligibilityReasons are gate rejections turned into ErrIneligibleRequest;
// anything else from the gate is an internal error.
var eligibilityReasons = []error{
	eligibility.ErrBookNotFound,
	eligibility.ErrBookUnavailable,
	eligibility.ErrDuplicateRequest,
}

//go:generate mockgen -source=borrowservice.go -destination=mock_borrowservice.go -package=borrowservice

type RequestRepo interface {
	Create(ctx context.Context, req *domain.BorrowRequest) (*domain.BorrowRequest, error)
	GetByID(ctx context.Context, requestID int) (*domain.BorrowRequest, error)
	GetByIDForUpdate(ctx context.Context, requestID int) (*domain.BorrowRequest, error)
	UpdateStatus(ctx context.Context, requestID int, status string, handledBy *int, handledAt *time.Time) error
	FindByUserID(ctx context.Context, userID int) ([]domain.BorrowRequest, error)
	FindPending(ctx context.Context) ([]domain.BorrowRequest, error)
}

type TxnRepo interface {
	Create(ctx context.Context, txn *domain.BorrowTransaction) (*domain.BorrowTransaction, error)
}

// Ledger is the only path to a book's copy counts.
type Ledger interface {
	Reserve(ctx context.Context, bookID int) error
}

type Gate interface {
	CanRequest(ctx context.Context, userID, bookID int) error
}

// Notifier delivers request-handled events. Delivery is fire-and-forget:
// implementations must never fail the state transition.
type Notifier interface {
	RequestHandled(ctx context.Context, req *domain.BorrowRequest, status string)
}

var (
	ErrNotFound          = errors.New("borrow request not found")
	ErrUnauthorized      = errors.New("actor lacks required capability")
	ErrInvalidTransition = errors.New("operation not allowed in current status")
	ErrIneligibleRequest = errors.New("request is not eligible")
)

// Service is the borrow request workflow: PENDING -> APPROVED | REJECTED |
// CANCELLED, with transaction creation as the single APPROVED side effect.
type Service struct {
	requestRepo RequestRepo
	txnRepo     TxnRepo
	ledger      Ledger
	gate        Gate
	notifier    Notifier
	txManager   pg.TXManager
	maxLoanDays int
	now         func() time.Time
}

func New(requestRepo RequestRepo, txnRepo TxnRepo, ledger Ledger, gate Gate, notifier Notifier, txManager pg.TXManager, maxLoanDays int) *Service {
	return &Service{
		requestRepo: requestRepo,
		txnRepo:     txnRepo,
		ledger:      ledger,
		gate:        gate,
		notifier:    notifier,
		txManager:   txManager,
		maxLoanDays: maxLoanDays,
		now:         time.Now,
	}
}

// Create validates eligibility and the requested return date, then inserts a
// PENDING request.
func (s *Service) Create(ctx context.Context, userID, bookID int, expectedReturnDate time.Time, note string) (*domain.BorrowRequest, error) {
	today := dateOf(s.now())
	wanted := dateOf(expectedReturnDate)
	if wanted.Before(today) || wanted.After(today.AddDate(0, 0, s.maxLoanDays)) {
		return nil, fmt.Errorf("%w: expected return date must be within %d days from today", ErrIneligibleRequest, s.maxLoanDays)
	}

	if err := s.gate.CanRequest(ctx, userID, bookID); err != nil {
		if isEligibilityReason(err) {
			return nil, fmt.Errorf("%w: %s", ErrIneligibleRequest, err)
		}
		return nil, err
	}

	req, err := s.requestRepo.Create(ctx, &domain.BorrowRequest{
		UserID:             userID,
		BookID:             bookID,
		ExpectedReturnDate: wanted,
		Note:               note,
	})
	// The gate's read can lose a race to a concurrent create; the unique
	// open-request index is the authoritative check.
	if errors.Is(err, requestrepo.ErrDuplicateOpen) {
		return nil, fmt.Errorf("%w: %s", ErrIneligibleRequest, err)
	}
	if err != nil {
		zap.L().Error("can't create borrow request", zap.Error(err))
		return nil, err
	}
	zap.L().Info("borrow request created",
		zap.Int("requestID", req.ID), zap.Int("userID", userID), zap.Int("bookID", bookID))
	return req, nil
}

// Cancel moves a PENDING request to CANCELLED. Only the requester may
// cancel; the row lock closes the race against a concurrent approval.
func (s *Service) Cancel(ctx context.Context, requestID int, actor domain.Actor) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.requestRepo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrNotFound
		}
		if req.UserID != actor.ID {
			return ErrUnauthorized
		}
		if !domain.CanRequestTransition(req.Status, domain.RequestStatusCancelled) {
			return ErrInvalidTransition
		}
		return s.requestRepo.UpdateStatus(ctx, requestID, domain.RequestStatusCancelled, nil, nil)
	})
}

// Approve stamps the request APPROVED, reserves a copy through the ledger
// and creates the paired transaction — all inside one database transaction,
// so a failure at any step leaves the request PENDING and the copy
// unreserved.
func (s *Service) Approve(ctx context.Context, requestID int, actor domain.Actor) (*domain.BorrowTransaction, error) {
	if !actor.HasStaffCapability() {
		return nil, ErrUnauthorized
	}

	var txn *domain.BorrowTransaction
	var req *domain.BorrowRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.requestRepo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrNotFound
		}
		if !domain.CanRequestTransition(req.Status, domain.RequestStatusApproved) {
			return ErrInvalidTransition
		}

		if err := s.ledger.Reserve(ctx, req.BookID); err != nil {
			return err
		}

		now := s.now()
		if err := s.requestRepo.UpdateStatus(ctx, requestID, domain.RequestStatusApproved, &actor.ID, &now); err != nil {
			return err
		}

		// Loan duration is what the user asked for, re-anchored to the
		// approval moment.
		loanDays := daysBetween(dateOf(req.RequestDate), dateOf(req.ExpectedReturnDate))
		txn, err = s.txnRepo.Create(ctx, &domain.BorrowTransaction{
			RequestID:  requestID,
			UserID:     req.UserID,
			BookID:     req.BookID,
			BorrowedAt: now,
			DueAt:      now.AddDate(0, 0, loanDays),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	req.Status = domain.RequestStatusApproved
	s.notifier.RequestHandled(ctx, req, domain.RequestStatusApproved)
	zap.L().Info("borrow request approved",
		zap.Int("requestID", requestID), zap.Int("transactionID", txn.ID), zap.Int("handledBy", actor.ID))
	return txn, nil
}

// Reject stamps the request REJECTED. No ledger effect.
func (s *Service) Reject(ctx context.Context, requestID int, actor domain.Actor) error {
	if !actor.HasStaffCapability() {
		return ErrUnauthorized
	}

	var req *domain.BorrowRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.requestRepo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrNotFound
		}
		if !domain.CanRequestTransition(req.Status, domain.RequestStatusRejected) {
			return ErrInvalidTransition
		}
		now := s.now()
		return s.requestRepo.UpdateStatus(ctx, requestID, domain.RequestStatusRejected, &actor.ID, &now)
	})
	if err != nil {
		return err
	}

	req.Status = domain.RequestStatusRejected
	s.notifier.RequestHandled(ctx, req, domain.RequestStatusRejected)
	zap.L().Info("borrow request rejected", zap.Int("requestID", requestID), zap.Int("handledBy", actor.ID))
	return nil
}

func (s *Service) GetMyRequests(ctx context.Context, userID int) ([]domain.BorrowRequest, error) {
	return s.requestRepo.FindByUserID(ctx, userID)
}

func (s *Service) GetPendingRequests(ctx context.Context, actor domain.Actor) ([]domain.BorrowRequest, error) {
	if !actor.HasStaffCapability() {
		return nil, ErrUnauthorized
	}
	return s.requestRepo.FindPending(ctx)
}

func isEligibilityReason(err error) bool {
	for _, reason := range eligibilityReasons {
		if errors.Is(err, reason) {
			return true
		}
	}
	return false
}

// dateOf pins a timestamp to its UTC calendar date. Request timestamps
// carry the server zone while DATE columns scan as UTC midnight; without a
// common zone the day arithmetic below comes up short.
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
