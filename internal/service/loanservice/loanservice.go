package loanservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/pg"
	"github.com/tranvhq/golibrary/internal/service/ledgerservice"
	"go.uber.org/zap"
)

//go:generate mockgen -source=loanservice.go -destination=mock_loanservice.go -package=loanservice

type TxnRepo interface {
	GetByID(ctx context.Context, txnID int) (*domain.BorrowTransaction, error)
	GetByIDForUpdate(ctx context.Context, txnID int) (*domain.BorrowTransaction, error)
	MarkReturned(ctx context.Context, txnID int, returnedAt time.Time, lateDays int, fine decimal.Decimal) (bool, error)
	MarkOverdue(ctx context.Context, txnID int, now time.Time) (bool, error)
	MarkReturnPending(ctx context.Context, txnID int) (bool, error)
	FindActive(ctx context.Context) ([]domain.BorrowTransaction, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.BorrowTransaction, error)
	FindReturned(ctx context.Context, userID, bookID int) ([]domain.BorrowTransaction, error)
}

type Ledger interface {
	Release(ctx context.Context, bookID int) error
}

var (
	ErrNotFound          = errors.New("borrow transaction not found")
	ErrUnauthorized      = errors.New("actor lacks required capability")
	ErrInvalidTransition = errors.New("operation not allowed in current status")
)

// Service is the borrow transaction lifecycle: BORROWING ->
// {OVERDUE, RETURN_PENDING} -> RETURNED, with fine computation at return.
type Service struct {
	txnRepo   TxnRepo
	ledger    Ledger
	txManager pg.TXManager
	fineRate  decimal.Decimal
	now       func() time.Time
}

func New(txnRepo TxnRepo, ledger Ledger, txManager pg.TXManager, fineRatePerDay int64) *Service {
	return &Service{
		txnRepo:   txnRepo,
		ledger:    ledger,
		txManager: txManager,
		fineRate:  decimal.NewFromInt(fineRatePerDay),
		now:       time.Now,
	}
}

// Return finalizes a loan: stamps RETURNED, computes the fine and releases
// the copy back to the ledger in one database transaction. A clamped
// release is logged as an inconsistency but does not undo the return.
func (s *Service) Return(ctx context.Context, txnID int, actor domain.Actor) (*domain.BorrowTransaction, error) {
	if !actor.HasStaffCapability() {
		return nil, ErrUnauthorized
	}

	var txn *domain.BorrowTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		txn, err = s.txnRepo.GetByIDForUpdate(ctx, txnID)
		if err != nil {
			return err
		}
		if txn == nil {
			return ErrNotFound
		}
		if !domain.CanTxnTransition(txn.Status, domain.TxnStatusReturned) {
			return ErrInvalidTransition
		}

		returnedAt := s.now()
		lateDays, fine := s.computeFine(txn.DueAt, returnedAt)

		ok, err := s.txnRepo.MarkReturned(ctx, txnID, returnedAt, lateDays, fine)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidTransition
		}

		txn.Status = domain.TxnStatusReturned
		txn.ReturnedAt = &returnedAt
		txn.LateReturnDays = lateDays
		txn.FineAmount = decimal.NewNullDecimal(fine)

		if err := s.ledger.Release(ctx, txn.BookID); err != nil {
			if errors.Is(err, ledgerservice.ErrInvariantViolation) {
				// Clamp already logged by the ledger; the return stands.
				return nil
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("book returned",
		zap.Int("transactionID", txnID),
		zap.Int("lateReturnDays", txn.LateReturnDays),
		zap.String("fineAmount", txn.FineAmount.Decimal.String()),
	)
	return txn, nil
}

// computeFine counts whole days past due (partial days are not billed) and
// multiplies by the configured daily rate.
func (s *Service) computeFine(dueAt, returnedAt time.Time) (int, decimal.Decimal) {
	if !returnedAt.After(dueAt) {
		return 0, decimal.Zero
	}
	lateDays := int(returnedAt.Sub(dueAt).Hours() / 24)
	return lateDays, s.fineRate.Mul(decimal.NewFromInt(int64(lateDays)))
}

// MarkOverdue flips BORROWING to OVERDUE once the due date has passed.
// Idempotent: a transaction already OVERDUE or RETURNED is left alone.
func (s *Service) MarkOverdue(ctx context.Context, txnID int) error {
	txn, err := s.txnRepo.GetByID(ctx, txnID)
	if err != nil {
		return err
	}
	if txn == nil {
		return ErrNotFound
	}
	_, err = s.txnRepo.MarkOverdue(ctx, txnID, s.now())
	return err
}

// RequestReturn lets the borrower flag an active loan as RETURN_PENDING so
// staff can confirm the physical return.
func (s *Service) RequestReturn(ctx context.Context, txnID int, actor domain.Actor) error {
	txn, err := s.txnRepo.GetByID(ctx, txnID)
	if err != nil {
		return err
	}
	if txn == nil {
		return ErrNotFound
	}
	if txn.UserID != actor.ID {
		return ErrUnauthorized
	}
	ok, err := s.txnRepo.MarkReturnPending(ctx, txnID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidTransition
	}
	return nil
}

func (s *Service) GetActiveTransactions(ctx context.Context, actor domain.Actor) ([]domain.BorrowTransaction, error) {
	if !actor.HasStaffCapability() {
		return nil, ErrUnauthorized
	}
	return s.txnRepo.FindActive(ctx)
}

func (s *Service) GetMyLoans(ctx context.Context, userID int) ([]domain.BorrowTransaction, error) {
	return s.txnRepo.FindByUserID(ctx, userID)
}

// GetReturnedTransactions exposes the RETURNED set for a (user, book) pair
// to the review collaborator.
func (s *Service) GetReturnedTransactions(ctx context.Context, userID, bookID int) ([]domain.BorrowTransaction, error) {
	return s.txnRepo.FindReturned(ctx, userID, bookID)
}
