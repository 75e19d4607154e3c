package overdue

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/tranvhq/golibrary/internal/config"
	"github.com/tranvhq/golibrary/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=scanner.go -destination=mock_scanner.go -package=overdue

// TxnRepo is the slice of the transaction repository the scanner sweeps
// through. MarkOverdue carries its own status guard, so losing a race
// against a concurrent return is a harmless no-op.
type TxnRepo interface {
	FindDueForSweep(ctx context.Context, now time.Time, limit uint32) ([]domain.BorrowTransaction, error)
	MarkOverdue(ctx context.Context, txnID int, now time.Time) (bool, error)
}

var sweeping sync.Map

// Scanner periodically reclassifies BORROWING transactions past their due
// date as OVERDUE.
type Scanner struct {
	spec       string
	txnRepo    TxnRepo
	limit      uint32
	workerPool WorkerPoolI
	cron       *cron.Cron
	now        func() time.Time
}

func New(cfg *config.Config, txnRepo TxnRepo) *Scanner {
	return &Scanner{
		spec:       cfg.OverdueSweep,
		txnRepo:    txnRepo,
		limit:      1000,
		workerPool: NewWorkerPool(10),
		cron:       cron.New(),
		now:        time.Now,
	}
}

func (s *Scanner) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.Sweep(ctx) }); err != nil {
		return err
	}
	s.cron.Start()
	zap.L().Info("overdue scanner started", zap.String("spec", s.spec))

	go func() {
		<-ctx.Done()
		zap.L().Info("Context canceled, stopping overdue scanner")
		<-s.cron.Stop().Done()
		s.workerPool.Close()
	}()
	return nil
}

// Sweep marks every due BORROWING transaction as OVERDUE and reports how
// many it changed. Safe to run repeatedly and concurrently with returns.
func (s *Scanner) Sweep(ctx context.Context) (int, error) {
	now := s.now()
	txns, err := s.txnRepo.FindDueForSweep(ctx, now, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch transactions for overdue sweep", zap.Error(err))
		return 0, err
	}

	var marked atomic.Int64
	var g errgroup.Group
	for _, txn := range txns {
		txn := txn

		if _, loaded := sweeping.LoadOrStore(txn.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			done := make(chan struct{})
			err := s.workerPool.AddTask(ctx, func() error {
				defer close(done)
				defer sweeping.Delete(txn.ID)
				changed, err := s.markOverdue(ctx, txn, now)
				if changed {
					marked.Add(1)
				}
				return err
			})
			if err != nil {
				sweeping.Delete(txn.ID)
				return err
			}
			<-done
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping overdue transactions", zap.Error(err))
		return int(marked.Load()), err
	}
	return int(marked.Load()), nil
}

func (s *Scanner) markOverdue(ctx context.Context, txn domain.BorrowTransaction, now time.Time) (bool, error) {
	changed, err := s.txnRepo.MarkOverdue(ctx, txn.ID, now)
	if err != nil {
		return false, err
	}
	if changed {
		zap.L().Info("transaction marked overdue",
			zap.Int("transactionID", txn.ID), zap.Time("dueAt", txn.DueAt))
	}
	return changed, nil
}
