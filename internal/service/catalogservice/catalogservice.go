package catalogservice

import (
	"context"
	"errors"

	"github.com/tranvhq/golibrary/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=catalogservice.go -destination=mock_catalogservice.go -package=catalogservice

// BookRepo covers catalog reads and writes. Copy counts are still ledger
// territory: Create seeds available = total, Update only shifts both
// together.
type BookRepo interface {
	GetByID(ctx context.Context, bookID int) (*domain.Book, error)
	FindActive(ctx context.Context) ([]domain.Book, error)
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	CountActive(ctx context.Context) (int, error)
}

type RequestRepo interface {
	CountPending(ctx context.Context) (int, error)
}

type TxnRepo interface {
	CountByStatus(ctx context.Context, statuses ...string) (int, error)
}

type ReviewRepo interface {
	CountPending(ctx context.Context) (int, error)
}

var (
	ErrNotFound     = errors.New("book not found")
	ErrUnauthorized = errors.New("actor lacks required capability")
)

type Stats struct {
	ActiveBooks     int
	PendingRequests int
	ActiveLoans     int
	OverdueLoans    int
	PendingReviews  int
}

type Service struct {
	bookRepo    BookRepo
	requestRepo RequestRepo
	txnRepo     TxnRepo
	reviewRepo  ReviewRepo
}

func New(bookRepo BookRepo, requestRepo RequestRepo, txnRepo TxnRepo, reviewRepo ReviewRepo) *Service {
	return &Service{
		bookRepo:    bookRepo,
		requestRepo: requestRepo,
		txnRepo:     txnRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *Service) GetBooks(ctx context.Context) ([]domain.Book, error) {
	return s.bookRepo.FindActive(ctx)
}

func (s *Service) GetBook(ctx context.Context, bookID int) (*domain.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrNotFound
	}
	return book, nil
}

func (s *Service) CreateBook(ctx context.Context, book *domain.Book, actor domain.Actor) (*domain.Book, error) {
	if !actor.HasStaffCapability() {
		return nil, ErrUnauthorized
	}
	created, err := s.bookRepo.Create(ctx, book)
	if err != nil {
		zap.L().Error("can't create book", zap.Error(err))
		return nil, err
	}
	zap.L().Info("book created", zap.Int("bookID", created.ID), zap.String("title", created.Title))
	return created, nil
}

func (s *Service) UpdateBook(ctx context.Context, book *domain.Book, actor domain.Actor) (*domain.Book, error) {
	if !actor.HasStaffCapability() {
		return nil, ErrUnauthorized
	}
	existing, err := s.bookRepo.GetByID(ctx, book.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	return s.bookRepo.Update(ctx, book)
}

func (s *Service) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return s.bookRepo.FindCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, name string, actor domain.Actor) (*domain.Category, error) {
	if !actor.HasStaffCapability() {
		return nil, ErrUnauthorized
	}
	return s.bookRepo.CreateCategory(ctx, name)
}

// GetStats aggregates the staff dashboard counters.
func (s *Service) GetStats(ctx context.Context, actor domain.Actor) (*Stats, error) {
	if !actor.HasStaffCapability() {
		return nil, ErrUnauthorized
	}

	stats := &Stats{}
	var err error
	if stats.ActiveBooks, err = s.bookRepo.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = s.requestRepo.CountPending(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveLoans, err = s.txnRepo.CountByStatus(ctx,
		domain.TxnStatusBorrowing, domain.TxnStatusOverdue, domain.TxnStatusReturnPending); err != nil {
		return nil, err
	}
	if stats.OverdueLoans, err = s.txnRepo.CountByStatus(ctx, domain.TxnStatusOverdue); err != nil {
		return nil, err
	}
	if stats.PendingReviews, err = s.reviewRepo.CountPending(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}
