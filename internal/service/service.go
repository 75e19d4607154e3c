package service

import (
	"github.com/tranvhq/golibrary/internal/config"
	"github.com/tranvhq/golibrary/internal/pg"
	"github.com/tranvhq/golibrary/internal/repo"
	"github.com/tranvhq/golibrary/internal/service/authservice"
	"github.com/tranvhq/golibrary/internal/service/borrowservice"
	"github.com/tranvhq/golibrary/internal/service/catalogservice"
	"github.com/tranvhq/golibrary/internal/service/eligibility"
	"github.com/tranvhq/golibrary/internal/service/ledgerservice"
	"github.com/tranvhq/golibrary/internal/service/loanservice"
	"github.com/tranvhq/golibrary/internal/service/reviewservice"

	pkgauth "github.com/tranvhq/golibrary/pkg/auth"
)

type Services struct {
	AuthService    *authservice.Service
	BorrowService  *borrowservice.Service
	LoanService    *loanservice.Service
	CatalogService *catalogservice.Service
	ReviewService  *reviewservice.Service
	Ledger         *ledgerservice.Service
	Gate           *eligibility.Gate
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, notifier borrowservice.Notifier) *Services {
	ledger := ledgerservice.New(repo.BookRepo)
	gate := eligibility.New(repo.BookRepo, repo.RequestRepo, repo.TxnRepo, repo.ReviewRepo)
	borrowService := borrowservice.New(repo.RequestRepo, repo.TxnRepo, ledger, gate, notifier, txManager, cfg.MaxLoanDays)
	loanService := loanservice.New(repo.TxnRepo, ledger, txManager, cfg.FineRatePerDay)
	catalogService := catalogservice.New(repo.BookRepo, repo.RequestRepo, repo.TxnRepo, repo.ReviewRepo)
	reviewService := reviewservice.New(repo.ReviewRepo, repo.TxnRepo, gate)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, pkgauth.NewJWTService(cfg.JWTSecret))

	return &Services{
		AuthService:    authService,
		BorrowService:  borrowService,
		LoanService:    loanService,
		CatalogService: catalogService,
		ReviewService:  reviewService,
		Ledger:         ledger,
		Gate:           gate,
	}
}
