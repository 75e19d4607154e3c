package repo

import (
	"github.com/tranvhq/golibrary/internal/pg"
	bookrepo "github.com/tranvhq/golibrary/internal/repo/book-repo"
	requestrepo "github.com/tranvhq/golibrary/internal/repo/request-repo"
	reviewrepo "github.com/tranvhq/golibrary/internal/repo/review-repo"
	transactionrepo "github.com/tranvhq/golibrary/internal/repo/transaction-repo"
	userrepo "github.com/tranvhq/golibrary/internal/repo/user-repo"
)

type Repositories struct {
	BookRepo    *bookrepo.Repository
	RequestRepo *requestrepo.Repository
	TxnRepo     *transactionrepo.Repository
	UserRepo    *userrepo.Repository
	ReviewRepo  *reviewrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		BookRepo:    bookrepo.New(conn, txManager),
		RequestRepo: requestrepo.New(conn),
		TxnRepo:     transactionrepo.New(conn),
		UserRepo:    userrepo.New(conn),
		ReviewRepo:  reviewrepo.New(conn),
	}
}
