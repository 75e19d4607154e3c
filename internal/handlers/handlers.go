package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/tranvhq/golibrary/docs"
	authhandlers "github.com/tranvhq/golibrary/internal/handlers/auth"
	bookhandlers "github.com/tranvhq/golibrary/internal/handlers/books"
	borrowhandlers "github.com/tranvhq/golibrary/internal/handlers/borrow"
	dashboardhandlers "github.com/tranvhq/golibrary/internal/handlers/dashboard"
	loanhandlers "github.com/tranvhq/golibrary/internal/handlers/loans"
	reviewhandlers "github.com/tranvhq/golibrary/internal/handlers/reviews"
	"github.com/tranvhq/golibrary/internal/service"
	pkgauth "github.com/tranvhq/golibrary/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BookHandler interface {
	GetBooks(w http.ResponseWriter, r *http.Request)
	GetBook(w http.ResponseWriter, r *http.Request)
	CreateBook(w http.ResponseWriter, r *http.Request)
	UpdateBook(w http.ResponseWriter, r *http.Request)
	GetCategories(w http.ResponseWriter, r *http.Request)
	CreateCategory(w http.ResponseWriter, r *http.Request)
}

type BorrowHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
	GetPendingRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type LoanHandler interface {
	GetMyLoans(w http.ResponseWriter, r *http.Request)
	RequestReturn(w http.ResponseWriter, r *http.Request)
	GetActiveLoans(w http.ResponseWriter, r *http.Request)
	ReturnLoan(w http.ResponseWriter, r *http.Request)
	SweepOverdue(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	CreateReview(w http.ResponseWriter, r *http.Request)
	GetBookReviews(w http.ResponseWriter, r *http.Request)
	GetPendingReviews(w http.ResponseWriter, r *http.Request)
	ModerateReview(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	BookHandler      BookHandler
	BorrowHandler    BorrowHandler
	LoanHandler      LoanHandler
	ReviewHandler    ReviewHandler
	DashboardHandler DashboardHandler

	jwtService pkgauth.JWTServiceInterface
}

func New(s *service.Services, jwtService pkgauth.JWTServiceInterface, sweeper loanhandlers.Sweeper) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		BookHandler:      bookhandlers.New(s.CatalogService),
		BorrowHandler:    borrowhandlers.New(s.BorrowService),
		LoanHandler:      loanhandlers.New(s.LoanService, sweeper),
		ReviewHandler:    reviewhandlers.New(s.ReviewService),
		DashboardHandler: dashboardhandlers.New(s.CatalogService),
		jwtService:       jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Get("/books", h.BookHandler.GetBooks)
		r.Get("/books/{id}", h.BookHandler.GetBook)
		r.Get("/books/{id}/reviews", h.ReviewHandler.GetBookReviews)
		r.Get("/categories", h.BookHandler.GetCategories)

		r.Group(func(r chi.Router) {
			r.Use(pkgauth.AuthMiddleware(h.jwtService))

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", h.BorrowHandler.CreateRequest)
				r.Get("/", h.BorrowHandler.GetMyRequests)
				r.Post("/{id}/cancel", h.BorrowHandler.CancelRequest)
			})
			r.Route("/loans", func(r chi.Router) {
				r.Get("/", h.LoanHandler.GetMyLoans)
				r.Post("/{id}/return-request", h.LoanHandler.RequestReturn)
			})
			r.Post("/reviews", h.ReviewHandler.CreateReview)

			r.Route("/admin", func(r chi.Router) {
				r.Use(pkgauth.RequireStaff)

				r.Get("/dashboard", h.DashboardHandler.GetStats)
				r.Post("/books", h.BookHandler.CreateBook)
				r.Put("/books/{id}", h.BookHandler.UpdateBook)
				r.Post("/categories", h.BookHandler.CreateCategory)
				r.Get("/requests", h.BorrowHandler.GetPendingRequests)
				r.Post("/requests/{id}/approve", h.BorrowHandler.ApproveRequest)
				r.Post("/requests/{id}/reject", h.BorrowHandler.RejectRequest)
				r.Get("/loans", h.LoanHandler.GetActiveLoans)
				r.Post("/loans/sweep", h.LoanHandler.SweepOverdue)
				r.Post("/loans/{id}/return", h.LoanHandler.ReturnLoan)
				r.Get("/reviews", h.ReviewHandler.GetPendingReviews)
				r.Post("/reviews/{id}/moderate", h.ReviewHandler.ModerateReview)
			})
		})
	})

	return r
}
