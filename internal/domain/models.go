package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	StudentCode  string    `db:"student_code"`
	CardNumber   string    `db:"card_number"`
	Email        string    `db:"email"`
	IsStaff      bool      `db:"is_staff"`
	CreatedAt    time.Time `db:"created_at"`
}

type Category struct {
	ID       int    `db:"id"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
}

// Book copy counts are owned by the ledger: nothing outside the ledger's
// Reserve/Release may write available_copies.
type Book struct {
	ID              int       `db:"id"`
	Title           string    `db:"title"`
	Author          string    `db:"author"`
	Publisher       string    `db:"publisher"`
	PublishYear     int       `db:"publish_year"`
	ISBN            string    `db:"isbn"`
	Description     string    `db:"description"`
	CategoryID      int       `db:"category_id"`
	TotalCopies     int       `db:"total_copies"`
	AvailableCopies int       `db:"available_copies"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (b *Book) IsAvailable() bool {
	return b.IsActive && b.AvailableCopies > 0
}

type BorrowRequest struct {
	ID                 int        `db:"id"`
	UserID             int        `db:"user_id"`
	BookID             int        `db:"book_id"`
	RequestDate        time.Time  `db:"request_date"`
	ExpectedReturnDate time.Time  `db:"expected_return_date"`
	Status             string     `db:"status"`
	Note               string     `db:"note"`
	HandledBy          *int       `db:"handled_by"`
	HandledAt          *time.Time `db:"handled_at"`
}

type BorrowTransaction struct {
	ID             int                 `db:"id"`
	RequestID      int                 `db:"request_id"`
	UserID         int                 `db:"user_id"`
	BookID         int                 `db:"book_id"`
	BorrowedAt     time.Time           `db:"borrowed_at"`
	DueAt          time.Time           `db:"due_at"`
	ReturnedAt     *time.Time          `db:"returned_at"`
	Status         string              `db:"status"`
	FineAmount     decimal.NullDecimal `db:"fine_amount"`
	LateReturnDays int                 `db:"late_return_days"`
}

type Review struct {
	ID            int        `db:"id"`
	UserID        int        `db:"user_id"`
	BookID        int        `db:"book_id"`
	TransactionID int        `db:"transaction_id"`
	Rating        int        `db:"rating"`
	Content       string     `db:"content"`
	Status        string     `db:"status"`
	ModeratedBy   *int       `db:"moderated_by"`
	ModeratedAt   *time.Time `db:"moderated_at"`
	CreatedAt     time.Time  `db:"created_at"`
}
