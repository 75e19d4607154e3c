package dto

import "time"

type CreateRequestDTO struct {
	BookID             int    `json:"book_id" validate:"required,gt=0" example:"12"`
	ExpectedReturnDate string `json:"expected_return_date" validate:"required,datetime=2006-01-02" example:"2026-09-15"`
	Note               string `json:"note" validate:"max=500"`
}

type BorrowRequestResponseDTO struct {
	ID                 int        `json:"id" example:"3"`
	BookID             int        `json:"book_id" example:"12"`
	RequestDate        time.Time  `json:"request_date"`
	ExpectedReturnDate string     `json:"expected_return_date" example:"2026-09-15"`
	Status             string     `json:"status" example:"PENDING"`
	Note               string     `json:"note,omitempty"`
	HandledAt          *time.Time `json:"handled_at,omitempty"`
}

type TransactionResponseDTO struct {
	ID             int        `json:"id" example:"7"`
	RequestID      int        `json:"request_id" example:"3"`
	BookID         int        `json:"book_id" example:"12"`
	BorrowedAt     time.Time  `json:"borrowed_at"`
	DueAt          time.Time  `json:"due_at"`
	ReturnedAt     *time.Time `json:"returned_at,omitempty"`
	Status         string     `json:"status" example:"BORROWING"`
	FineAmount     string     `json:"fine_amount,omitempty" example:"15000"`
	LateReturnDays int        `json:"late_return_days" example:"3"`
}

type SweepResponseDTO struct {
	Message string `json:"message"`
}
