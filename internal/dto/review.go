package dto

import "time"

type CreateReviewDTO struct {
	BookID  int    `json:"book_id" validate:"required,gt=0" example:"12"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5" example:"4"`
	Content string `json:"content" validate:"required,max=2000"`
}

type ReviewDTO struct {
	ID        int       `json:"id" example:"5"`
	BookID    int       `json:"book_id" example:"12"`
	Rating    int       `json:"rating" example:"4"`
	Content   string    `json:"content"`
	Status    string    `json:"status" example:"APPROVED"`
	CreatedAt time.Time `json:"created_at"`
}

type ModerateReviewDTO struct {
	Approve bool `json:"approve" example:"true"`
}
