package dto

type BookDTO struct {
	ID              int    `json:"id" example:"12"`
	Title           string `json:"title" example:"The Go Programming Language"`
	Author          string `json:"author" example:"Donovan, Kernighan"`
	Publisher       string `json:"publisher,omitempty"`
	PublishYear     int    `json:"publish_year,omitempty" example:"2015"`
	ISBN            string `json:"isbn,omitempty" example:"9780134190440"`
	Description     string `json:"description,omitempty"`
	CategoryID      int    `json:"category_id" example:"2"`
	TotalCopies     int    `json:"total_copies" example:"3"`
	AvailableCopies int    `json:"available_copies" example:"1"`
}

type UpsertBookDTO struct {
	Title       string `json:"title" validate:"required,max=200"`
	Author      string `json:"author" validate:"required,max=200"`
	Publisher   string `json:"publisher" validate:"max=200"`
	PublishYear int    `json:"publish_year" validate:"omitempty,gte=1900"`
	ISBN        string `json:"isbn" validate:"omitempty,isbn13"`
	Description string `json:"description"`
	CategoryID  int    `json:"category_id" validate:"required,gt=0"`
	TotalCopies int    `json:"total_copies" validate:"required,gte=0"`
	IsActive    *bool  `json:"is_active"`
}

type CategoryDTO struct {
	ID   int    `json:"id" example:"2"`
	Name string `json:"name" example:"Computer Science"`
}

type CreateCategoryDTO struct {
	Name string `json:"name" validate:"required,max=100"`
}

type StatsDTO struct {
	ActiveBooks     int `json:"active_books" example:"120"`
	PendingRequests int `json:"pending_requests" example:"4"`
	ActiveLoans     int `json:"active_loans" example:"17"`
	OverdueLoans    int `json:"overdue_loans" example:"2"`
	PendingReviews  int `json:"pending_reviews" example:"1"`
}
