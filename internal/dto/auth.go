package dto

type RegisterRequestDTO struct {
	Login       string `json:"login" validate:"required,min=3,max=50"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name" validate:"required,max=100"`
	StudentCode string `json:"student_code" validate:"required,alphanum,uppercase,max=20"`
	CardNumber  string `json:"card_number" validate:"required,numeric"`
	Email       string `json:"email" validate:"required,email"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
