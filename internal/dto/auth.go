package dto

type RegisterRequestDTO struct {
	Login        string `json:"login" validate:"required,min=3,max=50" example:"ann"`
	Password     string `json:"password" validate:"required,min=8,max=72" example:"password123"`
	Role         string `json:"role" validate:"required,oneof=CLIENT OWNER" example:"CLIENT"`
	DisplayName  string `json:"display_name" validate:"max=100" example:"Ann"`
	BusinessName string `json:"business_name" validate:"required_if=Role OWNER,max=100" example:"Corner Cafe"`
	BirthDate    string `json:"birth_date" validate:"omitempty,datetime=2006-01-02" example:"1995-03-01"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	Role    string `json:"role" example:"CLIENT"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	Role    string `json:"role" example:"OWNER"`
}
