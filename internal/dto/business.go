package dto

import "time"

type BusinessResponseDTO struct {
	ID               int       `json:"id" example:"1"`
	OwnerID          int       `json:"owner_id" example:"2"`
	Name             string    `json:"name" example:"Corner Cafe"`
	Status           string    `json:"status" example:"ACTIVE"`
	Tier             string    `json:"tier" example:"FREE"`
	PointsMultiplier string    `json:"points_multiplier" example:"1"`
	BirthdayBonus    int       `json:"birthday_bonus" example:"0"`
	CreatedAt        time.Time `json:"created_at"`
}

type BoostRequestDTO struct {
	Enabled bool `json:"enabled"`
}

type BirthdayBonusRequestDTO struct {
	Points int `json:"points" validate:"gte=0" example:"50"`
}

type UpdateBusinessRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE BLOCKED PENDING" example:"ACTIVE"`
	Tier   string `json:"tier" validate:"omitempty,oneof=FREE PRO" example:"PRO"`
}

type CreateStaffRequestDTO struct {
	Login       string `json:"login" validate:"required,min=3,max=50" example:"waiter1"`
	Password    string `json:"password" validate:"required,min=8,max=72" example:"password123"`
	DisplayName string `json:"display_name" validate:"max=100" example:"Bob"`
}

type StaffResponseDTO struct {
	ID          int       `json:"id" example:"5"`
	Login       string    `json:"login" example:"waiter1"`
	DisplayName string    `json:"display_name" example:"Bob"`
	CreatedAt   time.Time `json:"created_at"`
}

type SystemLogResponseDTO struct {
	ID        int64     `json:"id" example:"10"`
	Level     string    `json:"level" example:"WARN"`
	Message   string    `json:"message" example:"security: code presented to another business"`
	CreatedAt time.Time `json:"created_at"`
}
