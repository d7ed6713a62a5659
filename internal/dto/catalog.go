package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProgramRequestDTO struct {
	Name              string           `json:"name" validate:"required,max=100" example:"Free coffee"`
	RewardDescription string           `json:"reward_description" validate:"required,max=255" example:"One cappuccino"`
	PointsThreshold   int              `json:"points_threshold" validate:"gt=0" example:"100"`
	PointsPerCurrency *decimal.Decimal `json:"points_per_currency,omitempty" swaggertype:"string" example:"1"`
	Active            *bool            `json:"active,omitempty" example:"true"`
}

type ProgramResponseDTO struct {
	ID                int       `json:"id" example:"1"`
	Name              string    `json:"name" example:"Free coffee"`
	RewardDescription string    `json:"reward_description" example:"One cappuccino"`
	PointsThreshold   int       `json:"points_threshold" example:"100"`
	PointsPerCurrency string    `json:"points_per_currency" example:"1"`
	Active            bool      `json:"active" example:"true"`
	CreatedAt         time.Time `json:"created_at"`
}

type ProductRequestDTO struct {
	Name          string          `json:"name" validate:"required,max=100" example:"Cappuccino"`
	Price         decimal.Decimal `json:"price" swaggertype:"string" example:"3.50"`
	PointsPerUnit int             `json:"points_per_unit" validate:"gte=0" example:"0"`
}

type ProductResponseDTO struct {
	ID            int       `json:"id" example:"1"`
	Name          string    `json:"name" example:"Cappuccino"`
	Price         string    `json:"price" example:"3.5"`
	PointsPerUnit int       `json:"points_per_unit" example:"0"`
	CreatedAt     time.Time `json:"created_at"`
}
