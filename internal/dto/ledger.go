package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type LineItemDTO struct {
	ProductID *int            `json:"product_id,omitempty" example:"1"`
	Name      string          `json:"name" validate:"required" example:"Cappuccino"`
	Quantity  int             `json:"quantity" validate:"gt=0" example:"2"`
	Price     decimal.Decimal `json:"price" swaggertype:"string" example:"3.50"`
}

type IssueCodeRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"12.40"`
	Items  []LineItemDTO   `json:"items" validate:"dive"`
}

type IssueCodeResponseDTO struct {
	PurchaseID    string    `json:"purchase_id" example:"5b0c6a3e-0a56-4c4f-9a2a-1f3c1f0c9e11"`
	Payload       string    `json:"payload"`
	PointsAwarded int       `json:"points_awarded" example:"12"`
	ExpiresAt     time.Time `json:"expires_at"`
}

type ScanRequestDTO struct {
	Code string `json:"code" validate:"required"`
}

type ScanResponseDTO struct {
	Points int `json:"points" example:"12"`
}

type ClaimRequestDTO struct {
	ProgramID int `json:"program_id" validate:"gt=0" example:"1"`
}

type ClaimResponseDTO struct {
	Ticket    string    `json:"ticket" example:"4111111111111111"`
	ExpiresAt time.Time `json:"expires_at"`
}

type RedeemRequestDTO struct {
	Ticket string `json:"ticket" validate:"required" example:"4111111111111111"`
}

type RedeemResponseDTO struct {
	Ticket  string `json:"ticket" example:"4111111111111111"`
	Reward  string `json:"reward" example:"One cappuccino"`
	Program string `json:"program" example:"Free coffee"`
	Client  string `json:"client" example:"Ann"`
}

type TicketStatusResponseDTO struct {
	Ticket  string `json:"ticket" example:"4111111111111111"`
	Used    bool   `json:"used"`
	Expired bool   `json:"expired"`
}

type BalanceResponseDTO struct {
	ProgramID         int       `json:"program_id" example:"1"`
	ProgramName       string    `json:"program_name" example:"Free coffee"`
	RewardDescription string    `json:"reward_description" example:"One cappuccino"`
	BusinessID        int       `json:"business_id" example:"1"`
	BusinessName      string    `json:"business_name" example:"Corner Cafe"`
	PointsThreshold   int       `json:"points_threshold" example:"100"`
	PointsAccumulated int       `json:"points_accumulated" example:"40"`
	UpdatedAt         time.Time `json:"updated_at"`
}
