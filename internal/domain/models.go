package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleOwner  Role = "OWNER"
	RoleWaiter Role = "WAITER"
	RoleClient Role = "CLIENT"
)

type BusinessStatus string

const (
	BusinessActive  BusinessStatus = "ACTIVE"
	BusinessBlocked BusinessStatus = "BLOCKED"
	BusinessPending BusinessStatus = "PENDING"
)

const (
	TierFree = "FREE"
	TierPro  = "PRO"
)

type LogLevel string

const (
	LogInfo    LogLevel = "INFO"
	LogSuccess LogLevel = "SUCCESS"
	LogWarn    LogLevel = "WARN"
	LogError   LogLevel = "ERROR"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	DisplayName  string    `db:"display_name"`
	EmployerID   *int      `db:"employer_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type Business struct {
	ID               int             `db:"id"`
	OwnerID          int             `db:"owner_id"`
	Name             string          `db:"name"`
	Status           BusinessStatus  `db:"status"`
	Tier             string          `db:"tier"`
	PointsMultiplier decimal.Decimal `db:"points_multiplier"`
	BirthdayBonus    int             `db:"birthday_bonus"`
	CreatedAt        time.Time       `db:"created_at"`
}

type LoyaltyProgram struct {
	ID                int             `db:"id"`
	BusinessID        int             `db:"business_id"`
	Name              string          `db:"name"`
	RewardDescription string          `db:"reward_description"`
	PointsThreshold   int             `db:"points_threshold"`
	PointsPerCurrency decimal.Decimal `db:"points_per_currency"`
	Active            bool            `db:"active"`
	CreatedAt         time.Time       `db:"created_at"`
}

type Product struct {
	ID            int             `db:"id"`
	BusinessID    int             `db:"business_id"`
	Name          string          `db:"name"`
	Price         decimal.Decimal `db:"price"`
	PointsPerUnit int             `db:"points_per_unit"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Client struct {
	ID          int        `db:"id"`
	UserID      int        `db:"user_id"`
	DisplayName string     `db:"display_name"`
	BirthDate   *time.Time `db:"birth_date"`
	CreatedAt   time.Time  `db:"created_at"`
}

type ClientProgress struct {
	ID                int       `db:"id"`
	ClientID          int       `db:"client_id"`
	ProgramID         int       `db:"program_id"`
	PointsAccumulated int       `db:"points_accumulated"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// LineItem is informational only; it never feeds the points calculation.
type LineItem struct {
	ProductID *int            `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type Purchase struct {
	ID            string          `db:"id"`
	BusinessID    int             `db:"business_id"`
	WaiterID      int             `db:"waiter_id"`
	ClientID      *int            `db:"client_id"`
	Amount        decimal.Decimal `db:"amount"`
	PointsAwarded int             `db:"points_awarded"`
	SecurityToken string          `db:"security_token"`
	Items         []LineItem      `db:"items"`
	ExpiresAt     time.Time       `db:"expires_at"`
	Redeemed      bool            `db:"redeemed"`
	CreatedAt     time.Time       `db:"created_at"`
}

type RedemptionTicket struct {
	ID         string     `db:"id"`
	ClientID   int        `db:"client_id"`
	BusinessID int        `db:"business_id"`
	ProgramID  int        `db:"program_id"`
	ExpiresAt  time.Time  `db:"expires_at"`
	Used       bool       `db:"used"`
	UsedAt     *time.Time `db:"used_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

type SystemLog struct {
	ID        int64     `db:"id"`
	Level     LogLevel  `db:"level"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

// ProgressView joins a balance row with the program it counts towards.
type ProgressView struct {
	ProgramID         int
	ProgramName       string
	RewardDescription string
	BusinessID        int
	BusinessName      string
	PointsThreshold   int
	PointsAccumulated int
	UpdatedAt         time.Time
}

type RedeemedReward struct {
	TicketID          string
	RewardDescription string
	ProgramName       string
	ClientName        string
}

type TicketStatus struct {
	TicketID string
	Used     bool
	Expired  bool
}

type Registration struct {
	Login        string
	Password     string
	Role         Role
	DisplayName  string
	BusinessName string
	BirthDate    *time.Time
}
