package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var ErrMalformedCode = errors.New("malformed code")

// PurchaseCode is the payload rendered into the QR shown at the point of sale.
type PurchaseCode struct {
	PurchaseID string `json:"purchaseId"`
	BusinessID int    `json:"businessId"`
	Token      string `json:"token"`
}

func (c PurchaseCode) Encode() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func ParsePurchaseCode(raw string) (PurchaseCode, error) {
	var code PurchaseCode
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &code); err != nil {
		return PurchaseCode{}, ErrMalformedCode
	}
	if code.PurchaseID == "" || code.BusinessID <= 0 || code.Token == "" {
		return PurchaseCode{}, ErrMalformedCode
	}
	return code, nil
}

type EventType string

const (
	EventCodeIssued     EventType = "CODE_ISSUED"
	EventPointsCredited EventType = "POINTS_CREDITED"
	EventTicketClaimed  EventType = "TICKET_CLAIMED"
	EventTicketRedeemed EventType = "TICKET_REDEEMED"
)

type LedgerEvent struct {
	Type       EventType `json:"type"`
	BusinessID int       `json:"business_id"`
	ClientID   int       `json:"client_id,omitempty"`
	ProgramID  int       `json:"program_id,omitempty"`
	Points     int       `json:"points,omitempty"`
	Reference  string    `json:"reference"`
	OccurredAt time.Time `json:"occurred_at"`
}
