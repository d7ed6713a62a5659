// Package ledgerservice moves points between sales, client balances and
// reward tickets.
//
// Every operation that flips a single-use flag runs in one transaction: the
// purchase, ticket or balance row is read with FOR UPDATE and then changed by
// a conditional UPDATE whose affected-row count is checked again, so two
// concurrent scans of the same code can't both win.
package ledgerservice

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/metrics"
	"github.com/GlebRadaev/loyalty/internal/pg"
	"github.com/GlebRadaev/loyalty/pkg/codegen"
	"github.com/GlebRadaev/loyalty/pkg/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	purchaseTTL = 10 * time.Minute
	ticketTTL   = 60 * time.Minute

	// amounts are stored as NUMERIC(12,2).
	amountScale = 2
)

// maxAmount caps a single sale so that points fit an INTEGER column even at
// the highest multiplier.
var maxAmount = decimal.NewFromInt(1_000_000)

var (
	ErrNoEmployer         = errors.New("staff account isn't linked to a business")
	ErrInvalidAmount      = errors.New("amount must be positive, at most 1000000 and have no more than 2 decimal places")
	ErrBusinessBlocked    = errors.New("business is blocked")
	ErrPurchaseNotFound   = errors.New("purchase not found")
	ErrSecurityMismatch   = errors.New("code doesn't belong to this business")
	ErrInvalidToken       = errors.New("invalid security token")
	ErrAlreadyUsed        = errors.New("code already used")
	ErrExpired            = errors.New("code expired")
	ErrClientNotFound     = errors.New("client profile not found")
	ErrNoActiveProgram    = errors.New("business has no active loyalty program")
	ErrProgramNotFound    = errors.New("loyalty program not found")
	ErrProgressNotFound   = errors.New("no points collected for this program")
	ErrInsufficientPoints = errors.New("not enough points")
	ErrMalformedTicket    = errors.New("malformed ticket number")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrCrossTenant        = errors.New("ticket was issued by another business")
)

// rejections are expected misuse; anything else is an infrastructure failure.
var rejections = []error{
	ErrNoEmployer, ErrInvalidAmount, ErrBusinessBlocked, ErrPurchaseNotFound, ErrSecurityMismatch,
	ErrInvalidToken, ErrAlreadyUsed, ErrExpired, ErrClientNotFound, ErrNoActiveProgram, ErrProgramNotFound,
	ErrProgressNotFound, ErrInsufficientPoints, ErrMalformedTicket, ErrTicketNotFound, ErrCrossTenant,
	domain.ErrMalformedCode,
}

func isRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type BusinessRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Business, error)
	FindByOwnerID(ctx context.Context, ownerID int) (*domain.Business, error)
}

type ProgramRepo interface {
	FindByID(ctx context.Context, id int) (*domain.LoyaltyProgram, error)
	FindFirstActive(ctx context.Context, businessID int) (*domain.LoyaltyProgram, error)
}

type ClientRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Client, error)
	FindByUserID(ctx context.Context, userID int) (*domain.Client, error)
}

type ProgressRepo interface {
	FindForUpdate(ctx context.Context, clientID, programID int) (*domain.ClientProgress, error)
	Credit(ctx context.Context, clientID, programID, points int) (*domain.ClientProgress, error)
	Debit(ctx context.Context, id, points int) (bool, error)
	ListByClient(ctx context.Context, clientID int) ([]domain.ProgressView, error)
}

type PurchaseRepo interface {
	Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Purchase, error)
	MarkRedeemed(ctx context.Context, id string, clientID int) (bool, error)
}

type TicketRepo interface {
	Create(ctx context.Context, ticket *domain.RedemptionTicket) (*domain.RedemptionTicket, error)
	FindByID(ctx context.Context, id string) (*domain.RedemptionTicket, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.RedemptionTicket, error)
	MarkUsed(ctx context.Context, id string, at time.Time) (bool, error)
}

type AuditLog interface {
	Write(ctx context.Context, level domain.LogLevel, message string)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent) error
}

// TicketCache remembers burned tickets and who owned them, so status polls
// can be answered without the database.
type TicketCache interface {
	MarkUsed(ctx context.Context, ticketID string, clientID int) error
	UsedBy(ctx context.Context, ticketID string) (clientID int, found bool, err error)
}

type Repos struct {
	Users      UserRepo
	Businesses BusinessRepo
	Programs   ProgramRepo
	Clients    ClientRepo
	Progress   ProgressRepo
	Purchases  PurchaseRepo
	Tickets    TicketRepo
}

// IssuedCode is a stored purchase plus the payload to render as a QR code.
type IssuedCode struct {
	Purchase *domain.Purchase
	Payload  string
}

type Service struct {
	txManager pg.TXManager
	repos     Repos
	audit     AuditLog
	events    EventPublisher
	cache     TicketCache
	metrics   *metrics.LedgerMetrics

	now          func() time.Time
	newPurchase  func() string
	newToken     func() string
	newTicketNum func() (string, error)
}

func New(txManager pg.TXManager, repos Repos, audit AuditLog, events EventPublisher, cache TicketCache, m *metrics.LedgerMetrics) *Service {
	return &Service{
		txManager:    txManager,
		repos:        repos,
		audit:        audit,
		events:       events,
		cache:        cache,
		metrics:      m,
		now:          time.Now,
		newPurchase:  uuid.NewString,
		newToken:     codegen.SecurityToken,
		newTicketNum: codegen.TicketNumber,
	}
}

// resolveBusiness maps a staff account to the business it acts for: waiters
// through their employer, owners through the business they own.
func (s *Service) resolveBusiness(ctx context.Context, userID int, role domain.Role) (*domain.Business, error) {
	switch role {
	case domain.RoleOwner:
		business, err := s.repos.Businesses.FindByOwnerID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if business == nil {
			return nil, ErrNoEmployer
		}
		return business, nil
	case domain.RoleWaiter:
		user, err := s.repos.Users.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil || user.EmployerID == nil {
			return nil, ErrNoEmployer
		}
		business, err := s.repos.Businesses.FindByID(ctx, *user.EmployerID)
		if err != nil {
			return nil, err
		}
		if business == nil {
			return nil, ErrNoEmployer
		}
		return business, nil
	default:
		return nil, ErrNoEmployer
	}
}

func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() &&
		!amount.GreaterThan(maxAmount) &&
		amount.Equal(amount.Truncate(amountScale))
}

// IssueCode records a sale and returns the single-use code for it. Points are
// fixed now as floor(amount × multiplier).
func (s *Service) IssueCode(ctx context.Context, staffID int, role domain.Role, amount decimal.Decimal, items []domain.LineItem) (*IssuedCode, error) {
	if !validAmount(amount) {
		s.reject(ctx, "code issuance", fmt.Errorf("%w: %s", ErrInvalidAmount, amount.String()))
		return nil, ErrInvalidAmount
	}
	business, err := s.resolveBusiness(ctx, staffID, role)
	if err != nil {
		s.reject(ctx, "code issuance", err)
		return nil, err
	}
	if business.Status == domain.BusinessBlocked {
		s.reject(ctx, "code issuance", ErrBusinessBlocked)
		return nil, ErrBusinessBlocked
	}
	if items == nil {
		items = []domain.LineItem{}
	}

	purchase, err := s.repos.Purchases.Create(ctx, &domain.Purchase{
		ID:            s.newPurchase(),
		BusinessID:    business.ID,
		WaiterID:      staffID,
		Amount:        amount,
		PointsAwarded: int(amount.Mul(business.PointsMultiplier).Floor().IntPart()),
		SecurityToken: s.newToken(),
		Items:         items,
		ExpiresAt:     s.now().Add(purchaseTTL),
	})
	if err != nil {
		s.fail(ctx, "code issuance", err)
		return nil, err
	}

	payload, err := domain.PurchaseCode{
		PurchaseID: purchase.ID,
		BusinessID: purchase.BusinessID,
		Token:      purchase.SecurityToken,
	}.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode purchase code: %w", err)
	}

	s.metrics.RecordCodeIssued()
	s.audit.Write(ctx, domain.LogInfo, fmt.Sprintf("purchase %s issued by staff %d for business %d: amount %s, %d points",
		purchase.ID, staffID, business.ID, amount.StringFixed(2), purchase.PointsAwarded))
	s.publish(ctx, domain.LedgerEvent{
		Type:       domain.EventCodeIssued,
		BusinessID: business.ID,
		Points:     purchase.PointsAwarded,
		Reference:  purchase.ID,
	})
	return &IssuedCode{Purchase: purchase, Payload: payload}, nil
}

// ScanCode parses a raw scanned payload and credits it like CreditPoints.
func (s *Service) ScanCode(ctx context.Context, clientUserID int, payload string) (int, error) {
	code, err := domain.ParsePurchaseCode(payload)
	if err != nil {
		s.reject(ctx, "point crediting", err)
		return 0, err
	}
	return s.CreditPoints(ctx, clientUserID, code)
}

// CreditPoints validates a scanned purchase code and credits its points to
// the client's balance for the business's first active program.
func (s *Service) CreditPoints(ctx context.Context, clientUserID int, code domain.PurchaseCode) (int, error) {
	var (
		points    int
		clientID  int
		programID int
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		purchase, err := s.repos.Purchases.FindByIDForUpdate(ctx, code.PurchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return ErrPurchaseNotFound
		}
		if purchase.BusinessID != code.BusinessID {
			return ErrSecurityMismatch
		}
		if subtle.ConstantTimeCompare([]byte(purchase.SecurityToken), []byte(code.Token)) != 1 {
			return ErrInvalidToken
		}
		if purchase.Redeemed {
			return ErrAlreadyUsed
		}
		if s.now().After(purchase.ExpiresAt) {
			return ErrExpired
		}

		client, err := s.repos.Clients.FindByUserID(ctx, clientUserID)
		if err != nil {
			return err
		}
		if client == nil {
			return ErrClientNotFound
		}
		program, err := s.repos.Programs.FindFirstActive(ctx, purchase.BusinessID)
		if err != nil {
			return err
		}
		if program == nil {
			return ErrNoActiveProgram
		}

		if _, err := s.repos.Progress.Credit(ctx, client.ID, program.ID, purchase.PointsAwarded); err != nil {
			return err
		}
		redeemed, err := s.repos.Purchases.MarkRedeemed(ctx, purchase.ID, client.ID)
		if err != nil {
			return err
		}
		if !redeemed {
			return ErrAlreadyUsed
		}

		points, clientID, programID = purchase.PointsAwarded, client.ID, program.ID
		return nil
	})
	if err != nil {
		s.metrics.RecordScan(resultOf(err), 0)
		if errors.Is(err, ErrSecurityMismatch) {
			s.audit.Write(ctx, domain.LogWarn, fmt.Sprintf("security: purchase %s scanned with forged business %d by user %d",
				code.PurchaseID, code.BusinessID, clientUserID))
			return 0, err
		}
		s.reject(ctx, fmt.Sprintf("scan of purchase %s by user %d", code.PurchaseID, clientUserID), err)
		return 0, err
	}

	s.metrics.RecordScan(metrics.ResultOK, points)
	s.audit.Write(ctx, domain.LogSuccess, fmt.Sprintf("purchase %s credited %d points to client %d", code.PurchaseID, points, clientID))
	s.publish(ctx, domain.LedgerEvent{
		Type:       domain.EventPointsCredited,
		BusinessID: code.BusinessID,
		ClientID:   clientID,
		ProgramID:  programID,
		Points:     points,
		Reference:  code.PurchaseID,
	})
	return points, nil
}

// ClaimReward spends exactly one threshold of points and issues a ticket.
// Any balance above the threshold stays on the account.
func (s *Service) ClaimReward(ctx context.Context, clientUserID, programID int) (*domain.RedemptionTicket, error) {
	var ticket *domain.RedemptionTicket
	var threshold int
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		client, err := s.repos.Clients.FindByUserID(ctx, clientUserID)
		if err != nil {
			return err
		}
		if client == nil {
			return ErrClientNotFound
		}
		program, err := s.repos.Programs.FindByID(ctx, programID)
		if err != nil {
			return err
		}
		if program == nil {
			return ErrProgramNotFound
		}
		progress, err := s.repos.Progress.FindForUpdate(ctx, client.ID, program.ID)
		if err != nil {
			return err
		}
		if progress == nil {
			return ErrProgressNotFound
		}
		if progress.PointsAccumulated < program.PointsThreshold {
			return ErrInsufficientPoints
		}
		debited, err := s.repos.Progress.Debit(ctx, progress.ID, program.PointsThreshold)
		if err != nil {
			return err
		}
		if !debited {
			return ErrInsufficientPoints
		}

		number, err := s.newTicketNum()
		if err != nil {
			return err
		}
		ticket, err = s.repos.Tickets.Create(ctx, &domain.RedemptionTicket{
			ID:         number,
			ClientID:   client.ID,
			BusinessID: program.BusinessID,
			ProgramID:  program.ID,
			ExpiresAt:  s.now().Add(ticketTTL),
		})
		threshold = program.PointsThreshold
		return err
	})
	if err != nil {
		s.reject(ctx, fmt.Sprintf("reward claim for program %d by user %d", programID, clientUserID), err)
		return nil, err
	}

	s.metrics.RecordTicketClaimed()
	s.audit.Write(ctx, domain.LogSuccess, fmt.Sprintf("ticket %s issued to client %d for program %d", ticket.ID, ticket.ClientID, programID))
	s.publish(ctx, domain.LedgerEvent{
		Type:       domain.EventTicketClaimed,
		BusinessID: ticket.BusinessID,
		ClientID:   ticket.ClientID,
		ProgramID:  ticket.ProgramID,
		Points:     threshold,
		Reference:  ticket.ID,
	})
	return ticket, nil
}

// RedeemTicket burns a ticket presented at the business that issued it.
func (s *Service) RedeemTicket(ctx context.Context, staffID int, role domain.Role, ticketID string) (*domain.RedeemedReward, error) {
	if !validate.IsTicketNumber(ticketID) {
		s.reject(ctx, "ticket redemption", ErrMalformedTicket)
		return nil, ErrMalformedTicket
	}
	business, err := s.resolveBusiness(ctx, staffID, role)
	if err != nil {
		s.reject(ctx, "ticket redemption", err)
		return nil, err
	}

	var (
		reward   domain.RedeemedReward
		clientID int
		ticket   *domain.RedemptionTicket
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ticket, err = s.repos.Tickets.FindByIDForUpdate(ctx, ticketID)
		if err != nil {
			return err
		}
		if ticket == nil {
			return ErrTicketNotFound
		}
		if ticket.BusinessID != business.ID {
			return ErrCrossTenant
		}
		if ticket.Used {
			return ErrAlreadyUsed
		}
		now := s.now()
		if now.After(ticket.ExpiresAt) {
			return ErrExpired
		}
		used, err := s.repos.Tickets.MarkUsed(ctx, ticket.ID, now)
		if err != nil {
			return err
		}
		if !used {
			return ErrAlreadyUsed
		}

		program, err := s.repos.Programs.FindByID(ctx, ticket.ProgramID)
		if err != nil {
			return err
		}
		if program == nil {
			return ErrProgramNotFound
		}
		client, err := s.repos.Clients.FindByID(ctx, ticket.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return ErrClientNotFound
		}

		clientID = client.ID
		reward = domain.RedeemedReward{
			TicketID:          ticket.ID,
			RewardDescription: program.RewardDescription,
			ProgramName:       program.Name,
			ClientName:        client.DisplayName,
		}
		return nil
	})
	if err != nil {
		s.metrics.RecordRedemption(resultOf(err))
		if errors.Is(err, ErrCrossTenant) {
			zap.L().Warn("cross-tenant ticket scan",
				zap.String("ticket", ticketID), zap.Int("business_id", business.ID), zap.Int("staff_id", staffID))
			s.audit.Write(ctx, domain.LogWarn, fmt.Sprintf("security: ticket %s scanned by staff %d of business %d which didn't issue it",
				ticketID, staffID, business.ID))
			return nil, err
		}
		s.reject(ctx, fmt.Sprintf("redemption of ticket %s by staff %d", ticketID, staffID), err)
		return nil, err
	}

	if err := s.cache.MarkUsed(ctx, ticketID, clientID); err != nil {
		zap.L().Warn("can't cache ticket status", zap.String("ticket", ticketID), zap.Error(err))
	}
	s.metrics.RecordRedemption(metrics.ResultOK)
	s.audit.Write(ctx, domain.LogSuccess, fmt.Sprintf("ticket %s redeemed at business %d by staff %d", ticketID, business.ID, staffID))
	s.publish(ctx, domain.LedgerEvent{
		Type:       domain.EventTicketRedeemed,
		BusinessID: business.ID,
		ClientID:   clientID,
		ProgramID:  ticket.ProgramID,
		Reference:  ticketID,
	})
	return &reward, nil
}

// TicketStatus answers the client's poll while the ticket is shown on screen.
// Only the client the ticket was issued to can see it.
func (s *Service) TicketStatus(ctx context.Context, clientUserID int, ticketID string) (*domain.TicketStatus, error) {
	if !validate.IsTicketNumber(ticketID) {
		return nil, ErrMalformedTicket
	}
	client, err := s.repos.Clients.FindByUserID(ctx, clientUserID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	usedBy, found, err := s.cache.UsedBy(ctx, ticketID)
	if err != nil {
		zap.L().Warn("ticket cache unavailable", zap.Error(err))
	} else if found && usedBy == client.ID {
		return &domain.TicketStatus{TicketID: ticketID, Used: true}, nil
	}

	ticket, err := s.repos.Tickets.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil || ticket.ClientID != client.ID {
		return nil, ErrTicketNotFound
	}
	return &domain.TicketStatus{
		TicketID: ticket.ID,
		Used:     ticket.Used,
		Expired:  !ticket.Used && s.now().After(ticket.ExpiresAt),
	}, nil
}

func (s *Service) ClientBalances(ctx context.Context, clientUserID int) ([]domain.ProgressView, error) {
	client, err := s.repos.Clients.FindByUserID(ctx, clientUserID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	return s.repos.Progress.ListByClient(ctx, client.ID)
}

func resultOf(err error) string {
	if isRejection(err) {
		return metrics.ResultRejected
	}
	return metrics.ResultError
}

// reject logs a failed operation at WARN when it was refused by a rule and at
// ERROR otherwise.
func (s *Service) reject(ctx context.Context, operation string, err error) {
	if !isRejection(err) {
		s.fail(ctx, operation, err)
		return
	}
	zap.L().Info("ledger operation rejected", zap.String("operation", operation), zap.Error(err))
	s.audit.Write(ctx, domain.LogWarn, fmt.Sprintf("%s rejected: %v", operation, err))
}

func (s *Service) fail(ctx context.Context, operation string, err error) {
	zap.L().Error("ledger operation failed", zap.String("operation", operation), zap.Error(err))
	s.audit.Write(ctx, domain.LogError, fmt.Sprintf("%s failed: %v", operation, err))
}

func (s *Service) publish(ctx context.Context, event domain.LedgerEvent) {
	event.OccurredAt = s.now()
	if err := s.events.Publish(ctx, event); err != nil {
		zap.L().Warn("can't publish ledger event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
