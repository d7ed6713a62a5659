package businessservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/pkg/auth"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrInvalidStatus    = errors.New("invalid business status")
	ErrInvalidTier      = errors.New("invalid business tier")
	ErrInvalidBonus     = errors.New("birthday bonus can't be negative")
	ErrLoginTaken       = errors.New("username already taken")
)

var (
	baseMultiplier    = decimal.NewFromInt(1)
	boostedMultiplier = decimal.NewFromInt(2)
)

type BusinessRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Business, error)
	FindByOwnerID(ctx context.Context, ownerID int) (*domain.Business, error)
	List(ctx context.Context) ([]domain.Business, error)
	UpdateStatus(ctx context.Context, id int, status domain.BusinessStatus, tier string) (*domain.Business, error)
	UpdateMultiplier(ctx context.Context, id int, multiplier decimal.Decimal) (*domain.Business, error)
	UpdateBirthdayBonus(ctx context.Context, id int, points int) (*domain.Business, error)
}

type StaffRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	ListByEmployer(ctx context.Context, businessID int) ([]domain.User, error)
}

type AuditLog interface {
	Write(ctx context.Context, level domain.LogLevel, message string)
}

type Service struct {
	businessRepo BusinessRepo
	staffRepo    StaffRepo
	hashService  auth.HashServiceInterface
	audit        AuditLog
}

func New(businessRepo BusinessRepo, staffRepo StaffRepo, hashService auth.HashServiceInterface, audit AuditLog) *Service {
	return &Service{
		businessRepo: businessRepo,
		staffRepo:    staffRepo,
		hashService:  hashService,
		audit:        audit,
	}
}

func (s *Service) GetOwnedBusiness(ctx context.Context, ownerID int) (*domain.Business, error) {
	business, err := s.businessRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}
	return business, nil
}

// SetBoost switches the business between the base and the boosted multiplier.
func (s *Service) SetBoost(ctx context.Context, ownerID int, enabled bool) (*domain.Business, error) {
	business, err := s.GetOwnedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	multiplier := baseMultiplier
	if enabled {
		multiplier = boostedMultiplier
	}
	updated, err := s.businessRepo.UpdateMultiplier(ctx, business.ID, multiplier)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBusinessNotFound
	}
	zap.L().Info("points multiplier changed", zap.Int("business_id", business.ID), zap.String("multiplier", multiplier.String()))
	s.audit.Write(ctx, domain.LogInfo, fmt.Sprintf("business %d multiplier set to %s", business.ID, multiplier))
	return updated, nil
}

func (s *Service) SetBirthdayBonus(ctx context.Context, ownerID int, points int) (*domain.Business, error) {
	if points < 0 {
		return nil, ErrInvalidBonus
	}
	business, err := s.GetOwnedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	updated, err := s.businessRepo.UpdateBirthdayBonus(ctx, business.ID, points)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBusinessNotFound
	}
	return updated, nil
}

func (s *Service) ListBusinesses(ctx context.Context) ([]domain.Business, error) {
	return s.businessRepo.List(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, id int, status domain.BusinessStatus, tier string) (*domain.Business, error) {
	switch status {
	case domain.BusinessActive, domain.BusinessBlocked, domain.BusinessPending:
	default:
		return nil, ErrInvalidStatus
	}
	if tier == "" {
		current, err := s.businessRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, ErrBusinessNotFound
		}
		tier = current.Tier
	}
	if tier != domain.TierFree && tier != domain.TierPro {
		return nil, ErrInvalidTier
	}

	updated, err := s.businessRepo.UpdateStatus(ctx, id, status, tier)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBusinessNotFound
	}
	zap.L().Info("business status changed", zap.Int("business_id", id), zap.String("status", string(status)))
	s.audit.Write(ctx, domain.LogInfo, fmt.Sprintf("business %d set to %s (%s)", id, status, tier))
	return updated, nil
}

// CreateWaiter registers a staff account employed by the owner's business.
func (s *Service) CreateWaiter(ctx context.Context, ownerID int, login, password, displayName string) (*domain.User, error) {
	business, err := s.GetOwnedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	existing, err := s.staffRepo.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	if displayName == "" {
		displayName = login
	}
	employer := business.ID
	waiter, err := s.staffRepo.Create(ctx, &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         domain.RoleWaiter,
		DisplayName:  displayName,
		EmployerID:   &employer,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("waiter created", zap.Int("business_id", business.ID), zap.String("login", login))
	return waiter, nil
}

func (s *Service) ListStaff(ctx context.Context, ownerID int) ([]domain.User, error) {
	business, err := s.GetOwnedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.staffRepo.ListByEmployer(ctx, business.ID)
}
