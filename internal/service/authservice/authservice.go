package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/pg"
	"github.com/GlebRadaev/loyalty/pkg/auth"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleNotAllowed     = errors.New("role can't be self-registered")
	ErrAdminConflict      = errors.New("admin login belongs to another role")
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type ClientRepo interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
}

type BusinessRepo interface {
	Create(ctx context.Context, business *domain.Business) (*domain.Business, error)
}

type Service struct {
	txManager    pg.TXManager
	userRepo     Repo
	clientRepo   ClientRepo
	businessRepo BusinessRepo
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	tokenTTL     time.Duration
}

func New(
	txManager pg.TXManager,
	repo Repo,
	clientRepo ClientRepo,
	businessRepo BusinessRepo,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
	tokenTTL time.Duration,
) *Service {
	return &Service{
		txManager:    txManager,
		userRepo:     repo,
		clientRepo:   clientRepo,
		businessRepo: businessRepo,
		hashService:  hashService,
		jwtService:   jwtService,
		tokenTTL:     tokenTTL,
	}
}

// Register creates the account and, in the same transaction, the client
// profile or the pending business that goes with the role.
func (s *Service) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	if reg.Role != domain.RoleClient && reg.Role != domain.RoleOwner {
		return nil, ErrRoleNotAllowed
	}
	existingUser, err := s.userRepo.FindByLogin(ctx, reg.Login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("login", reg.Login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(reg.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	displayName := reg.DisplayName
	if displayName == "" {
		displayName = reg.Login
	}

	var user *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err = s.userRepo.Create(ctx, &domain.User{
			Login:        reg.Login,
			PasswordHash: hashedPassword,
			Role:         reg.Role,
			DisplayName:  displayName,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		switch reg.Role {
		case domain.RoleClient:
			_, err = s.clientRepo.Create(ctx, &domain.Client{
				UserID:      user.ID,
				DisplayName: displayName,
				BirthDate:   reg.BirthDate,
			})
			if err != nil {
				return fmt.Errorf("create client profile: %w", err)
			}
		case domain.RoleOwner:
			name := reg.BusinessName
			if name == "" {
				name = displayName
			}
			_, err = s.businessRepo.Create(ctx, &domain.Business{
				OwnerID:          user.ID,
				Name:             name,
				Status:           domain.BusinessPending,
				Tier:             domain.TierFree,
				PointsMultiplier: decimal.NewFromInt(1),
			})
			if err != nil {
				return fmt.Errorf("create business: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't register user", zap.String("login", reg.Login), zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", reg.Login), zap.String("role", string(reg.Role)))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Warn("invalid credentials", zap.String("login", login), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Warn("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role domain.Role) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// EnsureAdmin creates the bootstrap admin account unless it already exists.
func (s *Service) EnsureAdmin(ctx context.Context, login, password string) error {
	if login == "" || password == "" {
		return nil
	}
	existing, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Role != domain.RoleAdmin {
			return ErrAdminConflict
		}
		return nil
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := s.userRepo.Create(ctx, &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         domain.RoleAdmin,
		DisplayName:  "Administrator",
	}); err != nil {
		return err
	}
	zap.L().Info("admin account created", zap.String("login", login))
	return nil
}
