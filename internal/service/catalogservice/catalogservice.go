package catalogservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"go.uber.org/zap"
)

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrProgramNotFound  = errors.New("loyalty program not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidThreshold = errors.New("points threshold must be positive")
	ErrInvalidPrice     = errors.New("price can't be negative")
	ErrNoEmployer       = errors.New("staff account has no employer")
)

type BusinessRepo interface {
	FindByOwnerID(ctx context.Context, ownerID int) (*domain.Business, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type ProgramRepo interface {
	Create(ctx context.Context, program *domain.LoyaltyProgram) (*domain.LoyaltyProgram, error)
	ListByBusiness(ctx context.Context, businessID int) ([]domain.LoyaltyProgram, error)
	Update(ctx context.Context, program *domain.LoyaltyProgram) (*domain.LoyaltyProgram, error)
	Delete(ctx context.Context, businessID, id int) (bool, error)
}

type ProductRepo interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ListByBusiness(ctx context.Context, businessID int) ([]domain.Product, error)
	Delete(ctx context.Context, businessID, id int) (bool, error)
}

type Service struct {
	businessRepo BusinessRepo
	userRepo     UserRepo
	programRepo  ProgramRepo
	productRepo  ProductRepo
}

func New(businessRepo BusinessRepo, userRepo UserRepo, programRepo ProgramRepo, productRepo ProductRepo) *Service {
	return &Service{
		businessRepo: businessRepo,
		userRepo:     userRepo,
		programRepo:  programRepo,
		productRepo:  productRepo,
	}
}

func (s *Service) ownedBusinessID(ctx context.Context, ownerID int) (int, error) {
	business, err := s.businessRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	if business == nil {
		return 0, ErrBusinessNotFound
	}
	return business.ID, nil
}

func (s *Service) CreateProgram(ctx context.Context, ownerID int, program *domain.LoyaltyProgram) (*domain.LoyaltyProgram, error) {
	if program.PointsThreshold <= 0 {
		return nil, ErrInvalidThreshold
	}
	businessID, err := s.ownedBusinessID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	program.BusinessID = businessID
	created, err := s.programRepo.Create(ctx, program)
	if err != nil {
		return nil, err
	}
	zap.L().Info("loyalty program created", zap.Int("business_id", businessID), zap.Int("program_id", created.ID))
	return created, nil
}

func (s *Service) ListPrograms(ctx context.Context, ownerID int) ([]domain.LoyaltyProgram, error) {
	businessID, err := s.ownedBusinessID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.programRepo.ListByBusiness(ctx, businessID)
}

func (s *Service) UpdateProgram(ctx context.Context, ownerID int, program *domain.LoyaltyProgram) (*domain.LoyaltyProgram, error) {
	if program.PointsThreshold <= 0 {
		return nil, ErrInvalidThreshold
	}
	businessID, err := s.ownedBusinessID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	program.BusinessID = businessID
	updated, err := s.programRepo.Update(ctx, program)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrProgramNotFound
	}
	return updated, nil
}

// DeleteProgram drops the program with its balances and tickets.
func (s *Service) DeleteProgram(ctx context.Context, ownerID, programID int) error {
	businessID, err := s.ownedBusinessID(ctx, ownerID)
	if err != nil {
		return err
	}
	deleted, err := s.programRepo.Delete(ctx, businessID, programID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProgramNotFound
	}
	zap.L().Info("loyalty program deleted", zap.Int("business_id", businessID), zap.Int("program_id", programID))
	return nil
}

func (s *Service) CreateProduct(ctx context.Context, ownerID int, product *domain.Product) (*domain.Product, error) {
	if product.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	businessID, err := s.ownedBusinessID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	product.BusinessID = businessID
	return s.productRepo.Create(ctx, product)
}

func (s *Service) ListProducts(ctx context.Context, ownerID int) ([]domain.Product, error) {
	businessID, err := s.ownedBusinessID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.productRepo.ListByBusiness(ctx, businessID)
}

func (s *Service) DeleteProduct(ctx context.Context, ownerID, productID int) error {
	businessID, err := s.ownedBusinessID(ctx, ownerID)
	if err != nil {
		return err
	}
	deleted, err := s.productRepo.Delete(ctx, businessID, productID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}

// ListProductsForStaff returns the menu of the business the caller works for.
func (s *Service) ListProductsForStaff(ctx context.Context, userID int, role domain.Role) ([]domain.Product, error) {
	if role == domain.RoleOwner {
		return s.ListProducts(ctx, userID)
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.EmployerID == nil {
		return nil, ErrNoEmployer
	}
	return s.productRepo.ListByBusiness(ctx, *user.EmployerID)
}
