package service

import (
	"context"
	"time"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/handlers/auth"
	"github.com/GlebRadaev/loyalty/internal/handlers/business"
	"github.com/GlebRadaev/loyalty/internal/handlers/catalog"
	"github.com/GlebRadaev/loyalty/internal/handlers/ledger"
	"github.com/GlebRadaev/loyalty/internal/handlers/logs"
	"github.com/GlebRadaev/loyalty/internal/metrics"
	"github.com/GlebRadaev/loyalty/internal/pg"
	"github.com/GlebRadaev/loyalty/internal/repo"
	"github.com/GlebRadaev/loyalty/internal/service/authservice"
	"github.com/GlebRadaev/loyalty/internal/service/businessservice"
	"github.com/GlebRadaev/loyalty/internal/service/catalogservice"
	"github.com/GlebRadaev/loyalty/internal/service/ledgerservice"
	pkgauth "github.com/GlebRadaev/loyalty/pkg/auth"
)

type AdminSeeder interface {
	EnsureAdmin(ctx context.Context, login, password string) error
}

// AuditLog is the sink every service writes business events to; admins read
// it back through the logs endpoint.
type AuditLog interface {
	logs.Service
	Write(ctx context.Context, level domain.LogLevel, message string)
}

type Deps struct {
	TxManager pg.TXManager
	Hash      pkgauth.HashServiceInterface
	JWT       pkgauth.JWTServiceInterface
	TokenTTL  time.Duration
	Audit     AuditLog
	Events    ledgerservice.EventPublisher
	Cache     ledgerservice.TicketCache
	Metrics   *metrics.LedgerMetrics
}

type Services struct {
	AuthService     auth.Service
	BusinessService business.Service
	CatalogService  catalog.Service
	LedgerService   ledger.Service
	LogService      logs.Service
	AdminSeeder     AdminSeeder
}

func New(repo *repo.Repositories, deps Deps) *Services {
	authService := authservice.New(
		deps.TxManager,
		repo.UserRepo,
		repo.ClientRepo,
		repo.BusinessRepo,
		deps.Hash,
		deps.JWT,
		deps.TokenTTL,
	)
	businessService := businessservice.New(repo.BusinessRepo, repo.UserRepo, deps.Hash, deps.Audit)
	catalogService := catalogservice.New(repo.BusinessRepo, repo.UserRepo, repo.ProgramRepo, repo.ProductRepo)
	ledgerService := ledgerservice.New(deps.TxManager, ledgerservice.Repos{
		Users:      repo.UserRepo,
		Businesses: repo.BusinessRepo,
		Programs:   repo.ProgramRepo,
		Clients:    repo.ClientRepo,
		Progress:   repo.ProgressRepo,
		Purchases:  repo.PurchaseRepo,
		Tickets:    repo.TicketRepo,
	}, deps.Audit, deps.Events, deps.Cache, deps.Metrics)

	return &Services{
		AuthService:     authService,
		BusinessService: businessService,
		CatalogService:  catalogService,
		LedgerService:   ledgerService,
		LogService:      deps.Audit,
		AdminSeeder:     authService,
	}
}
