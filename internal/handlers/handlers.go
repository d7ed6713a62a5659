package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/loyalty/docs"
	"github.com/GlebRadaev/loyalty/internal/domain"
	authhandlers "github.com/GlebRadaev/loyalty/internal/handlers/auth"
	businesshandlers "github.com/GlebRadaev/loyalty/internal/handlers/business"
	cataloghandlers "github.com/GlebRadaev/loyalty/internal/handlers/catalog"
	ledgerhandlers "github.com/GlebRadaev/loyalty/internal/handlers/ledger"
	logshandlers "github.com/GlebRadaev/loyalty/internal/handlers/logs"
	"github.com/GlebRadaev/loyalty/internal/service"
	"github.com/GlebRadaev/loyalty/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BusinessHandler interface {
	GetBusiness(w http.ResponseWriter, r *http.Request)
	SetBoost(w http.ResponseWriter, r *http.Request)
	SetBirthdayBonus(w http.ResponseWriter, r *http.Request)
	CreateStaff(w http.ResponseWriter, r *http.Request)
	ListStaff(w http.ResponseWriter, r *http.Request)
	ListBusinesses(w http.ResponseWriter, r *http.Request)
	UpdateBusiness(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	CreateProgram(w http.ResponseWriter, r *http.Request)
	ListPrograms(w http.ResponseWriter, r *http.Request)
	UpdateProgram(w http.ResponseWriter, r *http.Request)
	DeleteProgram(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)
	ListPOSProducts(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	IssueCode(w http.ResponseWriter, r *http.Request)
	Scan(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
	TicketStatus(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
}

type LogsHandler interface {
	ListLogs(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	BusinessHandler BusinessHandler
	CatalogHandler  CatalogHandler
	LedgerHandler   LedgerHandler
	LogsHandler     LogsHandler

	jwtService auth.JWTServiceInterface
	metrics    http.Handler
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, metrics http.Handler) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		BusinessHandler: businesshandlers.New(s.BusinessService),
		CatalogHandler:  cataloghandlers.New(s.CatalogService),
		LedgerHandler:   ledgerhandlers.New(s.LedgerService),
		LogsHandler:     logshandlers.New(s.LogService),
		jwtService:      jwtService,
		metrics:         metrics,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))

			r.Route("/owner", func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleOwner))
				r.Get("/business", h.BusinessHandler.GetBusiness)
				r.Put("/business/boost", h.BusinessHandler.SetBoost)
				r.Put("/business/birthday-bonus", h.BusinessHandler.SetBirthdayBonus)
				r.Post("/staff", h.BusinessHandler.CreateStaff)
				r.Get("/staff", h.BusinessHandler.ListStaff)
				r.Route("/programs", func(r chi.Router) {
					r.Post("/", h.CatalogHandler.CreateProgram)
					r.Get("/", h.CatalogHandler.ListPrograms)
					r.Put("/{id}", h.CatalogHandler.UpdateProgram)
					r.Delete("/{id}", h.CatalogHandler.DeleteProgram)
				})
				r.Route("/products", func(r chi.Router) {
					r.Post("/", h.CatalogHandler.CreateProduct)
					r.Get("/", h.CatalogHandler.ListProducts)
					r.Delete("/{id}", h.CatalogHandler.DeleteProduct)
				})
			})

			r.Route("/pos", func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleWaiter, domain.RoleOwner))
				r.Get("/products", h.CatalogHandler.ListPOSProducts)
				r.Post("/purchases", h.LedgerHandler.IssueCode)
				r.Post("/tickets/redeem", h.LedgerHandler.Redeem)
			})

			r.Route("/client", func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleClient))
				r.Post("/scan", h.LedgerHandler.Scan)
				r.Post("/rewards/claim", h.LedgerHandler.Claim)
				r.Get("/tickets/{id}", h.LedgerHandler.TicketStatus)
				r.Get("/balances", h.LedgerHandler.Balances)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleAdmin))
				r.Get("/businesses", h.BusinessHandler.ListBusinesses)
				r.Patch("/businesses/{id}", h.BusinessHandler.UpdateBusiness)
				r.Get("/logs", h.LogsHandler.ListLogs)
			})
		})
	})

	return r
}
