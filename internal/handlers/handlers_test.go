package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/loyalty/internal/audit"
	"github.com/GlebRadaev/loyalty/internal/cache"
	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/events"
	"github.com/GlebRadaev/loyalty/internal/metrics"
	"github.com/GlebRadaev/loyalty/internal/pg"
	"github.com/GlebRadaev/loyalty/internal/repo"
	"github.com/GlebRadaev/loyalty/internal/service"
	"github.com/GlebRadaev/loyalty/pkg/auth"
	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	pool := audit.NewWorkerPool(1, 1)
	t.Cleanup(pool.Close)

	txManager := pg.NewMockTXManager(ctrl)
	services := service.New(repo.New(mockDB, txManager), service.Deps{
		TxManager: txManager,
		Hash:      auth.NewMockHashServiceInterface(ctrl),
		JWT:       auth.NewMockJWTServiceInterface(ctrl),
		TokenTTL:  time.Hour,
		Audit:     audit.NewSink(audit.NewMockRepo(ctrl), pool),
		Events:    events.NopPublisher{},
		Cache:     cache.NopCache{},
		Metrics:   metrics.New(prometheus.NewRegistry()),
	})

	h := New(services, auth.NewMockJWTServiceInterface(ctrl), promhttp.Handler())
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockBusinessHandler := NewMockBusinessHandler(ctrl)
	mockCatalogHandler := NewMockCatalogHandler(ctrl)
	mockLedgerHandler := NewMockLedgerHandler(ctrl)
	mockLogsHandler := NewMockLogsHandler(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockBusinessHandler.EXPECT().GetBusiness(gomock.Any(), gomock.Any()).AnyTimes()
	mockBusinessHandler.EXPECT().ListBusinesses(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().ListPOSProducts(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().IssueCode(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().Redeem(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().Scan(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().TicketStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogsHandler.EXPECT().ListLogs(gomock.Any(), gomock.Any()).AnyTimes()

	tokens := map[string]*auth.Claims{
		"client": {UserID: 1, Role: domain.RoleClient},
		"waiter": {UserID: 2, Role: domain.RoleWaiter},
		"owner":  {UserID: 3, Role: domain.RoleOwner},
		"admin":  {UserID: 4, Role: domain.RoleAdmin},
	}
	jwtService.EXPECT().ValidateToken(gomock.Any()).DoAndReturn(func(token string) (*auth.Claims, error) {
		claims, ok := tokens[token]
		if !ok {
			return nil, errors.New("invalid token")
		}
		return claims, nil
	}).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		BusinessHandler: mockBusinessHandler,
		CatalogHandler:  mockCatalogHandler,
		LedgerHandler:   mockLedgerHandler,
		LogsHandler:     mockLogsHandler,
		jwtService:      jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/user/register", "", http.StatusOK},
		{"POST", "/api/user/login", "", http.StatusOK},
		{"POST", "/api/client/scan", "", http.StatusUnauthorized},
		{"POST", "/api/client/scan", "forged", http.StatusUnauthorized},
		{"POST", "/api/client/scan", "client", http.StatusOK},
		{"POST", "/api/client/scan", "waiter", http.StatusForbidden},
		{"GET", "/api/client/tickets/4111111111111111", "client", http.StatusOK},
		{"POST", "/api/pos/purchases", "waiter", http.StatusOK},
		{"POST", "/api/pos/purchases", "owner", http.StatusOK},
		{"POST", "/api/pos/purchases", "client", http.StatusForbidden},
		{"POST", "/api/pos/tickets/redeem", "owner", http.StatusOK},
		{"GET", "/api/pos/products", "waiter", http.StatusOK},
		{"GET", "/api/owner/business", "owner", http.StatusOK},
		{"GET", "/api/owner/business", "waiter", http.StatusForbidden},
		{"GET", "/api/admin/businesses", "admin", http.StatusOK},
		{"GET", "/api/admin/businesses", "owner", http.StatusForbidden},
		{"GET", "/api/admin/logs", "admin", http.StatusOK},
		{"GET", "/api/admin/logs", "client", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" as "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
