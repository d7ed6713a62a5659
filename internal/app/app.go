package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loyalty/internal/audit"
	"github.com/GlebRadaev/loyalty/internal/cache"
	"github.com/GlebRadaev/loyalty/internal/config"
	"github.com/GlebRadaev/loyalty/internal/events"
	"github.com/GlebRadaev/loyalty/internal/handlers"
	"github.com/GlebRadaev/loyalty/internal/metrics"
	"github.com/GlebRadaev/loyalty/internal/pg"
	"github.com/GlebRadaev/loyalty/internal/repo"
	"github.com/GlebRadaev/loyalty/internal/retention"
	"github.com/GlebRadaev/loyalty/internal/service"
	"github.com/GlebRadaev/loyalty/internal/service/ledgerservice"
	"github.com/GlebRadaev/loyalty/pkg/auth"
	"github.com/GlebRadaev/loyalty/pkg/logger"
)

const (
	auditQueueSize = 256
	ticketCacheTTL = 2 * time.Hour
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type publisher interface {
	ledgerservice.EventPublisher
	Close() error
}

type ticketCache interface {
	ledgerservice.TicketCache
	Close() error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	sweeper *retention.Sweeper

	pool      *pgxpool.Pool
	auditPool *audit.WorkerPool
	events    publisher
	cache     ticketCache

	errCh chan error
	wg    sync.WaitGroup
	// serving tracks the HTTP drain and the sweeper, the last users of the
	// shared resources.
	serving sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	ledgerMetrics := metrics.New(reg)

	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.auditPool = audit.NewWorkerPool(cfg.AuditWorkers, auditQueueSize)
	a.events = newPublisher(cfg)
	a.cache = newTicketCache(ctx, cfg)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.srv = service.New(a.repo, service.Deps{
		TxManager: txManager,
		Hash:      &auth.HashService{},
		JWT:       jwtService,
		TokenTTL:  cfg.TokenTTL,
		Audit:     audit.NewSink(a.repo.AuditRepo, a.auditPool),
		Events:    a.events,
		Cache:     a.cache,
		Metrics:   ledgerMetrics,
	})
	a.api = handlers.New(a.srv, jwtService, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	a.sweeper = retention.New(a.repo.PurchaseRepo, a.repo.TicketRepo, ledgerMetrics, cfg.RetentionPeriod, cfg.SweepInterval)

	if err := a.srv.AdminSeeder.EnsureAdmin(ctx, cfg.AdminLogin, cfg.AdminPassword); err != nil {
		return fmt.Errorf("can't seed admin account: %w", err)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSweeper(ctx)
	a.closeOnShutdown(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func newPublisher(cfg *config.Config) publisher {
	if len(cfg.KafkaBrokers) == 0 {
		zap.L().Info("kafka brokers not configured, ledger events stay local")
		return events.NopPublisher{}
	}
	zap.L().Info("publishing ledger events", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
}

// newTicketCache falls back to no caching when redis is absent or unreachable;
// ticket status is then always read from the database.
func newTicketCache(ctx context.Context, cfg *config.Config) ticketCache {
	if cfg.RedisAddress == "" {
		return cache.NopCache{}
	}
	client, err := cache.NewRedisClient(ctx, cfg.RedisAddress)
	if err != nil {
		zap.L().Warn("redis unavailable, ticket cache disabled", zap.String("address", cfg.RedisAddress), zap.Error(err))
		return cache.NopCache{}
	}
	return cache.NewRedisTicketCache(client, ticketCacheTTL)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	a.serving.Add(1)
	go func() {
		defer a.wg.Done()
		defer a.serving.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSweeper(ctx context.Context) {
	a.wg.Add(1)
	a.serving.Add(1)
	go func() {
		defer a.wg.Done()
		defer a.serving.Done()
		a.sweeper.Run(ctx)
	}()
}

// closeOnShutdown waits until in-flight requests and the sweeper are done,
// then drains pending audit writes before the pool they write to goes away.
func (a *Application) closeOnShutdown(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		a.serving.Wait()

		a.auditPool.Close()
		if err := a.events.Close(); err != nil {
			zap.L().Error("can't close event publisher", zap.Error(err))
		}
		if err := a.cache.Close(); err != nil {
			zap.L().Error("can't close ticket cache", zap.Error(err))
		}
		if a.pool != nil {
			a.pool.Close()
		}
		zap.L().Info("resources released")
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
