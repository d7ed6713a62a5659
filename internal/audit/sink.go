// Package audit keeps the append-only system log. Entries are mirrored to
// zap right away and stored in the background; a failed insert is logged and
// never reported to the caller.
package audit

import (
	"context"
	"time"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"go.uber.org/zap"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500

	writeTimeout = 5 * time.Second
)

type Repo interface {
	Create(ctx context.Context, entry *domain.SystemLog) error
	ListRecent(ctx context.Context, limit int) ([]domain.SystemLog, error)
}

type Sink struct {
	repo Repo
	pool WorkerPoolI
}

func NewSink(repo Repo, pool WorkerPoolI) *Sink {
	return &Sink{
		repo: repo,
		pool: pool,
	}
}

func (s *Sink) Write(ctx context.Context, level domain.LogLevel, message string) {
	fields := []zap.Field{zap.String("audit", string(level))}
	switch level {
	case domain.LogError:
		zap.L().Error(message, fields...)
	case domain.LogWarn:
		zap.L().Warn(message, fields...)
	default:
		zap.L().Info(message, fields...)
	}

	entry := &domain.SystemLog{Level: level, Message: message}
	detached := context.WithoutCancel(ctx)
	err := s.pool.AddTask(ctx, func() error {
		ctx, cancel := context.WithTimeout(detached, writeTimeout)
		defer cancel()
		return s.repo.Create(ctx, entry)
	})
	if err != nil {
		zap.L().Warn("audit entry dropped", zap.String("message", message), zap.Error(err))
	}
}

// ListLogs returns the newest entries first. limit falls back to
// DefaultLimit and is capped at MaxLimit.
func (s *Sink) ListLogs(ctx context.Context, limit int) ([]domain.SystemLog, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
