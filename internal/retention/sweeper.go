// Package retention removes codes and tickets that expired long ago and were
// never used. Redeemed purchases and used tickets are history and stay.
package retention

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	KindPurchases = "purchases"
	KindTickets   = "tickets"
)

type ExpiredDeleter interface {
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type Recorder interface {
	RecordSwept(kind string, rows int64)
}

type Result struct {
	Purchases int64
	Tickets   int64
}

type Sweeper struct {
	purchases ExpiredDeleter
	tickets   ExpiredDeleter
	recorder  Recorder
	period    time.Duration
	interval  time.Duration
	now       func() time.Time
}

func New(purchases, tickets ExpiredDeleter, recorder Recorder, period, interval time.Duration) *Sweeper {
	return &Sweeper{
		purchases: purchases,
		tickets:   tickets,
		recorder:  recorder,
		period:    period,
		interval:  interval,
		now:       time.Now,
	}
}

// Run sweeps every interval until ctx is canceled.
func (s *Sweeper) Run(ctx context.Context) {
	zap.L().Info("Retention sweeper started", zap.Duration("period", s.period), zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				zap.L().Error("Retention sweep failed", zap.Error(err))
			}
		}
	}
}

// Sweep deletes rows that expired more than the retention period ago. Both
// tables are swept concurrently; a failure on one doesn't undo the other.
func (s *Sweeper) Sweep(ctx context.Context) (Result, error) {
	cutoff := s.now().Add(-s.period)

	var result Result
	// a plain group: one table failing must not cancel the other's delete
	var g errgroup.Group
	g.Go(func() error {
		n, err := s.purchases.DeleteExpired(ctx, cutoff)
		if err != nil {
			return err
		}
		result.Purchases = n
		s.recorder.RecordSwept(KindPurchases, n)
		return nil
	})
	g.Go(func() error {
		n, err := s.tickets.DeleteExpired(ctx, cutoff)
		if err != nil {
			return err
		}
		result.Tickets = n
		s.recorder.RecordSwept(KindTickets, n)
		return nil
	})
	err := g.Wait()

	zap.L().Info("Retention sweep finished",
		zap.Time("cutoff", cutoff),
		zap.Int64("purchases", result.Purchases),
		zap.Int64("tickets", result.Tickets),
		zap.Error(err),
	)
	return result, err
}
