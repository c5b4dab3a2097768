package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type orderExpirer interface {
	ExpireOverdue(ctx context.Context) (int, error)
}

// Scheduler periodically sweeps overdue pending orders. The lazy sweep inside
// reservation transactions already keeps availability correct; this loop only
// bounds how long an expired hold stays visible.
type Scheduler struct {
	reservations orderExpirer
	interval     time.Duration
	logger       logger.Logger
}

func New(
	reservations orderExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservations: reservations,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.reservations.ExpireOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to expire overdue orders",
			logger.String("error", err.Error()),
		)
		return
	}

	if expired > 0 {
		s.logger.Info("expired overdue orders", logger.Int("count", expired))
	}
}
