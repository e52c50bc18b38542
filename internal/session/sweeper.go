package session

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
)

// DefaultSweepSpec runs the sweep once a minute.
const DefaultSweepSpec = "@every 1m"

// Sweepable is implemented by stores that need explicit expiry purging.
type Sweepable interface {
	Sweep(ctx context.Context) (int, error)
}

// Sweeper purges expired entries on a cron schedule. OnSweep, when set, is
// called after every run with the live entry count.
type Sweeper struct {
	store   Sweepable
	cron    *cron.Cron
	OnSweep func(live int)
}

func NewSweeper(store Sweepable, spec string) (*Sweeper, error) {
	if spec == "" {
		spec = DefaultSweepSpec
	}
	s := &Sweeper{store: store, cron: cron.New()}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sweeper) Start() { s.cron.Start() }

// Stop waits for a running sweep to finish or ctx to expire.
func (s *Sweeper) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

func (s *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log := logger.L().With(logger.Component("session.sweeper"))
	n, err := s.store.Sweep(ctx)
	if err != nil {
		log.Warn("sweep failed", logger.Err(err))
		return
	}
	if n > 0 {
		log.Debug("expired sessions purged", logger.Count(n))
	}
	if s.OnSweep != nil {
		if l, ok := s.store.(interface {
			Len(context.Context) (int, error)
		}); ok {
			if live, err := l.Len(ctx); err == nil {
				s.OnSweep(live)
			}
		}
	}
}
