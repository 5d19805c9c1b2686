package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Task is a periodic background job. A failed run is logged and retried on the next tick.
type Task struct {
	Name       string
	Interval   time.Duration
	Timeout    time.Duration
	RunOnStart bool
	Run        func(ctx context.Context) error
}

type Scheduler struct {
	tasks  []Task
	logger *zap.Logger
}

func New(logger *zap.Logger, tasks ...Task) (*Scheduler, error) {
	for _, t := range tasks {
		if t.Interval <= 0 {
			return nil, fmt.Errorf("task %s: interval must be positive", t.Name)
		}
		if t.Run == nil {
			return nil, fmt.Errorf("task %s: no run func", t.Name)
		}
	}
	return &Scheduler{tasks: tasks, logger: logger}, nil
}

// Run blocks until ctx is done. Runs of one task never overlap.
func (s *Scheduler) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, t := range s.tasks {
		t := t
		g.Go(func() error {
			s.loop(gctx, t)
			return nil
		})
	}
	return g.Wait()
}

func (s *Scheduler) loop(ctx context.Context, t Task) {
	log := s.logger.With(zap.String("task", t.Name))
	log.Info("task scheduled", zap.Duration("interval", t.Interval))

	if t.RunOnStart {
		s.runOnce(ctx, t, log)
	}

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx, t, log)
		case <-ctx.Done():
			log.Info("task stopped")
			return
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, t Task, log *zap.Logger) {
	runCtx := ctx
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	start := time.Now()
	err := t.Run(runCtx)
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return
		}
		log.Error("task run failed", zap.Duration("took", time.Since(start)), zap.Error(err))
		return
	}
	log.Debug("task run finished", zap.Duration("took", time.Since(start)))
}
