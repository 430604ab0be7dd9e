package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ExpiredSessionCleaner removes expired sessions from the store
type ExpiredSessionCleaner interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

// sessionJanitor purges expired sessions on a cron schedule, so the store
// does not depend on the manual admin cleanup endpoint being called
type sessionJanitor struct {
	sessions ExpiredSessionCleaner
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewSessionJanitor creates a janitor running cleanup on the given cron
// schedule (standard five-field expressions plus descriptors like "@hourly")
func NewSessionJanitor(sessions ExpiredSessionCleaner, schedule string, logger *zap.Logger) (*sessionJanitor, error) {
	j := &sessionJanitor{
		sessions: sessions,
		cron:     cron.New(),
		logger:   logger,
	}

	if _, err := j.cron.AddFunc(schedule, j.runOnce); err != nil {
		return nil, fmt.Errorf("invalid session cleanup schedule %q: %w", schedule, err)
	}

	return j, nil
}

// Start begins scheduled execution in the janitor's own goroutine
func (j *sessionJanitor) Start() {
	j.cron.Start()
	j.logger.Info("session janitor started")
}

// Stop halts the schedule and waits for a running cleanup to finish
func (j *sessionJanitor) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("session janitor stopped")
}

// runOnce performs a single cleanup pass
func (j *sessionJanitor) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := j.sessions.CleanupExpired(ctx)
	if err != nil {
		j.logger.Error("scheduled session cleanup failed", zap.Error(err))
		return
	}

	if deleted > 0 {
		j.logger.Info("scheduled session cleanup completed", zap.Int64("deleted", deleted))
	}
}
