package alerts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/robfig/cron/v3"
)

// Scheduler runs the detection and cleanup passes on their configured
// schedules. A schedule is either a standard five field cron expression
// or a plain duration such as "15m".
type Scheduler interface {
	Start(ctx context.Context)
	Stop()
}

type schedulerImpl struct {
	svc AlertService

	checkSchedule   string
	cleanupSchedule string

	done chan bool
}

func NewScheduler(svc AlertService, checkSchedule, cleanupSchedule string) (Scheduler, error) {
	if _, err := nextRunTime(checkSchedule, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("invalid check schedule %q: %w", checkSchedule, err)
	}
	if _, err := nextRunTime(cleanupSchedule, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", cleanupSchedule, err)
	}

	return &schedulerImpl{
		svc:             svc,
		checkSchedule:   checkSchedule,
		cleanupSchedule: cleanupSchedule,
		done:            make(chan bool),
	}, nil
}

func (s *schedulerImpl) Start(ctx context.Context) {
	go backgroundWorker(ctx, s, s.done)
}

func (s *schedulerImpl) Stop() {
	s.done <- true
}

func backgroundWorker(ctx context.Context, s *schedulerImpl, done <-chan bool) {
	log := logging.GetFromContext(ctx)

	now := time.Now().UTC()
	nextCheck, _ := nextRunTime(s.checkSchedule, now)
	nextCleanup, _ := nextRunTime(s.cleanupSchedule, now)

	for {
		next := nextCheck
		if nextCleanup.Before(next) {
			next = nextCleanup
		}

		timer := time.NewTimer(time.Until(next))

		select {
		case <-done:
			timer.Stop()
			return
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		now = time.Now().UTC()

		if !nextCheck.After(now) {
			_, err := s.svc.CheckAndCreateAutomaticAlerts(ctx)
			if err != nil {
				log.Error("scheduled detection pass failed", "err", err.Error())
			}
			nextCheck, _ = nextRunTime(s.checkSchedule, now)
		}

		if !nextCleanup.After(now) {
			_, err := s.svc.CleanupInvalidAlerts(ctx)
			if err != nil {
				log.Error("scheduled cleanup pass failed", "err", err.Error())
			}
			nextCleanup, _ = nextRunTime(s.cleanupSchedule, now)
		}
	}
}

func nextRunTime(schedule string, after time.Time) (time.Time, error) {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		return time.Time{}, fmt.Errorf("schedule is required")
	}

	if interval, err := time.ParseDuration(schedule); err == nil {
		if interval <= 0 {
			return time.Time{}, fmt.Errorf("interval must be > 0")
		}
		return after.Add(interval), nil
	}

	spec, err := cron.ParseStandard(schedule)
	if err != nil {
		return time.Time{}, err
	}

	return spec.Next(after), nil
}
