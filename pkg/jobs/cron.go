package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/creatorbridge/api/pkg/analytics"
	"github.com/creatorbridge/api/pkg/health"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron      *cron.Cron
	health    *health.Service
	analytics *analytics.Service
	logger    *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(healthSvc *health.Service, analyticsSvc *analytics.Service, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:      cron.New(),
		health:    healthSvc,
		analytics: analyticsSvc,
		logger:    logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Nightly at 2 AM: recompute every client's health score so the
	// dashboard never shows scores more than a day stale.
	_, err := cm.cron.AddFunc("0 2 * * *", func() {
		cm.logger.Println("🕐 Running nightly health recompute job...")

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()

		updated, failed, err := cm.health.RecomputeAll(ctx)
		if err != nil {
			cm.logger.Printf("❌ Nightly health recompute failed: %v", err)
			return
		}
		if failed > 0 {
			cm.logger.Printf("⚠️ Health recompute completed with errors: %d updated, %d failed", updated, failed)
			return
		}
		cm.logger.Printf("✅ Nightly health recompute completed: %d clients updated", updated)
	})
	if err != nil {
		return err
	}

	// Nightly at 2:30 AM, after the recompute: refresh the analytics
	// cache so the first morning dashboard load is warm.
	_, err = cm.cron.AddFunc("30 2 * * *", func() {
		cm.logger.Println("🕐 Warming analytics cache...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		cm.analytics.InvalidateCache(ctx)
		if _, err := cm.analytics.Overview(ctx); err != nil {
			cm.logger.Printf("❌ Failed to warm analytics overview: %v", err)
			return
		}
		if _, err := cm.analytics.DocumentPerformance(ctx); err != nil {
			cm.logger.Printf("❌ Failed to warm document performance: %v", err)
			return
		}
		cm.logger.Println("✅ Analytics cache warmed")
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured")
	return nil
}

// Start begins running scheduled jobs
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Println("🚀 Cron scheduler started")
}

// Stop gracefully stops the cron scheduler
func (cm *CronManager) Stop() {
	ctx := cm.cron.Stop()
	<-ctx.Done()
	cm.logger.Println("Cron scheduler stopped")
}
