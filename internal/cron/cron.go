package cron

import (
	"context"
	"os"
	"sync"

	cronv3 "github.com/robfig/cron/v3"

	"github.com/mailcanvas/mailcanvas/config"
	"github.com/mailcanvas/mailcanvas/interfaces"
	"github.com/mailcanvas/mailcanvas/internal/logger"
	"github.com/mailcanvas/mailcanvas/internal/tracing"
)

const (
	// GroupTemplates is the group for template maintenance jobs
	GroupTemplates = "templates"
)

// LOCK MANAGEMENT
var jobLocks = struct {
	sync.Mutex
	locks map[string]*sync.Mutex
}{
	locks: map[string]*sync.Mutex{
		GroupTemplates: new(sync.Mutex),
	},
}

type CronManager struct {
	cfg       *config.Config
	log       logger.Logger
	cron      *cronv3.Cron
	stopCh    chan struct{}
	jobIDs    map[string]cronv3.EntryID
	templates interfaces.TemplateService
}

func NewCronManager(cfg *config.Config, log logger.Logger, templates interfaces.TemplateService) *CronManager {
	return &CronManager{
		cfg:       cfg,
		log:       log,
		stopCh:    make(chan struct{}),
		jobIDs:    make(map[string]cronv3.EntryID),
		templates: templates,
	}
}

// Stop gracefully stops the cron manager
func (cm *CronManager) Stop() {
	if cm.cron != nil {
		cm.log.Info("Stopping cron manager")
		ctx := cm.cron.Stop()
		// Wait for jobs to finish
		<-ctx.Done()
	}
	close(cm.stopCh)
}

// registerJobs adds all cron jobs to the scheduler
func (cm *CronManager) registerJobs(c *cronv3.Cron) {
	cronConfig := cm.cfg.CronConfig

	// Register heartbeat job
	if cronConfig.CronScheduleHeartbeat != "" {
		podName := os.Getenv("POD_NAME")
		if podName == "" {
			podName = "local"
		}
		id, err := c.AddFunc(cronConfig.CronScheduleHeartbeat, func() {
			defer tracing.RecoverAndLogToJaeger(cm.log)
			cm.log.Infof("Cron heartbeat from pod: %s", podName)
		})
		if err != nil {
			cm.log.Fatalf("Could not add heartbeat cron job: %v", err)
		}
		cm.jobIDs["heartbeat"] = id
		cm.log.Infof("Registered heartbeat job with schedule: %s", cronConfig.CronScheduleHeartbeat)
	}

	// Template HTML self-heal job
	if cronConfig.CronScheduleRegenerateTemplates != "" {
		id, err := c.AddFunc(cronConfig.CronScheduleRegenerateTemplates, func() {
			defer tracing.RecoverAndLogToJaeger(cm.log)
			jobLocks.locks[GroupTemplates].Lock()
			defer jobLocks.locks[GroupTemplates].Unlock()
			cm.regenerateTemplates()
		})
		if err != nil {
			cm.log.Fatalf("Could not add template regeneration cron job: %v", err)
		}
		cm.jobIDs["regenerate_templates"] = id
		cm.log.Infof("Registered template regeneration job with schedule: %s", cronConfig.CronScheduleRegenerateTemplates)
	}
}

// StartCron initializes and starts the cron scheduler
func (cm *CronManager) StartCron() {
	cm.log.Info("Starting cron manager")
	// Create a new cron with seconds field enabled and panic recovery
	cronOptions := []cronv3.Option{
		cronv3.WithSeconds(),
		cronv3.WithChain(
			cronv3.SkipIfStillRunning(cronv3.DefaultLogger), // Skip if still running
			cronv3.Recover(cronv3.DefaultLogger),            // Default recovery as backup
		),
	}
	c := cronv3.New(cronOptions...)
	cm.registerJobs(c)
	c.Start()
	cm.cron = c
}

func (cm *CronManager) regenerateTemplates() {
	cm.log.Info("Running template HTML regeneration")

	ctx := context.Background()

	span, ctx := tracing.StartTracerSpan(ctx, "CronManager.regenerateTemplates")
	defer span.Finish()
	tracing.TagComponentCronJob(span)

	refreshed, err := cm.templates.RegenerateAll(ctx)
	if err != nil {
		tracing.TraceErr(span, err)
		cm.log.Errorf("Failed to regenerate template HTML: %v", err)
		return
	}

	cm.log.Infof("Template HTML regeneration refreshed %d templates", refreshed)
}
