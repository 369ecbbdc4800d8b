package jobs

import (
	"banking-backoffice/internal/config"
	"banking-backoffice/internal/logger"
	"banking-backoffice/internal/repository/postgres"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store  *postgres.Store
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *postgres.Store, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:  store,
		config: cfg,
	}
}

// Config returns the configuration the runner was built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllMonthlyJobs runs all monthly jobs (for manual execution)
func (jr *JobRunner) RunAllMonthlyJobs() {
	jr.RefreshUpcomingPaymentDates()
}
