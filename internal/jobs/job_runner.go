package jobs

import (
	"database/sql"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/config"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/notify"
	"fleetrent-backend/internal/repository/postgres"
	"fleetrent-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs. The session store and the
// change-feed hub are only set in the server process; the standalone
// cronjob binary runs with both nil.
type JobRunner struct {
	db       *sql.DB
	store    *postgres.Store
	emailSvc service.EmailService
	sessions *booking.SessionStore
	hub      *notify.Hub
	config   *config.Config
}

func NewJobRunner(db *sql.DB, store *postgres.Store, emailSvc service.EmailService, sessions *booking.SessionStore, hub *notify.Hub, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:       db,
		store:    store,
		emailSvc: emailSvc,
		sessions: sessions,
		hub:      hub,
		config:   cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so one broken
// job never takes down the scheduler.
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

func (jr *JobRunner) publish(entity string, op notify.Op, id int64) {
	if jr.hub != nil {
		jr.hub.Publish(entity, op, id)
	}
}

// RunAll runs every job once, for manual execution.
func (jr *JobRunner) RunAll() {
	jr.ActivateDueRentals()
	jr.CompleteElapsedRentals()
	jr.PurgeWizardSessions()
	jr.WarnVehicleInspections()
}
