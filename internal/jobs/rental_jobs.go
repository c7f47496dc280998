package jobs

import (
	"context"
	"time"

	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/notify"
)

// ActivateDueRentals flips pending rentals to active once their start
// timestamp has passed.
func (jr *JobRunner) ActivateDueRentals() {
	jr.runWithRecovery("ActivateDueRentals", func() {
		ctx := context.Background()

		query := `
			UPDATE rentals
			SET status = 'active'
			WHERE status = 'pending'
			  AND start_date <= $1
			RETURNING id
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to activate due rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				logger.Error("Failed to scan activated rental", "error", err)
				continue
			}
			jr.publish("rentals", notify.OpUpdated, id)
			logger.Debug("Rental activated", "rental_id", id)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating activated rentals", "error", err)
			return
		}

		logger.Info("Activated due rentals", "count", count)
	})
}

// CompleteElapsedRentals flips active rentals to completed once their
// end timestamp has passed. Completed rentals keep occupying their
// historical slot in availability checks.
func (jr *JobRunner) CompleteElapsedRentals() {
	jr.runWithRecovery("CompleteElapsedRentals", func() {
		ctx := context.Background()

		query := `
			UPDATE rentals
			SET status = 'completed'
			WHERE status = 'active'
			  AND end_date <= $1
			RETURNING id
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to complete elapsed rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				logger.Error("Failed to scan completed rental", "error", err)
				continue
			}
			jr.publish("rentals", notify.OpUpdated, id)
			logger.Debug("Rental completed", "rental_id", id)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating completed rentals", "error", err)
			return
		}

		logger.Info("Completed elapsed rentals", "count", count)
	})
}

// PurgeWizardSessions drops abandoned rental creation sessions.
func (jr *JobRunner) PurgeWizardSessions() {
	jr.runWithRecovery("PurgeWizardSessions", func() {
		if jr.sessions == nil {
			logger.Debug("No session store attached, skipping purge")
			return
		}
		purged := jr.sessions.PurgeExpired()
		logger.Info("Purged wizard sessions", "count", purged)
	})
}
