package jobs

import (
	"context"
	"time"

	"fleetrent-backend/internal/logger"
)

// inspectionWarningWindow is how far ahead the fleet office is warned
// about an upcoming technical inspection.
const inspectionWarningWindow = 30 * 24 * time.Hour

// WarnVehicleInspections mails the fleet office about vehicles whose
// technical inspection is due within the warning window.
func (jr *JobRunner) WarnVehicleInspections() {
	jr.runWithRecovery("WarnVehicleInspections", func() {
		ctx := context.Background()

		vehicles, err := jr.store.VehicleRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list vehicles for inspection check", "error", err)
			return
		}

		deadline := time.Now().Add(inspectionWarningWindow)
		to := jr.config.Email.From
		count := 0
		for i := range vehicles {
			v := &vehicles[i]
			if v.InspectionDue == nil || v.InspectionDue.After(deadline) {
				continue
			}
			if err := jr.emailSvc.SendInspectionWarning(ctx, to, v); err != nil {
				logger.Error("Failed to send inspection warning", "vehicle_id", v.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Sent inspection warnings", "count", count)
	})
}
