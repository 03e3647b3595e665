package reconcile

import (
	"github.com/restoops/timeclock-backend-go/internal/config"
	"github.com/restoops/timeclock-backend-go/internal/domain/reconcile"
	"github.com/restoops/timeclock-backend-go/internal/pkg/cron"
)

// RegisterJobs wires the reconciliation sweeps onto the scheduler: a fast
// presence refresh feeding the candidate state and a slower overrun sweep.
func RegisterJobs(scheduler *cron.Scheduler, service reconcile.ReconcileService, cfg config.ReconcileConfig) {
	scheduler.AddJob("reconcile-presence", cfg.PresenceInterval, service.CheckPresence)
	scheduler.AddJob("reconcile-overruns", cfg.SweepInterval, service.CheckOverruns)
}
