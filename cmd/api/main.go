package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/restoops/timeclock-backend-go/internal/config"
	appHTTP "github.com/restoops/timeclock-backend-go/internal/handler/http"
	"github.com/restoops/timeclock-backend-go/internal/pkg/clock"
	"github.com/restoops/timeclock-backend-go/internal/pkg/cron"
	"github.com/restoops/timeclock-backend-go/internal/pkg/database"
	"github.com/restoops/timeclock-backend-go/internal/pkg/jwt"
	"github.com/restoops/timeclock-backend-go/internal/pkg/presence"
	"github.com/restoops/timeclock-backend-go/internal/pkg/sse"
	"github.com/restoops/timeclock-backend-go/internal/repository/postgresql"
	approvalService "github.com/restoops/timeclock-backend-go/internal/service/approval"
	notificationService "github.com/restoops/timeclock-backend-go/internal/service/notification"
	reconcileService "github.com/restoops/timeclock-backend-go/internal/service/reconcile"
	timeclockService "github.com/restoops/timeclock-backend-go/internal/service/timeclock"
)

// locationReportMaxAge is how long a device position report stays fresh
// before the gate treats the device as off premises.
const locationReportMaxAge = 2 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	clockStatusRepo := postgresql.NewClockStatusRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	approvalRepo := postgresql.NewApprovalRequestRepository(db)
	nudgeRepo := postgresql.NewNudgeRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	clk := clock.Real{}

	locationSource := presence.NewReportedSource(clk, locationReportMaxAge)
	gate := presence.NewGeofenceGate(presence.Premises{
		LocationID:   cfg.Premises.LocationID,
		LocationName: cfg.Premises.LocationName,
		Latitude:     cfg.Premises.Latitude,
		Longitude:    cfg.Premises.Longitude,
		RadiusMeters: cfg.Premises.RadiusMeters,
	}, locationSource)

	hub := sse.NewHub()
	notifService := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	defer notifService.Stop()

	timeClockSvc := timeclockService.NewTimeClockService(
		db,
		clk,
		gate,
		timeEntryRepo,
		clockStatusRepo,
		employeeRepo,
		approvalRepo,
		notifService,
	)
	approvalSvc := approvalService.NewApprovalService(
		db,
		clk,
		approvalRepo,
		timeEntryRepo,
		employeeRepo,
		notifService,
	)
	reconcileSvc := reconcileService.NewReconcileService(
		db,
		clk,
		gate,
		nudgeRepo,
		timeEntryRepo,
		clockStatusRepo,
		employeeRepo,
		notifService,
	)

	scheduler := cron.NewScheduler(clk)
	reconcileService.RegisterJobs(scheduler, reconcileSvc, cfg.Reconcile)
	scheduler.Start()
	defer scheduler.Stop()

	timeClockHandler := appHTTP.NewTimeClockHandler(timeClockSvc)
	approvalHandler := appHTTP.NewApprovalHandler(approvalSvc)
	reconcileHandler := appHTTP.NewReconcileHandler(reconcileSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notifService, JWTService)
	presenceHandler := appHTTP.NewPresenceHandler(gate, locationSource)

	router := appHTTP.NewRouter(
		JWTService,
		timeClockHandler,
		approvalHandler,
		reconcileHandler,
		notificationHandler,
		presenceHandler,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Println("Server error:", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Println("Shutdown error:", err)
		}
	}
}
