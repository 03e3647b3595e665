package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/restoops/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/restoops/timeclock-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	timeClockHandler TimeClockHandler,
	approvalHandler ApprovalHandler,
	reconcileHandler ReconcileHandler,
	notificationHandler NotificationHandler,
	presenceHandler PresenceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-restoops"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// SSE stream authenticates via a short-lived query-param token, so
		// it stays outside the Verifier group.
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/timeclock", func(r chi.Router) {
				r.Post("/clock-in", timeClockHandler.ClockIn)
				r.Post("/clock-out", timeClockHandler.ClockOut)
				r.Get("/status", timeClockHandler.GetStatus)
				r.Get("/my/entries", timeClockHandler.GetMyEntries)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/entries", timeClockHandler.List)
				})
			})

			r.Route("/approvals", func(r chi.Router) {
				r.Post("/availability", approvalHandler.SubmitAvailabilityChange)
				r.Get("/my", approvalHandler.ListMine)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", approvalHandler.ListPending)
					r.Post("/{id}/resolve", approvalHandler.Resolve)
				})
			})

			r.Route("/presence", func(r chi.Router) {
				r.Get("/", presenceHandler.Current)
				r.Post("/report", presenceHandler.Report)
			})

			r.Route("/nudges", func(r chi.Router) {
				r.Get("/my", reconcileHandler.ListMine)
				r.Post("/{id}/respond", reconcileHandler.Respond)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Post("/mark-read", notificationHandler.MarkAsRead)
				r.Post("/mark-all-read", notificationHandler.MarkAllAsRead)
				r.Get("/sse-token", notificationHandler.GetSSEToken)
			})
		})
	})
	return r
}
