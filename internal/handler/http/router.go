package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/teamtrace/attendance-engine-go/internal/handler/http/middleware"
	"github.com/teamtrace/attendance-engine-go/internal/pkg/jwt"
)

func NewRouter(JWTService jwt.Service, attendanceHandler AttendanceHandler, reportHandler ReportHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-engine"),
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees/{employeeID}/attendance", func(r chi.Router) {
				r.Route("/{date}", func(r chi.Router) {
					r.Put("/", attendanceHandler.SaveLog)
					r.Get("/", attendanceHandler.GetLog)
					r.Delete("/", attendanceHandler.DeleteLog)
					r.Get("/timeline", attendanceHandler.GetTimeline)
					r.Get("/status", attendanceHandler.GetStatus)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/day-summary", reportHandler.DaySummary)
				r.Get("/muster-roll", reportHandler.MusterRoll)
				r.Get("/employees/{employeeID}/period-summary", reportHandler.PeriodSummary)
			})
		})
	})
	return r
}
