package http

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	FrontendURL string
	LogLevel    slog.Level
	// UploadsDir is served under /uploads when set
	UploadsDir string
}

type Handlers struct {
	Auth         AuthHandler
	Intake       IntakeHandler
	Complaint    ComplaintHandler
	Worker       WorkerHandler
	Notification NotificationHandler
}

// NewLogger builds the JSON logger shared by the request logger and slog.Default.
func NewLogger(out io.Writer, level slog.Level, env, version string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(env != "production")
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dw-complaint"),
		slog.String("version", version),
		slog.String("env", env),
	)
}

func NewRouter(cfg RouterConfig, logger *slog.Logger, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.FrontendURL, ","),
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if cfg.UploadsDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", noDirListing(http.FileServer(http.Dir(cfg.UploadsDir)))))
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		r.Route("/intake", func(r chi.Router) {
			r.Get("/suggestions", h.Intake.Suggestions)
			r.Get("/workers/{opsId}", h.Intake.Lookup)
			r.Get("/periods", h.Intake.Periods)
			r.Post("/evidence", h.Intake.UploadEvidence)
		})

		r.Route("/complaints", func(r chi.Router) {
			r.Post("/missing-salary", h.Complaint.SubmitMissingSalary)
			r.Post("/underpaid-salary", h.Complaint.SubmitUnderpaidSalary)
		})

		r.Route("/admin", func(r chi.Router) {
			// Authenticated by the stream token in the query string
			r.Get("/events", h.Notification.Stream)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
				r.Use(middleware.AdminOnly)

				r.Get("/events/token", h.Auth.StreamToken)

				r.Route("/complaints", func(r chi.Router) {
					r.Get("/", h.Complaint.List)
					r.Get("/stats", h.Complaint.Stats)

					r.Route("/export", func(r chi.Router) {
						r.Post("/csv", h.Complaint.ExportCSV)
						r.Post("/xlsx", h.Complaint.ExportXLSX)
						r.Post("/clipboard", h.Complaint.ExportClipboard)
					})

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", h.Complaint.Get)
						r.Get("/history", h.Complaint.History)
						r.Put("/status", h.Complaint.UpdateStatus)
						r.Get("/contact", h.Complaint.Contact)
					})
				})

				r.Route("/workers", func(r chi.Router) {
					r.Get("/", h.Worker.List)
					r.Post("/", h.Worker.Create)
					r.Put("/{opsId}", h.Worker.Update)
					r.Delete("/{opsId}", h.Worker.Delete)
				})
			})
		})
	})
	return r
}

// noDirListing hides directory indexes of the uploads folder
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
