package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/config"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/complaint"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/dw-complaint-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/kvstore"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/repository/kv"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/auth"
	complaintService "github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/complaint"
	exportService "github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/export"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/file"
	intakeService "github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/intake"
	notificationService "github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/notification"
	workerService "github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/worker"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.SlogLevel(), cfg.App.Env, version)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	var seedWorkers []worker.Worker
	var seedComplaints []complaint.Complaint
	if cfg.Store.SeedOnEmpty {
		seedWorkers = fixtures.DefaultWorkers()
		seedComplaints = fixtures.SampleComplaints(time.Now())
	}

	workerRepo, err := kv.NewWorkerRepository(ctx, store, seedWorkers)
	if err != nil {
		slog.Error("failed to load roster", "error", err)
		os.Exit(1)
	}
	complaintRepo, err := kv.NewComplaintRepository(ctx, store, seedComplaints)
	if err != nil {
		slog.Error("failed to load complaints", "error", err)
		os.Exit(1)
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		slog.Error("failed to initialize local storage", "error", err)
		os.Exit(1)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	hub := sse.NewHub()
	notifService := notificationService.NewNotificationService(hub, notificationService.Config{})
	defer notifService.Stop()

	intakeSvc := intakeService.NewIntakeService(workerRepo, complaintRepo)
	complaintSvc := complaintService.NewComplaintService(complaintRepo, workerRepo, intakeSvc, notifService)
	workerSvc := workerService.NewWorkerService(workerRepo, notifService)
	exportSvc := exportService.NewExportService(complaintSvc)
	fileService := file.NewFileService(fileStorage)
	authService := serviceAuth.NewAuthService(serviceAuth.Credentials{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	}, JWTService)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		FrontendURL: cfg.App.FrontendURL,
		LogLevel:    cfg.SlogLevel(),
		UploadsDir:  cfg.Storage.BasePath,
	}, logger, JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authService),
		Intake:       appHTTP.NewIntakeHandler(intakeSvc, complaintSvc, fileService),
		Complaint:    appHTTP.NewComplaintHandler(complaintSvc, exportSvc),
		Worker:       appHTTP.NewWorkerHandler(workerSvc),
		Notification: appHTTP.NewNotificationHandler(notifService, JWTService),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Open event streams only end when their channel closes
	server.RegisterOnShutdown(notifService.Stop)

	go func() {
		slog.Info("server running", "addr", server.Addr, "store", cfg.Store.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

// openStore returns the key-value backend selected by STORE_BACKEND
func openStore(ctx context.Context, cfg *config.Config) (kvstore.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := postgresql.EnsureKVSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgresql.NewKVStore(db), db.Close, nil
	default:
		store, err := kvstore.NewFileStore(cfg.Store.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}
