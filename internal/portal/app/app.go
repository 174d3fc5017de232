package app

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

	"github.com/rs/cors"

	"github.com/venturebothq/venturebot/internal/portal/cache"
	httpapi "github.com/venturebothq/venturebot/internal/portal/http"
	"github.com/venturebothq/venturebot/internal/portal/mail"
	"github.com/venturebothq/venturebot/internal/portal/service"
	"github.com/venturebothq/venturebot/internal/portal/store"
	"github.com/venturebothq/venturebot/internal/portal/store/drivers/sqlite"
	"github.com/venturebothq/venturebot/internal/portal/whatsapp"
	"github.com/venturebothq/venturebot/pkg/cryptox"
	"github.com/venturebothq/venturebot/pkg/jwtx"
	"github.com/venturebothq/venturebot/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the portal server with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	cache  *cache.Cache
	mailer *mail.Mailer
	signer *jwtx.Signer

	authService         *service.AuthService
	tenantService       *service.TenantService
	dashboardService    *service.DashboardService
	leadService         *service.LeadService
	campaignService     *service.CampaignService
	appointmentService  *service.AppointmentService
	staffService        *service.StaffService
	transactionService  *service.TransactionService
	messagingService    *service.MessagingService
	paymentService      *service.PaymentService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "portal",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}
	app.signer = &jwtx.Signer{Secret: []byte(cfg.SessionSecret), Issuer: cfg.SessionIssuer}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.cache = cache.New(cfg.RedisAddr)
	if app.cache != nil {
		app.logger.Info("dashboard cache enabled", "addr", cfg.RedisAddr)
	}

	app.mailer = mail.New(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		Sender:   cfg.SMTPSender,
	})

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("portal starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down portal...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.cache.Close(); err != nil {
		app.logger.Error("error closing cache", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("portal stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:      app.db,
		Signer:     app.signer,
		Mailer:     app.mailer,
		SessionTTL: app.cfg.SessionTTL,
	}

	app.tenantService = &service.TenantService{Store: app.db}
	app.dashboardService = &service.DashboardService{Store: app.db, Cache: app.cache}
	app.leadService = &service.LeadService{Store: app.db, Cache: app.cache}
	app.campaignService = &service.CampaignService{Store: app.db}
	app.appointmentService = &service.AppointmentService{Store: app.db}
	app.staffService = &service.StaffService{Store: app.db}
	app.transactionService = &service.TransactionService{Store: app.db}

	app.messagingService = &service.MessagingService{
		Store:  app.db,
		Sender: whatsapp.NewClient(app.cfg.WhatsAppAPIURL, app.cfg.WhatsAppAccessToken),
		Cache:  app.cache,
	}

	app.paymentService = &service.PaymentService{
		Store:     app.db,
		Orders:    service.NewRazorpayOrders(app.cfg.RazorpayKeyID, app.cfg.RazorpayKeySecret),
		Mailer:    app.mailer,
		Cache:     app.cache,
		KeyID:     app.cfg.RazorpayKeyID,
		KeySecret: app.cfg.RazorpayKeySecret,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.Env == "prod",
		app.cfg.SessionTTL,
	)

	router.AuthService = app.authService
	router.TenantService = app.tenantService
	router.DashboardService = app.dashboardService
	router.LeadService = app.leadService
	router.CampaignService = app.campaignService
	router.AppointmentService = app.appointmentService
	router.StaffService = app.staffService
	router.TransactionService = app.transactionService
	router.MessagingService = app.messagingService
	router.PaymentService = app.paymentService
	router.ApplyRoutes()

	app.router = router

	// The SPA runs on its own origin during development; cookies need
	// credentialed CORS.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   app.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 3 * time.Second,
	}
}
