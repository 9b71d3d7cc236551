package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Joseph-Edoh/Church-connect/internal/auth"
	"github.com/Joseph-Edoh/Church-connect/internal/config"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/metrics"
	"github.com/Joseph-Edoh/Church-connect/internal/seed"
	"github.com/Joseph-Edoh/Church-connect/internal/service/actionplan"
	announcementsvc "github.com/Joseph-Edoh/Church-connect/internal/service/announcement"
	authsvc "github.com/Joseph-Edoh/Church-connect/internal/service/auth"
	churchsvc "github.com/Joseph-Edoh/Church-connect/internal/service/church"
	firsttimersvc "github.com/Joseph-Edoh/Church-connect/internal/service/firsttimer"
	"github.com/Joseph-Edoh/Church-connect/internal/service/overview"
	reportsvc "github.com/Joseph-Edoh/Church-connect/internal/service/report"
	unitsvc "github.com/Joseph-Edoh/Church-connect/internal/service/unit"
	usersvc "github.com/Joseph-Edoh/Church-connect/internal/service/user"
	"github.com/Joseph-Edoh/Church-connect/internal/transport/middleware"
	"github.com/Joseph-Edoh/Church-connect/internal/transport/rest"
)

// rateLimitCleanup is how often idle rate-limit buckets are swept.
const rateLimitCleanup = time.Minute

// App is a fully wired server: storage, services and the HTTP handler.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Storage *Storage
	Tokens  *auth.JWTManager
	Handler http.Handler

	limiter *middleware.RateLimiter
}

// New wires the services and HTTP routes onto st.
func New(cfg *config.Config, logger *slog.Logger, st *Storage) (*App, error) {
	reg := prometheus.NewRegistry()
	if err := metrics.Register(reg); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	calendar := domain.NewCalendar(cfg.Calendar.Location())

	authService := authsvc.NewService(logger, st.Users, hasher, tokens)
	churchService := churchsvc.NewService(logger, st.Churches, st.Users, hasher, st.Tx, calendar)
	userService := usersvc.NewService(logger, st.Users, st.Units, st.Churches, hasher, st.Tx, calendar)
	unitService := unitsvc.NewService(logger, st.Units, st.Users, st.Tx)
	planService := actionplan.NewService(logger, st.ActionItems, st.Units, st.Users)
	reportService := reportsvc.NewService(logger, st.Reports, st.Units, st.Users, calendar)
	firstTimerService := firsttimersvc.NewService(logger, st.FirstTimers, calendar)
	announcementService := announcementsvc.NewService(logger, st.Announcements, calendar)
	overviewService := overview.NewService(logger, overview.Counters{
		Users:         st.Users,
		Units:         st.Units,
		ActionItems:   st.ActionItems,
		Reports:       st.Reports,
		FirstTimers:   st.FirstTimers,
		Announcements: st.Announcements,
	})

	handlers := rest.Handlers{
		Health:       rest.NewHealthHandler(st, st.Driver, BuildVersion()),
		Auth:         rest.NewAuthHandler(authService, logger),
		Church:       rest.NewChurchHandler(churchService, logger),
		User:         rest.NewUserHandler(userService, logger),
		Unit:         rest.NewUnitHandler(unitService, logger),
		ActionPlan:   rest.NewActionPlanHandler(planService, logger),
		Report:       rest.NewReportHandler(reportService, logger),
		FirstTimer:   rest.NewFirstTimerHandler(firstTimerService, logger),
		Announcement: rest.NewAnnouncementHandler(announcementService, logger),
		Overview:     rest.NewOverviewHandler(overviewService, logger),
	}

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	handler := rest.NewRouter(handlers, rest.RouterDeps{
		Config:   cfg,
		Logger:   logger,
		Tokens:   tokens,
		Accounts: st.Users,
		Loaders:  rest.LoaderRepos{Users: st.Users, Units: st.Units},
		Limiter:  limiter,
		Metrics:  metrics.Handler(reg),
	})

	return &App{
		Config:  cfg,
		Logger:  logger,
		Storage: st,
		Tokens:  tokens,
		Handler: handler,
		limiter: limiter,
	}, nil
}

// Seed loads the demo fixture (or cfg.Seed.File) into the app's storage.
func (a *App) Seed(ctx context.Context) (seed.Summary, error) {
	return SeedStorage(ctx, a.Config, a.Logger, a.Storage)
}

// Close stops background work and releases storage.
func (a *App) Close() {
	a.limiter.Stop()
	a.Storage.Close()
}

// SeedStorage loads the configured seed fixture into st.
func SeedStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger, st *Storage) (seed.Summary, error) {
	fixture, err := seed.ReadFile(cfg.Seed.File)
	if err != nil {
		return seed.Summary{}, err
	}
	loader := seed.NewLoader(logger, seed.Repos{
		Churches:      st.Churches,
		Users:         st.Users,
		Units:         st.Units,
		ActionItems:   st.ActionItems,
		Reports:       st.Reports,
		FirstTimers:   st.FirstTimers,
		Announcements: st.Announcements,
		Tx:            st.Tx,
	}, auth.NewBcryptHasher(cfg.Auth.BcryptCost))
	return loader.Load(ctx, fixture)
}

// Run is the application entry point. It loads configuration, opens the
// configured storage, optionally seeds it and serves HTTP until ctx is
// cancelled or the process receives SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}

	a, err := New(cfg, logger, st)
	if err != nil {
		st.Close()
		return err
	}
	defer a.Close()

	if cfg.Seed.Enabled {
		sum, err := a.Seed(ctx)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("seed loaded", slog.Int("created", sum.Created), slog.Int("skipped", sum.Skipped))
	}

	return a.Serve(ctx)
}

// Serve runs the HTTP server until ctx is done, then shuts it down within
// the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.Config.Server.Addr(),
		Handler:      a.Handler,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.Logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down", slog.Duration("timeout", a.Config.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	a.Logger.Info("server stopped gracefully")
	return nil
}
