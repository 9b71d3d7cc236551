package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/config"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/transport/middleware"
	"github.com/Joseph-Edoh/Church-connect/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (ctxutil.Identity, error)
}

type accountRepo interface {
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.User, error)
}

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Church       *ChurchHandler
	User         *UserHandler
	Unit         *UnitHandler
	ActionPlan   *ActionPlanHandler
	Report       *ReportHandler
	FirstTimer   *FirstTimerHandler
	Announcement *AnnouncementHandler
	Overview     *OverviewHandler
}

// RouterDeps is what the router needs besides the handlers.
type RouterDeps struct {
	Config *config.Config
	Logger *slog.Logger
	Tokens tokenValidator
	// Accounts supplies the caller's current role on every request.
	Accounts accountRepo
	Loaders  LoaderRepos
	Limiter  *middleware.RateLimiter
	// Metrics serves the Prometheus exposition. Nil leaves the path unmounted.
	Metrics http.Handler
}

// NewRouter mounts all routes and wraps them in the middleware chain.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.Route(fn))
	}
	public := deps.Limiter.Limit(deps.Config.Server.PublicRateLimit)
	limited := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.Route(public(fn)))
	}

	handle("GET /health/live", h.Health.Live)
	handle("GET /health/ready", h.Health.Ready)
	handle("GET /health", h.Health.Health)
	if deps.Metrics != nil && deps.Config.Metrics.Enabled {
		mux.Handle("GET "+deps.Config.Metrics.Path, middleware.Route(deps.Metrics))
	}

	// Public.
	handle("GET /churches", h.Church.List)
	limited("POST /churches", h.Church.Register)
	handle("GET /churches/{id}/units/public", h.Unit.Public)
	limited("POST /members", h.User.Register)
	limited("POST /auth", h.Auth.Login)

	// Users.
	handle("GET /me", h.User.Me)
	handle("GET /me/pages", h.User.Pages)
	handle("GET /churches/{id}/users", h.User.List)
	handle("POST /users", h.User.Create)
	handle("PATCH /users/{id}/logger-role", h.User.SetLoggerRole)
	handle("GET /churches/{id}/users/logger-candidates", h.User.LoggerCandidates)
	handle("GET /churches/{id}/users/head-candidates", h.User.NewUnitHeadCandidates)
	handle("GET /units/{id}/head-candidates", h.User.UnitHeadCandidates)

	// Units.
	handle("GET /churches/{id}/units", h.Unit.List)
	handle("GET /units/{id}", h.Unit.Get)
	handle("POST /units", h.Unit.Create)
	handle("PUT /units/{id}", h.Unit.Update)
	handle("DELETE /units/{id}", h.Unit.Delete)

	// Action plans.
	handle("GET /units/{id}/action-items", h.ActionPlan.List)
	handle("POST /action-items", h.ActionPlan.Add)
	handle("PATCH /action-items/{id}", h.ActionPlan.Update)

	// Reports.
	handle("GET /reports", h.Report.List)
	handle("GET /reports/{id}", h.Report.Get)
	handle("POST /reports", h.Report.Submit)
	handle("PATCH /reports/{id}/reply", h.Report.Reply)

	// First-timers.
	handle("GET /first-timers", h.FirstTimer.List)
	handle("GET /first-timers/{id}", h.FirstTimer.Get)
	handle("POST /first-timers", h.FirstTimer.Log)
	handle("PATCH /first-timers/{id}/follow-up", h.FirstTimer.FollowUp)

	// Announcements.
	handle("GET /announcements", h.Announcement.List)
	handle("POST /announcements", h.Announcement.Create)
	handle("PUT /announcements/{id}", h.Announcement.Update)
	handle("DELETE /announcements/{id}", h.Announcement.Delete)

	handle("GET /churches/{id}/overview", h.Overview.Get)

	chain := middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.Metrics,
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.Config.CORS),
		middleware.Auth(deps.Tokens, deps.Accounts),
		LoadersMiddleware(deps.Loaders),
	)
	return chain(mux)
}
