package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/taskdesk/taskdesk/internal/api/service"
	"github.com/taskdesk/taskdesk/internal/api/store"
	"github.com/taskdesk/taskdesk/pkg/httpx"
	"github.com/taskdesk/taskdesk/pkg/jwtx"
	"github.com/taskdesk/taskdesk/pkg/slogx"

	_ "github.com/taskdesk/taskdesk/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.EdDSASigner
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	IdentityService  *service.IdentityService
	TaskService      *service.TaskService
	DirectoryService *service.DirectoryService
}

func NewRouter(
	signer *jwtx.EdDSASigner,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerIdentity()
	r.registerTasks()
	r.registerDirectory()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			TaskDesk API
//	@version		0.1.0
//	@description	Multi-tenant task-management API with admin-mediated client onboarding.
//	@description
//	@description				New clients sign up into a pending state and cannot log in until an admin
//	@description				issues a single-use invite token for them. Sessions are EdDSA-signed JWTs.
//	@description
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerIdentity() {
	// POST /signup - strict rate limit by IP (public account creation)
	signupHandler := &SignupHandler{IdentityService: r.IdentityService}
	r.Mux.Handle("POST /v1/signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{IdentityService: r.IdentityService}
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /admin/invite - moderate rate limit by user (admin operation; the
	// admin check itself lives in the service)
	inviteHandler := &InviteHandler{IdentityService: r.IdentityService}
	r.Mux.Handle("POST /v1/admin/invite",
		httpx.Chain(inviteHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	secured := func(fn http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("POST /v1/tasks", secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/tasks", secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/tasks/{id}", secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/tasks/{id}", secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/tasks/{id}", secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerDirectory() {
	// GET /directory - lenient rate limit by IP (read-only proxy of the
	// external user API)
	h := &DirectoryHandler{DirectoryService: r.DirectoryService}
	r.Mux.Handle("GET /v1/directory",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
