package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/boards/internal/boards/service"
	"github.com/aussiebroadwan/boards/internal/boards/store"
	"github.com/aussiebroadwan/boards/pkg/httpx"
	"github.com/aussiebroadwan/boards/pkg/slogx"
	"go.opentelemetry.io/otel/trace"

	_ "github.com/aussiebroadwan/boards/api/boards" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store         store.Store
	AccessService *service.AccessService
	BoardService  *service.BoardService
	TodoService   *service.TodoService
}

// NewRouter builds a router with the global middleware in place. A nil tp
// traces through the global provider.
func NewRouter(buildVersion string, st store.Store, logger *slog.Logger, tp trace.TracerProvider) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Tracing sits right on the mux so it sees the matched route pattern.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.TracingMiddleware(tp),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerBoards()
	r.registerTodos()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpx.Chain(httpSwagger.Handler(), httpx.RateLimitByIP(httpx.PublicLimit)))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			BarTab Boards API
//	@version		0.1.0
//	@description	Task boards with todos. A board is complete when it has at least one todo and every todo on it is complete.
//	@description
//	@description				Tokens are HS256 JWTs issued by /auth/register and /auth/login.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/boards
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
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

func (r *Router) registerAuth() {
	h := &AuthHandler{AccessService: r.AccessService}

	// Strict limit per IP and email, so one address can't be brute forced
	// from a single client and one client can't walk many addresses fast.
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
}

// authed wraps a handler with bearer authentication and a per-user limit.
func (r *Router) authed(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.AccessService),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerBoards() {
	h := &BoardsHandler{BoardService: r.BoardService}

	r.Mux.Handle("GET /boards", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /boards", r.authed(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /boards/{id}", r.authed(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /boards/{id}", r.authed(h.HandleRename, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /boards/{id}", r.authed(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /boards/{id}/complete", r.authed(h.HandleSetCompletion, httpx.ModerateLimit))
}

func (r *Router) registerTodos() {
	h := &TodosHandler{TodoService: r.TodoService}

	r.Mux.Handle("POST /todos", r.authed(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PUT /todos/{id}", r.authed(h.HandleRename, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /todos/{id}", r.authed(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /todos/{id}/complete", r.authed(h.HandleSetCompletion, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health probes and docs share the public profile; monitors poll often.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
