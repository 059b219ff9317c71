package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/smartjob/job-board/docs"
	"github.com/smartjob/job-board/internal/api/handler"
	"github.com/smartjob/job-board/internal/api/middleware"
	"github.com/smartjob/job-board/internal/core/ports"
)

// Options tunes the HTTP edge.
type Options struct {
	// AuthRateLimit is the sustained requests per second allowed per client IP on
	// register and login. Zero disables the limiter.
	AuthRateLimit float64
	AuthRateBurst int
	// CORSAllowOrigins defaults to "*" when empty.
	CORSAllowOrigins []string
}

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Auth     ports.AuthService
	Jobs     ports.JobService
	Profiles ports.ProfileService
	Tokens   middleware.TokenValidator
	TokenTTL time.Duration
	Policy   *middleware.Policy
	Required []handler.Pinger
	Optional []handler.Pinger
	Logger   zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps Dependencies, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	policy := deps.Policy
	if policy == nil {
		policy = middleware.DefaultPolicy()
	}

	// Each router owns its HTTP collectors; /metrics also exposes the process-wide
	// domain counters from the default registry.
	registry := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(corsConfig(opts.CORSAllowOrigins)))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "jobboard",
		Registerer: registry,
	}))
	e.Use(middleware.Auth(deps.Tokens, policy, deps.Logger))
	e.Use(middleware.Authorize(policy))

	// --- Users ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.TokenTTL)
	limiter := authRateLimiter(opts)
	users := e.Group("/api/users")
	users.POST("/register", authHandler.Register, limiter...)
	users.POST("/login", authHandler.Login, limiter...)
	users.GET("/me", authHandler.Me)

	// --- Jobs ---
	jobHandler := handler.NewJobHandler(deps.Jobs)
	jobs := e.Group("/api/jobs")
	jobs.POST("", jobHandler.Create)
	jobs.GET("", jobHandler.List)
	jobs.GET("/:id", jobHandler.Get)

	// --- Profiles ---
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	profiles := e.Group("/api/profiles")
	profiles.POST("", profileHandler.Create)
	profiles.GET("/:id", profileHandler.Get)
	profiles.GET("/user/:userId", profileHandler.GetByUser)

	// --- Operational endpoints (public) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Required, deps.Optional).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{registry, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func corsConfig(origins []string) echomiddleware.CORSConfig {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
		MaxAge:       int((12 * time.Hour).Seconds()),
	}
}

// authRateLimiter throttles credential endpoints per client IP.
func authRateLimiter(opts Options) []echo.MiddlewareFunc {
	if opts.AuthRateLimit <= 0 {
		return nil
	}
	burst := opts.AuthRateBurst
	if burst <= 0 {
		burst = 1
	}
	return []echo.MiddlewareFunc{echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(opts.AuthRateLimit),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
		},
	})}
}
