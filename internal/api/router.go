package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/reviewhub/item-reviews/docs"
	"github.com/reviewhub/item-reviews/internal/api/handler"
	"github.com/reviewhub/item-reviews/internal/api/middleware"
	"github.com/reviewhub/item-reviews/internal/core/ports"
)

// Dependencies wires the services behind the HTTP routes.
type Dependencies struct {
	Auth     ports.AuthService
	Items    ports.ItemService
	Reviews  ports.ReviewService
	Comments ports.CommentService
	Tokens   ports.TokenVerifier

	// Health lists the dependencies checked by /health/ready.
	Health map[string]handler.Pinger

	Log zerolog.Logger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	itemHandler := handler.NewItemHandler(d.Items)
	reviewHandler := handler.NewReviewHandler(d.Reviews)
	commentHandler := handler.NewCommentHandler(d.Comments)
	authMiddleware := middleware.Auth(d.Tokens)

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Catalog routes ---
	// Owner-only routes carry a :userId segment that is not trusted; the
	// caller is always the token's identity.
	items := api.Group("/items")
	items.GET("", itemHandler.List)
	items.GET("/:itemId", itemHandler.Get)
	items.GET("/:itemId/reviews", reviewHandler.ListForItem)
	items.GET("/:itemId/reviews/:reviewId", reviewHandler.Get)
	items.POST("/:itemId/reviews", reviewHandler.Create, authMiddleware)
	items.PUT("/:userId/reviews/:reviewId", reviewHandler.Update, authMiddleware)
	items.DELETE("/:userId/reviews/:reviewId", reviewHandler.Delete, authMiddleware)
	items.POST("/:itemId/reviews/:reviewId/comments", commentHandler.Create, authMiddleware)
	items.PUT("/:userId/comments/:commentId", commentHandler.Update, authMiddleware)
	items.DELETE("/:userId/comments/:commentId", commentHandler.Delete, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(d.Health)
	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			switch {
			case v.Status >= http.StatusInternalServerError:
				ev = log.Error().Err(v.Error)
			case v.Status >= http.StatusBadRequest:
				ev = log.Warn()
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
