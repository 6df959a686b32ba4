package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"

	"unitconv/internal/conversion"
)

// App encapsulates application dependencies
type App struct {
	router            *gin.Engine
	api               huma.API
	logger            *slog.Logger
	metrics           *metrics
	conversionService conversion.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(logger *slog.Logger, ginMode string, conversionService conversion.Service) *App {
	if ginMode != "" {
		gin.SetMode(ginMode)
	}
	app := &App{
		router:            gin.New(),
		logger:            logger.With("component", "api"),
		metrics:           newMetrics(),
		conversionService: conversionService,
	}
	app.router.Use(gin.Recovery(), app.requestLogger())

	// Create Huma API on top of the gin router
	config := huma.DefaultConfig("Unitconv API", "1.0.0")
	config.Info.Description = "Distance, temperature and weight unit conversion"
	config.Servers = []*huma.Server{
		{URL: "http://localhost:8080", Description: "Development server"},
	}
	app.api = humagin.New(app.router, config)

	// Register routes
	app.registerRoutes()

	app.logger.Info("application initialized", "precision", conversionService.Precision())

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// requestLogger logs every request at debug level
func (app *App) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.logger.Debug("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
