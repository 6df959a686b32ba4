package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running and report the configured precision",
		Tags:        []string{"health"},
	}, app.handlePing)

	huma.Register(app.api, huma.Operation{
		OperationID: "convert",
		Method:      http.MethodPost,
		Path:        "/convert",
		Summary:     "Convert a value",
		Description: "Convert a value between two units of the same measurement type and round it to the configured precision",
		Tags:        []string{"conversion"},
	}, app.handleConvert)

	huma.Register(app.api, huma.Operation{
		OperationID: "list-units",
		Method:      http.MethodGet,
		Path:        "/units",
		Summary:     "List supported units",
		Description: "List every conversion type with the unit codes it accepts",
		Tags:        []string{"conversion"},
	}, app.handleListUnits)

	// Prometheus metrics are served outside of the OpenAPI surface
	app.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(app.metrics.registry, promhttp.HandlerOpts{})))
}
