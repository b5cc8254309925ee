package handlers

import (
	"github.com/SscSPs/contabilidad_app/cmd/docs"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/SscSPs/contabilidad_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouteOptions carries the optional collaborators of the API routes.
type RouteOptions struct {
	// Middlewares run on /api/v1 after authentication, e.g. rate limiting and analytics.
	Middlewares []gin.HandlerFunc
	// ScanEnqueuer enables POST /diagnostics/anomalies/scan when set.
	ScanEnqueuer ScanEnqueuer
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouteOptions,
) {
	r.GET("/health", getHealth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, opts)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	opts RouteOptions,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	v1.Use(opts.Middlewares...)

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, service.User)
	registerAccountRoutes(v1, service.Account)
	registerThirdPartyRoutes(v1, service.ThirdParty)
	registerJournalRoutes(v1, service.Journal)
	registerVoucherRoutes(v1, service.Voucher)
	registerTaxRoutes(v1, service.Tax)
	registerReportingRoutes(v1, service.Reporting)
	registerDiagnosticsRoutes(v1, service.Anomaly, service.User, opts.ScanEnqueuer)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
