package routes

import (
	"strconv"

	_ "insurance_portal/docs"
	"insurance_portal/internal/adapter/http/handlers"
	"insurance_portal/internal/adapter/http/middleware"
	"insurance_portal/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers lists what a service mounts under /v1. Nil handlers are skipped,
// so each service passes only its own.
type Handlers struct {
	Categories  *handlers.CategoryHandler
	Templates   *handlers.TemplateHandler
	Quotes      *handlers.QuoteHandler
	Benefits    *handlers.BenefitHandler
	Conversions *handlers.ConversionHandler
	Policies    *handlers.PolicyHandler
}

// NewRouter builds the gin engine shared by every service: recovery, request
// logging, metrics and auth, then the probe, metrics and swagger endpoints.
func NewRouter(cfg config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, cfg, logger)

	health := handlers.NewHealthHandler(cfg.Service)
	router.GET("/health", health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	v1.GET("/ping", health.Ping)

	if h.Categories != nil {
		addCategoryRoutes(v1, h.Categories)
	}
	if h.Templates != nil {
		addTemplateRoutes(v1, h.Templates)
	}
	if h.Quotes != nil {
		addQuoteRoutes(v1, h.Quotes)
	}
	if h.Benefits != nil {
		addBenefitRoutes(v1, h.Benefits)
	}
	if h.Conversions != nil {
		addConversionRoutes(v1, h.Conversions)
	}
	if h.Policies != nil {
		addPolicyRoutes(v1, h.Policies)
	}
	return router
}

// Run will start the server
func Run(router *gin.Engine, port int) error {
	return router.Run(":" + strconv.Itoa(port))
}

func setMiddlewares(router *gin.Engine, cfg config.Config, logger *zap.Logger) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[http][recovery] panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics(cfg.Service))
	router.Use(middleware.Auth(middleware.AuthConfig{
		Secret:       cfg.JWTSecret,
		SignInURL:    cfg.SignInURL,
		CookieName:   cfg.AuthCookieName,
		AllowedRoles: cfg.AllowedRoles,
		ServiceKey:   cfg.InternalServiceKey,
		Secure:       cfg.IsProduction(),
	}, logger))
}
