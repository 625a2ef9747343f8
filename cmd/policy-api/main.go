package main

import (
	"log"

	"insurance_portal/internal/adapter/gateway"
	"insurance_portal/internal/adapter/http/handlers"
	"insurance_portal/internal/adapter/http/routes"
	"insurance_portal/internal/adapter/persistence/repository"
	"insurance_portal/internal/infrastructure/config"
	"insurance_portal/internal/infrastructure/database"
	"insurance_portal/internal/infrastructure/logger"
	"insurance_portal/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Policy API
// @version         1.0
// @description     Quote conversion and issued policies.

// @host localhost:8083

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load(config.ServicePolicy)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logg, err := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.Service)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	db, err := database.OpenSQLite(cfg.DBPath, cfg.Environment, logg, repository.PolicyModels()...)
	if err != nil {
		logg.Fatal("[policy][main] database unavailable", zap.Error(err))
	}
	policies := repository.NewPolicyGormRepository(db)
	quotes := gateway.NewQuotingClient(cfg.QuotingServiceURL, cfg.InternalServiceKey, cfg.UpstreamTimeout, logg)

	router := routes.NewRouter(cfg, logg, routes.Handlers{
		Conversions: handlers.NewConversionHandler(usecase.NewConversionUseCase(quotes, policies, logg)),
		Policies:    handlers.NewPolicyHandler(usecase.NewPolicyUseCase(policies, logg)),
	})

	logg.Info("[policy][main] listening", zap.Int("port", cfg.Port), zap.String("quoting", cfg.QuotingServiceURL))
	if err := routes.Run(router, cfg.Port); err != nil {
		logg.Fatal("[policy][main] failed to start", zap.Error(err))
	}
}
