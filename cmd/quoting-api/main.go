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

// @title           Quoting API
// @version         1.0
// @description     Individual and group quotes with attached benefits.

// @host localhost:8082

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load(config.ServiceQuoting)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logg, err := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.Service)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	db, err := database.OpenSQLite(cfg.DBPath, cfg.Environment, logg, repository.QuotingModels()...)
	if err != nil {
		logg.Fatal("[quoting][main] database unavailable", zap.Error(err))
	}
	quotes := repository.NewQuoteGormRepository(db)
	catalog := gateway.NewTemplateCatalogClient(cfg.BenefitDesignerURL, cfg.InternalServiceKey, cfg.UpstreamTimeout, logg)

	router := routes.NewRouter(cfg, logg, routes.Handlers{
		Quotes:   handlers.NewQuoteHandler(usecase.NewQuoteUseCase(quotes, logg)),
		Benefits: handlers.NewBenefitHandler(usecase.NewQuoteBenefitUseCase(quotes, quotes, catalog, logg)),
	})

	logg.Info("[quoting][main] listening", zap.Int("port", cfg.Port), zap.String("designer", cfg.BenefitDesignerURL))
	if err := routes.Run(router, cfg.Port); err != nil {
		logg.Fatal("[quoting][main] failed to start", zap.Error(err))
	}
}
