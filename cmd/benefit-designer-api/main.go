package main

import (
	"context"
	"log"

	"insurance_portal/internal/adapter/http/handlers"
	"insurance_portal/internal/adapter/http/routes"
	"insurance_portal/internal/adapter/persistence/repository"
	"insurance_portal/internal/infrastructure/config"
	"insurance_portal/internal/infrastructure/database"
	"insurance_portal/internal/infrastructure/logger"
	"insurance_portal/internal/usecase"
	"insurance_portal/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Benefit Designer API
// @version         1.0
// @description     Benefit categories and versioned benefit templates.

// @host localhost:8081

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load(config.ServiceBenefitDesigner)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logg, err := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.Service)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	categories, templates, err := openStore(context.Background(), cfg, logg)
	if err != nil {
		logg.Fatal("[benefit-designer][main] store unavailable", zap.String("store", cfg.TemplateStore), zap.Error(err))
	}

	router := routes.NewRouter(cfg, logg, routes.Handlers{
		Categories: handlers.NewCategoryHandler(usecase.NewCategoryUseCase(categories, logg)),
		Templates:  handlers.NewTemplateHandler(usecase.NewTemplateUseCase(templates, categories, logg)),
	})

	logg.Info("[benefit-designer][main] listening", zap.Int("port", cfg.Port), zap.String("store", cfg.TemplateStore))
	if err := routes.Run(router, cfg.Port); err != nil {
		logg.Fatal("[benefit-designer][main] failed to start", zap.Error(err))
	}
}

// openStore picks the template store. Both stores serve the same ports.
func openStore(ctx context.Context, cfg config.Config, logg *zap.Logger) (interfaces.ICategoryRepository, interfaces.ITemplateRepository, error) {
	if cfg.TemplateStore == config.TemplateStoreDynamoDB {
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := repository.EnsureBenefitDesignerTables(ctx, ddb); err != nil {
			return nil, nil, err
		}
		return repository.NewCategoryDynamoRepository(ddb), repository.NewTemplateDynamoRepository(ddb), nil
	}

	db, err := database.OpenSQLite(cfg.DBPath, cfg.Environment, logg, repository.BenefitDesignerModels()...)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewCategoryGormRepository(db), repository.NewTemplateGormRepository(db), nil
}
