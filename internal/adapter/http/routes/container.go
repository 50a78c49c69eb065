package routes

import (
	"context"
	"fmt"

	"cablequote/internal/adapter/http/handlers"
	"cablequote/internal/adapter/persistence/memory"
	"cablequote/internal/adapter/persistence/redisstore"
	"cablequote/internal/adapter/persistence/repository"
	"cablequote/internal/adapter/persistence/seed"
	"cablequote/internal/config"
	"cablequote/internal/domain/entities"
	"cablequote/internal/infrastructure/database"
	"cablequote/internal/infrastructure/export/excel"
	"cablequote/internal/infrastructure/export/filesink"
	"cablequote/internal/infrastructure/export/pdf"
	"cablequote/internal/usecase"
	"cablequote/internal/usecase/interfaces"
	logx "cablequote/pkg/logger"
)

type repositories struct {
	products  interfaces.IProductRepository
	customers interfaces.ICustomerRepository
	approvals interfaces.IApprovalRepository
	sessions  interfaces.ISessionRepository
	metals    interfaces.IMetalPriceRepository
}

// Build wires repositories, use cases and handlers from cfg. The returned
// func releases external connections.
func Build(ctx context.Context, cfg config.Config) (Handlers, func(), error) {
	closeFn := func() {}

	repos := repositories{metals: memory.NewMetalPriceRepository(entities.DefaultMetalPrices())}

	switch cfg.StorageBackend {
	case config.BackendDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx, cfg.DynamoDB())
		if err != nil {
			return Handlers{}, closeFn, err
		}
		products := repository.NewProductDynamoRepository(ddb, cfg.ProductsTable)
		customers := repository.NewCustomerDynamoRepository(ddb, cfg.CustomersTable)
		approvals := repository.NewApprovalDynamoRepository(ddb, cfg.ApprovalsTable)
		if cfg.DynamoDBSeed {
			if err := repository.Seed(ctx, products, customers, approvals); err != nil {
				return Handlers{}, closeFn, err
			}
		}
		repos.products, repos.customers, repos.approvals = products, customers, approvals
		logx.Info().Str("region", cfg.AWSRegion).Str("endpoint", cfg.DynamoDBEndpoint).Msg("[storage][dynamodb] connected")
	default:
		repos.products = memory.NewProductRepository(seed.Products())
		repos.customers = memory.NewCustomerRepository(seed.Customers())
		repos.approvals = memory.NewApprovalRepository(seed.Approvals())
		logx.Info().Msg("[storage][memory] using seeded in-memory reference data")
	}

	switch cfg.SessionBackend {
	case config.BackendRedis:
		rdb, err := cfg.Redis.New(ctx)
		if err != nil {
			return Handlers{}, closeFn, fmt.Errorf("connect redis: %w", err)
		}
		closeFn = func() {
			if err := rdb.Close(); err != nil {
				logx.Warn().Err(err).Msg("[session][redis] close failed")
			}
		}
		repos.sessions = redisstore.NewSessionRepository(rdb, cfg.SessionTTL)
		logx.Info().Dur("ttl", cfg.SessionTTL).Msg("[session][redis] connected")
	default:
		repos.sessions = memory.NewSessionRepository(cfg.SessionTTL)
	}

	sink, err := filesink.New(cfg.ExportDir)
	if err != nil {
		closeFn()
		return Handlers{}, func() {}, fmt.Errorf("export dir: %w", err)
	}

	return NewHandlers(repos.products, repos.customers, repos.approvals, repos.sessions, repos.metals, sink), closeFn, nil
}

// NewHandlers builds the use cases on top of the given repositories.
func NewHandlers(
	products interfaces.IProductRepository,
	customers interfaces.ICustomerRepository,
	approvals interfaces.IApprovalRepository,
	sessions interfaces.ISessionRepository,
	metals interfaces.IMetalPriceRepository,
	sink interfaces.IDocumentSink,
) Handlers {
	authUseCase := usecase.NewAuthUseCase(sessions, usecase.DefaultCredentials)
	catalogUseCase := usecase.NewCatalogUseCase(products, customers)
	quoteUseCase := usecase.NewQuoteUseCase(sessions, products, customers, approvals)
	dashboardUseCase := usecase.NewDashboardUseCase(products, customers, approvals)
	adminUseCase := usecase.NewAdminUseCase(approvals, metals)
	exportUseCase := usecase.NewExportUseCase(sink, quoteUseCase, catalogUseCase, dashboardUseCase, pdf.New(), excel.New())

	return Handlers{
		Auth:      handlers.NewAuthHandler(authUseCase),
		Catalog:   handlers.NewCatalogHandler(catalogUseCase, exportUseCase),
		Quote:     handlers.NewQuoteHandler(quoteUseCase, exportUseCase),
		Dashboard: handlers.NewDashboardHandler(dashboardUseCase, exportUseCase),
		Admin:     handlers.NewAdminHandler(adminUseCase),
		Sessions:  authUseCase,
	}
}
