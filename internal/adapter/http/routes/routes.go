package routes

import (
	"context"
	"fmt"

	_ "cablequote/docs"
	"cablequote/internal/adapter/http/handlers"
	"cablequote/internal/adapter/http/middleware"
	"cablequote/internal/config"
	"cablequote/internal/usecase"
	logx "cablequote/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Catalog   *handlers.CatalogHandler
	Quote     *handlers.QuoteHandler
	Dashboard *handlers.DashboardHandler
	Admin     *handlers.AdminHandler

	// Sessions resolves bearer tokens for the protected groups.
	Sessions usecase.IAuthUseCase
}

// Run will start the server
func Run(cfg config.Config) error {
	ctx := context.Background()

	h, closeFn, err := Build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build dependencies: %w", err)
	}
	defer closeFn()

	if cfg.Env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(h)

	logx.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env.String()).Msg("[http][server] listening")
	if err := router.Run(cfg.Addr()); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, h)
	return router
}

func getRoutes(router *gin.Engine, h Handlers) {
	v1 := router.Group("/v1")

	// Rotas publicas
	addPingRoutes(v1)
	addAuthRoutes(v1, h)

	private := v1.Group("", middleware.Auth(h.Sessions))
	addCatalogRoutes(private, h.Catalog)
	addQuoteRoutes(private, h.Quote)
	addDashboardRoutes(private, h.Dashboard)
	addAdminRoutes(private, h.Admin)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
}
