package main

import (
	_ "cablequote/docs"
	"cablequote/internal/adapter/http/routes"
	"cablequote/internal/config"
	logx "cablequote/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CableQuote API
// @version         1.0
// @description     Cable products quoting service: catalog, customers, quote workflow, exports and approvals.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Init()
		logx.Fatal().Err(err).Msg("[config] invalid configuration")
	}
	logx.Init(logx.LoggerOpts{Production: cfg.Env.IsProduction()})

	if err := routes.Run(cfg); err != nil {
		logx.Fatal().Err(err).Msg("[http][server] stopped")
	}
}
