package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/routes"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
)

// @title           Convenção Jovem Amazônica API
// @version         1.0
// @description     Event registration with Pix BR Code payments, card checkout and back-office review.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logger.Setup(cfg.LogLevel, cfg.LogJSON)

	if err := routes.Run(context.Background(), cfg); err != nil {
		logrus.WithError(err).Fatal("failed to start the application")
	}
}
