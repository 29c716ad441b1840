// Command setup creates the DynamoDB tables, seeds the default roles and
// provisions the first super user from SUPER_ADMIN_EMAIL/SUPER_ADMIN_PASSWORD.
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/persistence/repository"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/database"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logger.Setup(cfg.LogLevel, cfg.LogJSON)
	log := logger.For("setup")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ddb, err := database.Connect(ctx, cfg.DynamoDB)
	if err != nil {
		log.WithError(err).Fatal("dynamodb connect failed")
	}

	created, err := database.EnsureTables(ctx, ddb, database.TableDefinitions(cfg.DynamoDB))
	if err != nil {
		log.WithError(err).Fatal("table creation failed")
	}
	log.WithField("tables", created).Info("tables ready")

	setup := usecase.NewSetupUseCase(
		repository.NewUserDynamoRepository(ddb, cfg.DynamoDB.UsersTable, cfg.DynamoDB.UniquesTable),
		repository.NewRoleDynamoRepository(ddb, cfg.DynamoDB.RolesTable),
	)
	roles, err := setup.SeedRoles(ctx)
	if err != nil {
		log.WithError(err).Fatal("role seeding failed")
	}
	log.WithField("roles", roles).Info("roles seeded")

	if cfg.SuperAdmin.Email == "" {
		log.Warn("SUPER_ADMIN_EMAIL not set; skipping super user")
		return
	}
	changed, err := setup.EnsureSuperUser(ctx, cfg.SuperAdmin.Email, cfg.SuperAdmin.Password)
	if err != nil {
		log.WithError(err).Fatal("super user provisioning failed")
	}
	log.WithField("email", cfg.SuperAdmin.Email).WithField("changed", changed).Info("super user ready")
}
