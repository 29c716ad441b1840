package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Vinicios-DRH/iap-convencao-amazonica/docs"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/handlers"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/middleware"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/http/validation"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/adapter/persistence/repository"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/pricing"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/database"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/export"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/payments"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/qrcode"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/storage"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase/interfaces"
)

// App holds the use cases served by the router.
type App struct {
	Auth          usecase.IAuthUseCase
	Registrations usecase.IRegistrationUseCase
	CardPayments  usecase.ICardPaymentUseCase
	UserAdmin     usecase.IUserAdminUseCase
	Audit         usecase.IAuditUseCase
}

// Run wires the application and blocks serving HTTP on cfg.Port.
func Run(ctx context.Context, cfg *config.Config) error {
	app, err := Build(ctx, cfg)
	if err != nil {
		return err
	}
	router := NewRouter(cfg, app)
	logger.For("http").WithField("port", cfg.Port).Info("listening")
	return router.Run(":" + cfg.Port)
}

// Build connects the infrastructure and assembles the use cases.
func Build(ctx context.Context, cfg *config.Config) (App, error) {
	log := logger.For("bootstrap")

	ddb, err := database.Connect(ctx, cfg.DynamoDB)
	if err != nil {
		return App{}, err
	}
	store, err := storage.NewStore(ctx, cfg.Storage)
	if err != nil {
		return App{}, errors.Wrap(err, "proof storage")
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago)
	if err != nil {
		log.WithError(err).Warn("Mercado Pago gateway not configured; card payments disabled")
	} else {
		gateway = mpGateway
	}

	tables := cfg.DynamoDB
	userRepo := repository.NewUserDynamoRepository(ddb, tables.UsersTable, tables.UniquesTable)
	roleRepo := repository.NewRoleDynamoRepository(ddb, tables.RolesTable)
	registrationRepo := repository.NewRegistrationDynamoRepository(ddb, tables.RegistrationsTable, tables.UniquesTable)
	paymentRepo := repository.NewCardPaymentDynamoRepository(ddb, tables.PaymentsTable)
	auditRepo := repository.NewAuditLogDynamoRepository(ddb, tables.AuditLogsTable)

	registrations := usecase.NewRegistrationUseCase(
		registrationRepo,
		auditRepo,
		store,
		qrcode.NewGenerator(),
		export.NewXLSXExporter(),
		pricing.NewCalculator(cfg.Pricing),
		usecase.RegistrationSettings{
			Pix:           cfg.Pix,
			PixNotice:     cfg.Event.PixNotice,
			MaxProofBytes: cfg.Storage.MaxProofBytes,
			Location:      cfg.Location(),
		},
	)

	return App{
		Auth:          usecase.NewAuthUseCase(userRepo, roleRepo),
		Registrations: registrations,
		CardPayments:  usecase.NewCardPaymentUseCase(paymentRepo, registrationRepo, auditRepo, gateway, cfg.MercadoPago),
		UserAdmin:     usecase.NewUserAdminUseCase(userRepo, roleRepo, auditRepo),
		Audit:         usecase.NewAuditUseCase(auditRepo),
	}, nil
}

// NewRouter registers every route under /v1 plus the swagger UI.
func NewRouter(cfg *config.Config, app App) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	validation.Setup()

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	tokens := middleware.NewTokenManager(cfg.SecretKey, cfg.SessionTTL, cfg.RememberTTL)
	auth := middleware.NewAuth(tokens, app.Auth, cfg.IsProduction())

	v1 := router.Group("/v1")
	v1.Use(auth.Authenticate())

	addPublicRoutes(v1, handlers.NewEventHandler(app.Registrations, cfg.Event, cfg.Pricing.MaxInstallments))
	addAuthRoutes(v1, auth, handlers.NewAuthHandler(app.Auth, auth))
	addRegistrationRoutes(v1, auth,
		handlers.NewRegistrationHandler(app.Registrations),
		handlers.NewCardPaymentHandler(app.CardPayments, app.Registrations, cfg.MercadoPago.Mock),
	)
	addAdminRoutes(v1, auth,
		handlers.NewAdminHandler(app.Registrations, app.Audit, cfg.Location()),
		handlers.NewUserAdminHandler(app.UserAdmin),
	)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.For("http").WithField("path", c.Request.URL.Path).Errorf("recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
