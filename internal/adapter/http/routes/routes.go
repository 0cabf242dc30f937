package routes

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "permit_tracker/docs" // generated by swag init
	"permit_tracker/internal/adapter/http/handlers"
	"permit_tracker/internal/adapter/http/middleware"
	repository2 "permit_tracker/internal/adapter/persistence/repository"
	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/infrastructure/config"
	"permit_tracker/internal/infrastructure/database"
	"permit_tracker/internal/infrastructure/metrics"
	"permit_tracker/internal/infrastructure/payments"
	"permit_tracker/internal/infrastructure/storage"
	"permit_tracker/internal/usecase"
	"permit_tracker/internal/usecase/interfaces"
)

// Handlers groups everything mounted under /v1.
type Handlers struct {
	Applications *handlers.ApplicationHandler
	FeeSchedules *handlers.FeeScheduleHandler
	Payments     *handlers.PaymentHandler
	Documents    *handlers.DocumentHandler
	Reviews      *handlers.ReviewHandler
	Applicants   *handlers.ApplicantHandler
	Catalog      *handlers.CatalogHandler
}

// NewRouter builds the gin engine with middlewares, docs, metrics and the /v1 API.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, cfg)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	api := v1.Group("")
	api.Use(middleware.Actor(cfg.Auth.JWTSecret))
	api.Use(middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst).Handler())
	addApplicationRoutes(api, h)
	addPaymentRoutes(api, h.FeeSchedules, h.Payments)
	addCatalogRoutes(api, h.Catalog)
	return router
}

// Build connects the infrastructure, wires repositories and use cases and returns the router.
// The returned cleanup releases the storage client.
func Build(ctx context.Context, cfg config.Config) (*gin.Engine, func(), error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	t := cfg.Tables

	applicationRepo := repository2.NewApplicationDynamoRepository(ddb, t.Applications, t.StatusHistory)
	historyRepo := repository2.NewStatusHistoryDynamoRepository(ddb, t.StatusHistory)
	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb, t.Sequences)
	documentRepo := repository2.NewDocumentDynamoRepository(ddb, t.Documents)
	reviewRepo := repository2.NewReviewDynamoRepository(ddb, t.Reviews)
	applicantRepo := repository2.NewApplicantDynamoRepository(ddb, t.Applicants)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb, t.Payments)
	transactionRepo := repository2.NewTransactionDynamoRepository(ddb, t.Transactions)
	feeScheduleRepo := repository2.NewFeeScheduleDynamoRepository(ddb, t.FeeSchedules)
	statusRepo := repository2.NewStatusDynamoRepository(ddb, t.Statuses)
	permitTypeRepo := repository2.NewPermitTypeDynamoRepository(ddb, t.PermitTypes)
	departmentRepo := repository2.NewDepartmentDynamoRepository(ddb, t.Departments)
	propertyRepo := repository2.NewPropertyDynamoRepository(ddb, t.Properties)
	userRepo := repository2.NewUserDynamoRepository(ddb, t.Users)
	roleRepo := repository2.NewRoleDynamoRepository(ddb, t.Roles)

	cleanup := func() {}
	var fileStorage interfaces.IFileStorage
	if cfg.Storage.Bucket != "" {
		gcs, err := storage.NewGCSService(ctx, cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			log.Warn().Err(err).Msg("[routes] document storage not configured")
		} else {
			fileStorage = gcs
			cleanup = func() {
				if err := gcs.Close(); err != nil {
					log.Warn().Err(err).Msg("[routes] close storage client")
				}
			}
		}
	} else {
		log.Info().Msg("[routes] GCS_BUCKET empty; document uploads disabled")
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, cfg.Payments.Mock)
	if err != nil {
		log.Warn().Err(err).Msg("[routes] Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	applicationUseCase := usecase.NewApplicationUseCase(usecase.ApplicationRepositories{
		Applications: applicationRepo,
		History:      historyRepo,
		Sequences:    sequenceRepo,
		Statuses:     statusRepo,
		PermitTypes:  permitTypeRepo,
		Properties:   propertyRepo,
		Documents:    documentRepo,
		Reviews:      reviewRepo,
		Applicants:   applicantRepo,
		Payments:     paymentRepo,
	}, fileStorage, entities.DefaultWorkflow())
	taxRate := entities.Rate(cfg.TaxRateBasisPoints)
	feeScheduleUseCase := usecase.NewFeeScheduleUseCase(feeScheduleRepo, permitTypeRepo, applicationRepo, taxRate)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, transactionRepo, applicationRepo, feeScheduleRepo, sequenceRepo, paymentGateway, usecase.PaymentOptions{
		TaxRate:       taxRate,
		PayerEmail:    cfg.Payments.PayerEmail,
		StrictPayload: !cfg.Payments.Mock,
	})
	documentUseCase := usecase.NewDocumentUseCase(documentRepo, applicationRepo, fileStorage, usecase.DocumentOptions{
		VersionThresholdKB: cfg.DocumentVersionThresholdKB,
		MaxUploadBytes:     cfg.DocumentMaxUploadBytes,
		SignedURLTTL:       cfg.Storage.SignedURLTTL,
	})
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, applicationRepo, departmentRepo, userRepo)
	applicantUseCase := usecase.NewApplicantUseCase(applicantRepo, applicationRepo, userRepo)
	catalogUseCase := usecase.NewCatalogUseCase(usecase.CatalogRepositories{
		Statuses:    statusRepo,
		PermitTypes: permitTypeRepo,
		Departments: departmentRepo,
		Properties:  propertyRepo,
		Users:       userRepo,
		Roles:       roleRepo,
	})

	if cfg.SeedCatalog {
		created, err := catalogUseCase.SeedStatuses(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("[routes] seed statuses failed")
		} else {
			log.Info().Int("created", created).Msg("[routes] default statuses seeded")
		}
	}

	router := NewRouter(cfg, Handlers{
		Applications: handlers.NewApplicationHandler(applicationUseCase),
		FeeSchedules: handlers.NewFeeScheduleHandler(feeScheduleUseCase),
		Payments:     handlers.NewPaymentHandler(paymentUseCase, cfg.Payments.Mock),
		Documents:    handlers.NewDocumentHandler(documentUseCase),
		Reviews:      handlers.NewReviewHandler(reviewUseCase),
		Applicants:   handlers.NewApplicantHandler(applicantUseCase),
		Catalog:      handlers.NewCatalogHandler(catalogUseCase),
	})
	return router, cleanup, nil
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	if cfg.DocumentMaxUploadBytes > 0 {
		router.MaxMultipartMemory = cfg.DocumentMaxUploadBytes
	}
}
