package routes

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/SGK112/crm-backend/docs" // swag-generated
	"github.com/SGK112/crm-backend/internal/adapter/http/handlers"
	"github.com/SGK112/crm-backend/internal/adapter/http/middleware"
	"github.com/SGK112/crm-backend/internal/adapter/persistence/repository"
	"github.com/SGK112/crm-backend/internal/infrastructure/auth"
	"github.com/SGK112/crm-backend/internal/infrastructure/database"
	"github.com/SGK112/crm-backend/internal/infrastructure/documents"
	"github.com/SGK112/crm-backend/internal/infrastructure/payments"
	"github.com/SGK112/crm-backend/internal/infrastructure/storage"
	"github.com/SGK112/crm-backend/internal/usecase"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", "8080"))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	awsCfg, err := database.NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	subscriptionRepo := repository.NewSubscriptionDynamoRepository(ddb)
	billingPaymentRepo := repository.NewBillingPaymentDynamoRepository(ddb)
	contactRepo := repository.NewContactDynamoRepository(ddb)
	financialRepo := repository.NewFinancialRepository(estimateRepo, invoiceRepo)

	tokenMaker, err := auth.NewJWTTokenMaker(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("failed to create token maker: %v", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	docStorage := storage.NewS3Storage(awsCfg, getenvDefault("DOCUMENTS_BUCKET", "crm-documents"))
	renderer := documents.NewRenderer()

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, invoiceRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, estimateUseCase)
	onboardingUseCase := usecase.NewOnboardingUseCase(userRepo)
	portalUseCase := usecase.NewPortalUseCase(clientRepo, estimateUseCase, tokenMaker)
	billingUseCase := usecase.NewBillingUseCase(subscriptionRepo, billingPaymentRepo, paymentGateway)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	contactUseCase := usecase.NewContactUseCase(contactRepo)
	financialUseCase := usecase.NewFinancialUseCase(financialRepo)
	documentUseCase := usecase.NewDocumentUseCase(estimateRepo, invoiceRepo, clientRepo, renderer, docStorage)

	api := router.Group("/api")
	addPingRoutes(api)

	staff := api.Group("")
	staff.Use(middleware.RequireAuth(tokenMaker, middleware.ScopeStaff))
	addCRMRoutes(staff,
		handlers.NewEstimateHandler(estimateUseCase),
		handlers.NewInvoiceHandler(invoiceUseCase),
		handlers.NewClientHandler(clientUseCase),
		handlers.NewProjectHandler(projectUseCase),
		handlers.NewDocumentHandler(documentUseCase),
	)
	addWorkspaceRoutes(staff,
		handlers.NewOnboardingHandler(onboardingUseCase),
		handlers.NewNotificationHandler(notificationUseCase),
		handlers.NewFinancialHandler(financialUseCase),
	)
	addBillingRoutes(staff, handlers.NewBillingHandler(billingUseCase))

	addPortalRoutes(api, handlers.NewPortalHandler(portalUseCase), tokenMaker)
	api.POST("/contact", handlers.NewContactHandler(contactUseCase).Submit)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{getenvDefault("CORS_ALLOW_ORIGIN", "*")}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	if corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
	}
	router.Use(cors.New(corsConfig))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
