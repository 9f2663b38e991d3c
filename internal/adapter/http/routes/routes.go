package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "veredicto/docs" // swag generated docs
	"veredicto/internal/adapter/http/handlers"
	"veredicto/internal/adapter/persistence/repository"
	"veredicto/internal/infrastructure/database"
	"veredicto/internal/infrastructure/delivery"
	"veredicto/internal/infrastructure/locking"
	"veredicto/internal/infrastructure/observability"
	"veredicto/internal/infrastructure/payments"
	"veredicto/internal/infrastructure/synthesis"
	"veredicto/internal/usecase"
	"veredicto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run wires the dependency graph, starts the fulfillment worker and serves.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	reportRepo := repository.NewReportDynamoRepository(ddb)

	stripeGateway, mpGateway := buildGateways()
	checkoutGateway := selectCheckoutGateway(stripeGateway, mpGateway)
	if checkoutGateway == nil {
		log.Printf("[routes] WARNING no payment gateway configured; checkout endpoints will fail")
	}

	fulfillment := buildFulfillment(reportRepo)
	fulfillment.Start(context.Background())

	reportUseCase := usecase.NewReportUseCase(reportRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(reportRepo, checkoutGateway, usecase.LoadPriceTableFromEnv())

	reportHandler := handlers.NewReportHandler(reportUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)

	observability.SetAppInfo("veredicto")

	root := router.Group("")
	addHealthRoutes(root)
	addPaywallRoutes(root, reportHandler, checkoutHandler)
	addWebhookRoutes(root, reportRepo, fulfillment, stripeGateway, mpGateway)
}

// buildGateways constructs every gateway whose credentials are present. Both
// can be live at once; each keeps its own webhook endpoint.
func buildGateways() (*payments.StripeGateway, *payments.MercadoPagoGateway) {
	var stripeGateway *payments.StripeGateway
	if sg, err := payments.NewStripeGatewayFromEnv(); err != nil {
		log.Printf("[routes] Stripe gateway not configured: %v", err)
	} else {
		stripeGateway = sg
	}

	var mpGateway *payments.MercadoPagoGateway
	if mg, err := payments.NewMercadoPagoGatewayFromEnv(); err != nil {
		log.Printf("[routes] Mercado Pago gateway not configured: %v", err)
	} else {
		mpGateway = mg
	}
	return stripeGateway, mpGateway
}

// selectCheckoutGateway picks the provider new checkout sessions go through.
func selectCheckoutGateway(stripeGateway *payments.StripeGateway, mpGateway *payments.MercadoPagoGateway) interfaces.ICheckoutGateway {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_PROVIDER")))
	switch provider {
	case "mercadopago":
		if mpGateway != nil {
			return mpGateway
		}
	case "stripe", "":
		if stripeGateway != nil {
			return stripeGateway
		}
	default:
		log.Printf("[routes] unknown PAYMENT_PROVIDER=%q", provider)
	}

	// Fall back to whichever one is configured.
	if stripeGateway != nil {
		return stripeGateway
	}
	if mpGateway != nil {
		return mpGateway
	}
	return nil
}

func buildFulfillment(reportRepo interfaces.IReportRepository) *usecase.FulfillmentUseCase {
	var mailer interfaces.IReportMailer
	if m, err := delivery.NewResendMailerFromEnv(); err != nil {
		log.Printf("[routes] mailer not configured: %v", err)
	} else {
		mailer = m
	}

	var lock interfaces.ISweepLock
	if l, err := locking.NewSweepLockFromEnv(); err != nil {
		log.Printf("[routes] sweep lock not configured: %v", err)
	} else if l != nil {
		lock = l
	}

	return usecase.NewFulfillmentUseCase(
		reportRepo,
		synthesis.NewTemplateSynthesizer(),
		delivery.NewPDFRenderer(),
		mailer,
		lock,
		usecase.LoadFulfillmentConfigFromEnv(),
	)
}

func addWebhookRoutes(
	rg *gin.RouterGroup,
	reportRepo interfaces.IReportRepository,
	queue interfaces.IFulfillmentQueue,
	stripeGateway *payments.StripeGateway,
	mpGateway *payments.MercadoPagoGateway,
) {
	if stripeGateway != nil {
		h := handlers.NewWebhookHandler(usecase.NewWebhookUseCase(reportRepo, stripeGateway, queue))
		// Both spellings are live; Stripe dashboards configured against either
		// keep working.
		rg.POST(PathStripeWebhook, h.Handle)
		rg.POST(PathStripeWebhookAlias, h.Handle)
	}
	if mpGateway != nil {
		h := handlers.NewWebhookHandler(usecase.NewWebhookUseCase(reportRepo, mpGateway, queue))
		rg.POST(PathMercadoPagoWebhook, h.Handle)
	}
}

func addHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"service": "veredicto-api"})
	})
	rg.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	rg.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
