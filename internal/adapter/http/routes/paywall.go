package routes

import (
	"veredicto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAnalyze               = "/analyze"
	PathReport                = "/report/:id"
	PathCheckoutSession       = "/create-checkout-session"
	PathRepairCheckoutSession = "/create-repair-checkout-session"
	PathStripeWebhook         = "/stripe-webhook"
	PathStripeWebhookAlias    = "/stripe/webhook"
	PathMercadoPagoWebhook    = "/mercadopago-webhook"
)

func addPaywallRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler, checkoutHandler *handlers.CheckoutHandler) {
	rg.POST(PathAnalyze, reportHandler.Analyze)
	rg.GET(PathReport, reportHandler.GetReport)

	rg.POST(PathCheckoutSession, checkoutHandler.CreateCheckoutSession)
	rg.POST(PathRepairCheckoutSession, checkoutHandler.CreateRepairCheckoutSession)
}
