package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SGK112/crm-backend/internal/adapter/http/handlers"
)

const PathBilling = "/billing"

func addBillingRoutes(rg *gin.RouterGroup, billingHandler *handlers.BillingHandler) {
	billing := rg.Group(PathBilling)
	{
		billing.POST("/create-checkout-session", billingHandler.CreateCheckoutSession)
		billing.GET("/subscription", billingHandler.GetSubscription)
		billing.POST("/cancel-subscription", billingHandler.CancelSubscription)
		billing.POST("/reactivate-subscription", billingHandler.ReactivateSubscription)
		billing.GET("/payment-methods", billingHandler.ListPaymentMethods)
		billing.GET("/invoices", billingHandler.ListPayments)
		billing.POST("/customer-portal", billingHandler.CustomerPortalURL)
	}
}
