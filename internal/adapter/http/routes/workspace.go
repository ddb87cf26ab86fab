package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SGK112/crm-backend/internal/adapter/http/handlers"
)

func addWorkspaceRoutes(
	rg *gin.RouterGroup,
	onboardingHandler *handlers.OnboardingHandler,
	notificationHandler *handlers.NotificationHandler,
	financialHandler *handlers.FinancialHandler,
) {
	onboarding := rg.Group("/onboarding")
	{
		onboarding.GET("", onboardingHandler.State)
		onboarding.POST("/next", onboardingHandler.Next)
		onboarding.POST("/previous", onboardingHandler.Previous)
		onboarding.POST("/skip", onboardingHandler.Skip)
		onboarding.POST("/complete", onboardingHandler.Complete)
	}

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", notificationHandler.List)
		notifications.POST("", notificationHandler.Create)
		notifications.PATCH("/mark-all-read", notificationHandler.MarkAllRead)
		notifications.PATCH("/:id/read", notificationHandler.MarkRead)
		notifications.DELETE("/:id", notificationHandler.Delete)
	}
	rg.GET("/inbox/stats", notificationHandler.InboxStats)

	financial := rg.Group("/financial")
	{
		financial.GET("/summary", financialHandler.Summary)
		financial.GET("/items", financialHandler.ListItems)
	}
}
