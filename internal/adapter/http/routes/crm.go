package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SGK112/crm-backend/internal/adapter/http/handlers"
)

const (
	PathEstimates = "/estimates"
	PathInvoices  = "/invoices"
	PathClients   = "/clients"
	PathProjects  = "/projects"
	PathDocuments = "/documents"
)

func addCRMRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	invoiceHandler *handlers.InvoiceHandler,
	clientHandler *handlers.ClientHandler,
	projectHandler *handlers.ProjectHandler,
	documentHandler *handlers.DocumentHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.Create)
		estimates.GET("", estimateHandler.List)
		// Registered before /:id so gin does not treat "export" as an id.
		estimates.GET("/export", documentHandler.EstimateBookXLSX)
		estimates.GET("/:id", estimateHandler.GetByID)
		estimates.DELETE("/:id", estimateHandler.Delete)
		estimates.POST("/:id/recalc", estimateHandler.Recalc)
		estimates.POST("/:id/send", estimateHandler.Send)
		estimates.POST("/:id/convert", estimateHandler.Convert)
		estimates.POST("/:id/decision", estimateHandler.Decide)
		estimates.GET("/:id/pdf", documentHandler.EstimatePDF)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/:id", invoiceHandler.GetByID)
		invoices.GET("/:id/pdf", documentHandler.InvoicePDF)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.Search)
		clients.POST("", clientHandler.Create)
		clients.POST("/from-query", clientHandler.CreateFromQuery)
		clients.GET("/:id", clientHandler.GetByID)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	projects := rg.Group(PathProjects)
	{
		projects.GET("", projectHandler.List)
		projects.POST("", projectHandler.Create)
		projects.GET("/:id", projectHandler.GetByID)
		projects.POST("/:id/estimates", projectHandler.CreateSeededEstimate)
	}

	docs := rg.Group(PathDocuments)
	{
		docs.POST("", documentHandler.Store)
		docs.GET("/:key/url", documentHandler.DownloadURL)
	}
}
