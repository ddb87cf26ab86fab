package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SGK112/crm-backend/internal/adapter/http/handlers"
	"github.com/SGK112/crm-backend/internal/adapter/http/middleware"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"
)

const PathPortal = "/portal"

// Portal auth is public; everything after it requires a portal-scoped
// session token.
func addPortalRoutes(rg *gin.RouterGroup, portalHandler *handlers.PortalHandler, tokens interfaces.ITokenMaker) {
	portal := rg.Group(PathPortal)
	portal.POST("/auth", portalHandler.Auth)

	session := portal.Group("")
	session.Use(middleware.RequireAuth(tokens, middleware.ScopePortal))
	{
		session.GET("/estimates/:id", portalHandler.GetEstimate)
		session.POST("/estimates/:id/accept", portalHandler.Accept)
		session.POST("/estimates/:id/reject", portalHandler.Reject)
	}
}
