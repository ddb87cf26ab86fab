package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SGK112/crm-backend/internal/usecase/interfaces"
	"github.com/SGK112/crm-backend/pkg"
)

const (
	// ScopeStaff marks dashboard sessions; ScopePortal marks client portal
	// sessions issued by the portal auth endpoint.
	ScopeStaff  = "staff"
	ScopePortal = "portal"

	// ContextSubject is the context key under which the verified token
	// subject (user id or client id) is stored.
	ContextSubject = "auth_subject"
	ContextScope   = "auth_scope"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
var errForbiddenScope = pkg.NewDomainErrorSimple("FORBIDDEN", "Token scope not allowed here", http.StatusForbidden)

// RequireAuth verifies the Authorization bearer token and pins the route
// group to a scope. The subject lands in the context for handlers.
func RequireAuth(tokens interfaces.ITokenMaker, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		subject, tokenScope, err := tokens.VerifyToken(strings.TrimSpace(header[len(prefix):]))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if tokenScope != scope {
			c.AbortWithStatusJSON(errForbiddenScope.HTTPStatus, errForbiddenScope.ToHTTPError())
			return
		}

		c.Set(ContextSubject, subject)
		c.Set(ContextScope, tokenScope)
		c.Next()
	}
}

// Subject returns the verified token subject for the request.
func Subject(c *gin.Context) string {
	return c.GetString(ContextSubject)
}
