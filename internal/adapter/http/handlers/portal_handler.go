package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/SGK112/crm-backend/internal/adapter/http/dto/request"
	response "github.com/SGK112/crm-backend/internal/adapter/http/dto/response"
	"github.com/SGK112/crm-backend/internal/adapter/http/middleware"
	"github.com/SGK112/crm-backend/internal/usecase"
	"github.com/SGK112/crm-backend/pkg"
)

var errInvalidPortalPayload = pkg.NewDomainErrorSimple("INVALID_PORTAL_INPUT", "Invalid portal payload", http.StatusBadRequest)

// PortalHandler is the client-facing surface: share-token or password auth,
// estimate viewing and the accept/reject decision.

type PortalHandler struct {
	usecase usecase.IPortalUseCase
}

func NewPortalHandler(uc usecase.IPortalUseCase) *PortalHandler {
	return &PortalHandler{usecase: uc}
}

func (h *PortalHandler) Auth(c *gin.Context) {
	var payload request.PortalAuthRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPortalPayload.HTTPStatus, errInvalidPortalPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Auth(c.Request.Context(), payload.ClientID, payload.Token, payload.Password)
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPortalSession(session))
}

// GetEstimate fetches an estimate for the authenticated client. The first
// fetch of a sent estimate flips it to viewed.
func (h *PortalHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetEstimate(c.Request.Context(), middleware.Subject(c), c.Param("id"))
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *PortalHandler) Accept(c *gin.Context) {
	h.decide(c, true)
}

func (h *PortalHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *PortalHandler) decide(c *gin.Context, accepted bool) {
	estimate, err := h.usecase.Decide(c.Request.Context(), middleware.Subject(c), c.Param("id"), accepted)
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func mapPortalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials), errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPortalAuthFailed):
		return pkg.NewDomainErrorSimple("PORTAL_AUTH_FAILED", "Authentication failed", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPortalForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Estimate does not belong to this client", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateConverted):
		return pkg.NewDomainErrorSimple("ESTIMATE_CONVERTED", "Estimate already converted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
