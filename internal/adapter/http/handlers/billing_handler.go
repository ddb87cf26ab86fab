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

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// BillingHandler proxies workspace subscription management to the payment
// provider behind the gateway seam.

type BillingHandler struct {
	usecase usecase.IBillingUseCase
}

func NewBillingHandler(uc usecase.IBillingUseCase) *BillingHandler {
	return &BillingHandler{usecase: uc}
}

func (h *BillingHandler) CreateCheckoutSession(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.CreateCheckoutSession(c.Request.Context(), middleware.Subject(c), payload.PlanID, payload.Amount, payload.Currency)
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckoutSession(session))
}

func (h *BillingHandler) GetSubscription(c *gin.Context) {
	sub, err := h.usecase.GetSubscription(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubscription(sub))
}

func (h *BillingHandler) CancelSubscription(c *gin.Context) {
	sub, err := h.usecase.CancelSubscription(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubscription(sub))
}

func (h *BillingHandler) ReactivateSubscription(c *gin.Context) {
	sub, err := h.usecase.ReactivateSubscription(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubscription(sub))
}

func (h *BillingHandler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.usecase.ListPaymentMethods(c.Request.Context())
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethods(methods))
}

// ListPayments serves the billing history the dashboard shows under
// "invoices" in the subscription settings.
func (h *BillingHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayments(payments))
}

func (h *BillingHandler) CustomerPortalURL(c *gin.Context) {
	url, err := h.usecase.CustomerPortalURL(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.PortalURLResponse{URL: url})
}

func mapBillingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkspaceID), errors.Is(err, usecase.ErrInvalidCheckoutAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoSubscription):
		return pkg.NewDomainErrorSimple("NO_SUBSCRIPTION", "No subscription for this workspace", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
