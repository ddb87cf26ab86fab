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

// OnboardingHandler exposes the setup wizard. A gated Next is not an error
// condition for the client: the unchanged state comes back with 200 so the
// wizard can render the gate message.

type OnboardingHandler struct {
	usecase usecase.IOnboardingUseCase
}

func NewOnboardingHandler(uc usecase.IOnboardingUseCase) *OnboardingHandler {
	return &OnboardingHandler{usecase: uc}
}

func (h *OnboardingHandler) State(c *gin.Context) {
	state, err := h.usecase.State(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		appErr := mapOnboardingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOnboardingState(state))
}

func (h *OnboardingHandler) Next(c *gin.Context) {
	var payload request.OnboardingProfileRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	state, err := h.usecase.Next(c.Request.Context(), middleware.Subject(c), payload.ToProfile())
	if err != nil && !errors.Is(err, usecase.ErrOnboardingStepGated) {
		appErr := mapOnboardingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOnboardingState(state))
}

func (h *OnboardingHandler) Previous(c *gin.Context) {
	state, err := h.usecase.Previous(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		appErr := mapOnboardingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOnboardingState(state))
}

func (h *OnboardingHandler) Skip(c *gin.Context) {
	state, err := h.usecase.Skip(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		appErr := mapOnboardingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOnboardingState(state))
}

func (h *OnboardingHandler) Complete(c *gin.Context) {
	var payload request.OnboardingProfileRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	state, err := h.usecase.Complete(c.Request.Context(), middleware.Subject(c), payload.ToProfile())
	if err != nil {
		appErr := mapOnboardingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOnboardingState(state))
}

func mapOnboardingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrIncompleteProfile):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
