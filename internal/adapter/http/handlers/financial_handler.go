package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/SGK112/crm-backend/internal/adapter/http/dto/response"
	"github.com/SGK112/crm-backend/internal/adapter/http/middleware"
	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase"
	"github.com/SGK112/crm-backend/pkg"
)

type FinancialHandler struct {
	usecase usecase.IFinancialUseCase
}

func NewFinancialHandler(uc usecase.IFinancialUseCase) *FinancialHandler {
	return &FinancialHandler{usecase: uc}
}

func (h *FinancialHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		appErr := mapFinancialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialSummary(summary))
}

// ListItems returns the flattened money rows, optionally filtered by kind
// (?kind=estimate|invoice).
func (h *FinancialHandler) ListItems(c *gin.Context) {
	filter := entities.FinancialFilter{
		WorkspaceID: middleware.Subject(c),
		Kind:        entities.FinancialItemKind(c.Query("kind")),
	}
	items, err := h.usecase.ListItems(c.Request.Context(), filter)
	if err != nil {
		appErr := mapFinancialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialItems(items))
}

func mapFinancialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkspaceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
