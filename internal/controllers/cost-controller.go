package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gym-admin/internal/dto"
	"gym-admin/internal/services"
	apperrors "gym-admin/pkg/errors"
	"gym-admin/pkg/utils"
)

type CostController struct {
	service *services.CostService
	logger  *zap.Logger
}

func NewCostController(service *services.CostService, logger *zap.Logger) *CostController {
	return &CostController{service: service, logger: logger}
}

// View renders the monthly cost table. Month and year filters are
// mutually exclusive and format-checked before any backend call.
func (c *CostController) View(ctx echo.Context) error {
	var q dto.CostFilterDTO
	if err := ctx.Bind(&q); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid query parameters", err, nil), c.logger)
	}
	if err := ctx.Validate(&q); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	view, err := c.service.View(ctx.Request().Context(), q)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, view, "Monthly costs", http.StatusOK)
}

func (c *CostController) Sort(ctx echo.Context) error {
	var payload dto.SortDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, c.service.ToggleSort(payload.Field), "Sort updated", http.StatusOK)
}

func (c *CostController) Recalculate(ctx echo.Context) error {
	if err := c.service.Recalculate(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Monthly costs refreshed!", http.StatusOK)
}

func (c *CostController) YearlyBreakdown(ctx echo.Context) error {
	groups, err := c.service.YearlyBreakdown(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, groups, "Yearly cost breakdown", http.StatusOK)
}

func (c *CostController) DismissToast(ctx echo.Context) error {
	c.service.DismissToast()
	return utils.SuccessResponse(ctx, nil, "Toast dismissed", http.StatusOK)
}
