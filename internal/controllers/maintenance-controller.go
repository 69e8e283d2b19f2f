package controllers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gym-admin/internal/dto"
	"gym-admin/internal/services"
	apperrors "gym-admin/pkg/errors"
	"gym-admin/pkg/utils"
)

type MaintenanceController struct {
	service *services.MaintenanceService
	logger  *zap.Logger
}

func NewMaintenanceController(service *services.MaintenanceService, logger *zap.Logger) *MaintenanceController {
	return &MaintenanceController{service: service, logger: logger}
}

func (c *MaintenanceController) View(ctx echo.Context) error {
	var q dto.MaintenanceQueryDTO
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
	return utils.SuccessResponse(ctx, view, "Maintenance schedule list", http.StatusOK)
}

func (c *MaintenanceController) Create(ctx echo.Context) error {
	var payload dto.CreateMaintenanceScheduleDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.service.Create(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "Maintenance schedule added successfully!", http.StatusCreated)
}

func (c *MaintenanceController) Sort(ctx echo.Context) error {
	var payload dto.SortDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, c.service.ToggleSort(payload.Field), "Sort updated", http.StatusOK)
}

func (c *MaintenanceController) RequestDelete(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid schedule id", err, nil), c.logger)
	}
	conf := c.service.RequestDelete(id)
	return utils.SuccessResponse(ctx, conf, "Confirmation required", http.StatusAccepted)
}

func (c *MaintenanceController) Confirm(ctx echo.Context) error {
	var payload dto.ConfirmDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := uuid.Parse(payload.ID)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid confirmation id", err, nil), c.logger)
	}
	if err := c.service.Confirm(id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Action confirmed", http.StatusOK)
}

func (c *MaintenanceController) DismissConfirmation(ctx echo.Context) error {
	c.service.DismissConfirmation()
	return utils.SuccessResponse(ctx, nil, "Confirmation dismissed", http.StatusOK)
}

func (c *MaintenanceController) DismissToast(ctx echo.Context) error {
	c.service.DismissToast()
	return utils.SuccessResponse(ctx, nil, "Toast dismissed", http.StatusOK)
}

func (c *MaintenanceController) BeginEdit(ctx echo.Context) error {
	var payload dto.BeginEditDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.BeginEdit(uint64(payload.RowID), payload.Field); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Editing", http.StatusOK)
}

func (c *MaintenanceController) StageEdit(ctx echo.Context) error {
	var payload dto.StageEditDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := c.service.StageEdit(payload.Value); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Value staged", http.StatusOK)
}

func (c *MaintenanceController) SaveEdit(ctx echo.Context) error {
	if err := c.service.SaveEdit(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Schedule updated successfully!", http.StatusOK)
}

func (c *MaintenanceController) CancelEdit(ctx echo.Context) error {
	if err := c.service.CancelEdit(); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Edit cancelled", http.StatusOK)
}

// Summary serves the cost summary card for the schedules on screen.
func (c *MaintenanceController) Summary(ctx echo.Context) error {
	summary, err := c.service.Summary(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, summary, "Cost summary", http.StatusOK)
}
