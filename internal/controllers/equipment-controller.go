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

type EquipmentController struct {
	service *services.EquipmentService
	logger  *zap.Logger
}

func NewEquipmentController(service *services.EquipmentService, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{service: service, logger: logger}
}

// View renders the equipment list: search, status filter, sort and page
// controls all arrive as query parameters.
func (c *EquipmentController) View(ctx echo.Context) error {
	var q dto.ListQueryDTO
	if err := ctx.Bind(&q); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid query parameters", err, nil), c.logger)
	}

	view, err := c.service.View(ctx.Request().Context(), q)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, view, "Equipment list", http.StatusOK)
}

func (c *EquipmentController) Create(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
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
	return utils.SuccessResponse(ctx, created, "Equipment added successfully!", http.StatusCreated)
}

// All returns the unpaged list for the schedule wizard's picker.
func (c *EquipmentController) All(ctx echo.Context) error {
	equipment, err := c.service.All(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipment, "All equipment", http.StatusOK)
}

func (c *EquipmentController) Sort(ctx echo.Context) error {
	var payload dto.SortDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, c.service.ToggleSort(payload.Field), "Sort updated", http.StatusOK)
}

// RequestDelete opens the confirmation modal instead of deleting. The
// delete itself happens in Confirm.
func (c *EquipmentController) RequestDelete(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid equipment id", err, nil), c.logger)
	}
	conf := c.service.RequestDelete(id)
	return utils.SuccessResponse(ctx, conf, "Confirmation required", http.StatusAccepted)
}

func (c *EquipmentController) Confirm(ctx echo.Context) error {
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

func (c *EquipmentController) DismissConfirmation(ctx echo.Context) error {
	c.service.DismissConfirmation()
	return utils.SuccessResponse(ctx, nil, "Confirmation dismissed", http.StatusOK)
}

func (c *EquipmentController) DismissToast(ctx echo.Context) error {
	c.service.DismissToast()
	return utils.SuccessResponse(ctx, nil, "Toast dismissed", http.StatusOK)
}

func (c *EquipmentController) BeginEdit(ctx echo.Context) error {
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

func (c *EquipmentController) StageEdit(ctx echo.Context) error {
	var payload dto.StageEditDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := c.service.StageEdit(payload.Value); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Value staged", http.StatusOK)
}

// SaveEdit is the Enter key: validate, then one field-scoped update.
func (c *EquipmentController) SaveEdit(ctx echo.Context) error {
	if err := c.service.SaveEdit(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Equipment updated successfully!", http.StatusOK)
}

// CancelEdit is the Escape key.
func (c *EquipmentController) CancelEdit(ctx echo.Context) error {
	if err := c.service.CancelEdit(); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Edit cancelled", http.StatusOK)
}
