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

type TicketController struct {
	service *services.TicketService
	logger  *zap.Logger
}

func NewTicketController(service *services.TicketService, logger *zap.Logger) *TicketController {
	return &TicketController{service: service, logger: logger}
}

func (c *TicketController) View(ctx echo.Context) error {
	var q dto.TicketQueryDTO
	if err := ctx.Bind(&q); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid query parameters", err, nil), c.logger)
	}

	view, err := c.service.View(ctx.Request().Context(), q)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, view, "Ticket list", http.StatusOK)
}

func (c *TicketController) Create(ctx echo.Context) error {
	var payload dto.CreateTicketDTO
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
	return utils.SuccessResponse(ctx, created, "Ticket created successfully!", http.StatusCreated)
}

func (c *TicketController) Assign(ctx echo.Context) error {
	ticketID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid ticket id", err, nil), c.logger)
	}

	var payload dto.AssignTicketDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.service.Assign(ctx.Request().Context(), ticketID, payload.StaffID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, updated, "Ticket assigned successfully!", http.StatusOK)
}

func (c *TicketController) UpdateStatus(ctx echo.Context) error {
	ticketID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid ticket id", err, nil), c.logger)
	}

	var payload dto.UpdateTicketStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.service.UpdateStatus(ctx.Request().Context(), ticketID, payload.Status)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, updated, "Ticket status updated!", http.StatusOK)
}

func (c *TicketController) Sort(ctx echo.Context) error {
	var payload dto.SortDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, c.service.ToggleSort(payload.Field), "Sort updated", http.StatusOK)
}

// RequestClose opens the confirmation modal for closing a ticket.
func (c *TicketController) RequestClose(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid ticket id", err, nil), c.logger)
	}
	conf := c.service.RequestClose(id)
	return utils.SuccessResponse(ctx, conf, "Confirmation required", http.StatusAccepted)
}

func (c *TicketController) Confirm(ctx echo.Context) error {
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

func (c *TicketController) DismissConfirmation(ctx echo.Context) error {
	c.service.DismissConfirmation()
	return utils.SuccessResponse(ctx, nil, "Confirmation dismissed", http.StatusOK)
}

func (c *TicketController) DismissToast(ctx echo.Context) error {
	c.service.DismissToast()
	return utils.SuccessResponse(ctx, nil, "Toast dismissed", http.StatusOK)
}

func (c *TicketController) BeginEdit(ctx echo.Context) error {
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

func (c *TicketController) StageEdit(ctx echo.Context) error {
	var payload dto.StageEditDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := c.service.StageEdit(payload.Value); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Value staged", http.StatusOK)
}

func (c *TicketController) SaveEdit(ctx echo.Context) error {
	if err := c.service.SaveEdit(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Ticket status updated!", http.StatusOK)
}

func (c *TicketController) CancelEdit(ctx echo.Context) error {
	if err := c.service.CancelEdit(); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Edit cancelled", http.StatusOK)
}
