package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gym-admin/internal/controllers"
	"gym-admin/internal/services"
)

func runTicketRouter(g *echo.Group, service *services.TicketService, logger *zap.Logger) {
	ctrl := controllers.NewTicketController(service, logger)

	g.GET("/tickets", ctrl.View)
	g.POST("/tickets", ctrl.Create)
	g.POST("/tickets/sort", ctrl.Sort)
	g.PUT("/tickets/:id/assign", ctrl.Assign)
	g.PUT("/tickets/:id/status", ctrl.UpdateStatus)
	g.DELETE("/tickets/:id", ctrl.RequestClose)

	g.POST("/tickets/confirm", ctrl.Confirm)
	g.DELETE("/tickets/confirm", ctrl.DismissConfirmation)
	g.DELETE("/tickets/toast", ctrl.DismissToast)

	g.POST("/tickets/edit", ctrl.BeginEdit)
	g.PUT("/tickets/edit", ctrl.StageEdit)
	g.POST("/tickets/edit/save", ctrl.SaveEdit)
	g.DELETE("/tickets/edit", ctrl.CancelEdit)
}
