package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gym-admin/internal/controllers"
	"gym-admin/internal/services"
)

func runMaintenanceRouter(g *echo.Group, service *services.MaintenanceService, logger *zap.Logger) {
	ctrl := controllers.NewMaintenanceController(service, logger)

	g.GET("/maintenance-schedule", ctrl.View)
	g.POST("/maintenance-schedule", ctrl.Create)
	g.GET("/maintenance-schedule/summary", ctrl.Summary)
	g.POST("/maintenance-schedule/sort", ctrl.Sort)
	g.DELETE("/maintenance-schedule/:id", ctrl.RequestDelete)

	g.POST("/maintenance-schedule/confirm", ctrl.Confirm)
	g.DELETE("/maintenance-schedule/confirm", ctrl.DismissConfirmation)
	g.DELETE("/maintenance-schedule/toast", ctrl.DismissToast)

	g.POST("/maintenance-schedule/edit", ctrl.BeginEdit)
	g.PUT("/maintenance-schedule/edit", ctrl.StageEdit)
	g.POST("/maintenance-schedule/edit/save", ctrl.SaveEdit)
	g.DELETE("/maintenance-schedule/edit", ctrl.CancelEdit)
}
