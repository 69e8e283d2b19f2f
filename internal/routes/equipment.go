package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gym-admin/internal/controllers"
	"gym-admin/internal/services"
)

func runEquipmentRouter(g *echo.Group, service *services.EquipmentService, logger *zap.Logger) {
	ctrl := controllers.NewEquipmentController(service, logger)

	g.GET("/equipment", ctrl.View)
	g.POST("/equipment", ctrl.Create)
	g.GET("/equipment/all", ctrl.All)
	g.POST("/equipment/sort", ctrl.Sort)
	g.DELETE("/equipment/:id", ctrl.RequestDelete)

	g.POST("/equipment/confirm", ctrl.Confirm)
	g.DELETE("/equipment/confirm", ctrl.DismissConfirmation)
	g.DELETE("/equipment/toast", ctrl.DismissToast)

	g.POST("/equipment/edit", ctrl.BeginEdit)
	g.PUT("/equipment/edit", ctrl.StageEdit)
	g.POST("/equipment/edit/save", ctrl.SaveEdit)
	g.DELETE("/equipment/edit", ctrl.CancelEdit)
}
